package model

type AnswerOption struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `json:"name" gorm:"not null"`
	IsCorrect bool   `json:"is_correct" gorm:"not null"`
}

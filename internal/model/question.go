package model

type Question struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	Name           string `json:"name" gorm:"not null"`
	QuestionTypeID uint   `json:"question_type_id" gorm:"not null;index"`

	QuestionType *QuestionType `json:"question_type,omitempty" gorm:"foreignKey:QuestionTypeID"`
}

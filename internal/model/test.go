package model

type Test struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `json:"name" gorm:"not null"`

	TestQuestions []TestQuestion `json:"-" gorm:"foreignKey:TestID"`
	TestScores    []TestScore    `json:"-" gorm:"foreignKey:TestID"`
}

package model

// Question type IDs the grading engine branches on.
const (
	QuestionTypeFreeText     uint = 1
	QuestionTypeSingleChoice uint = 2
	QuestionTypeMultiChoice  uint = 3
)

type QuestionType struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}

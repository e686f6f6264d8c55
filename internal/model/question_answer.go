package model

// QuestionAnswer links an answer option to a question.
type QuestionAnswer struct {
	ID         uint `gorm:"primarykey" json:"id"`
	QuestionID uint `json:"question_id" gorm:"not null;index:idx_question_answer,unique"`
	AnswerID   uint `json:"answer_id" gorm:"not null;index:idx_question_answer,unique"`
}

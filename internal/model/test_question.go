package model

// TestQuestion links a question into a test. A question may belong to
// several tests; it is deleted only once no link references it.
type TestQuestion struct {
	ID         uint `gorm:"primarykey" json:"id"`
	TestID     uint `json:"test_id" gorm:"not null;index:idx_test_question,unique"`
	QuestionID uint `json:"question_id" gorm:"not null;index:idx_test_question,unique"`
}

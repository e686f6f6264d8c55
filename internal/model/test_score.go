package model

import "time"

// TestScore is an append-only record of one quiz submission.
// Score is stored as the literal "correct/total" string.
type TestScore struct {
	ID     uint      `gorm:"primarykey" json:"id"`
	UserID uint      `json:"user_id" gorm:"not null;index"`
	TestID uint      `json:"test_id" gorm:"not null;index"`
	Score  string    `json:"score" gorm:"not null"`
	Date   time.Time `json:"date" gorm:"not null"`
}

package model

import "time"

// PasswordResetToken is the durable variant of the ephemeral token stores:
// reset links live for 24 hours and must survive a process restart.
type PasswordResetToken struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Token     string    `json:"-" gorm:"not null;uniqueIndex"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Email     string    `json:"email" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	IsUsed    bool      `json:"is_used" gorm:"not null;default:false"`
}

// Valid reports whether the token can still be redeemed at the given time.
func (t *PasswordResetToken) Valid(now time.Time) bool {
	return !t.IsUsed && now.Before(t.ExpiresAt)
}

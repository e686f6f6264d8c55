package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/mailer"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const resetTokenLifetime = 24 * time.Hour

// PasswordResetService issues single-use reset tokens, validates them and
// applies the new password. Requesting a reset for an unknown email succeeds
// silently so the endpoint does not leak which addresses are registered.
type PasswordResetService interface {
	RequestReset(email string) error
	ValidateToken(token, email string) dto.ResetTokenValidation
	ResetPassword(token, email, newPassword string) error
}

type passwordResetService struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	tokenRepo   repository.ResetTokenRepository
	auth        AuthService
	mail        mailer.Mailer
	frontendURL string
}

func NewPasswordResetService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	tokenRepo repository.ResetTokenRepository,
	auth AuthService,
	mail mailer.Mailer,
	frontendURL string,
) PasswordResetService {
	return &passwordResetService{
		db:          db,
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		auth:        auth,
		mail:        mail,
		frontendURL: frontendURL,
	}
}

func (s *passwordResetService) RequestReset(email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Info().Str("email", email).Msg("Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}

	now := time.Now()
	record := model.PasswordResetToken{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(resetTokenLifetime),
		IsUsed:    false,
	}
	if err := s.tokenRepo.Create(&record); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.frontendURL, token, url.QueryEscape(user.Email))
	if err := s.mail.SendPasswordReset(user.Email, resetURL); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	log.Info().Uint("userID", user.ID).Msg("Password reset token issued")
	return nil
}

func (s *passwordResetService) ValidateToken(token, email string) dto.ResetTokenValidation {
	record, err := s.tokenRepo.FindByToken(token)
	if err != nil {
		return dto.ResetTokenValidation{Valid: false, Reason: "token_not_found"}
	}
	if record.IsUsed {
		return dto.ResetTokenValidation{Valid: false, Reason: "token_used"}
	}
	if time.Now().After(record.ExpiresAt) {
		return dto.ResetTokenValidation{Valid: false, Reason: "token_expired"}
	}
	if _, err := s.userRepo.FindByID(record.UserID); err != nil {
		return dto.ResetTokenValidation{Valid: false, Reason: "user_missing"}
	}
	if record.Email != email {
		return dto.ResetTokenValidation{Valid: false, Reason: "email_mismatch"}
	}
	return dto.ResetTokenValidation{Valid: true}
}

func (s *passwordResetService) ResetPassword(token, email, newPassword string) error {
	if v := s.ValidateToken(token, email); !v.Valid {
		return fmt.Errorf("invalid reset token: %s", v.Reason)
	}
	if len(newPassword) < 6 {
		return ErrWeakPassword
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	// Password update and token burn succeed or fail together.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var record model.PasswordResetToken
		if err := tx.Where("token = ?", token).First(&record).Error; err != nil {
			return err
		}
		if err := repository.NewUserRepository(tx).UpdatePassword(record.UserID, hash); err != nil {
			return err
		}
		return tx.Model(&record).Update("is_used", true).Error
	})
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	log.Info().Str("email", email).Msg("Password reset completed")
	return nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/mailer"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/lshigami/Zooracle/internal/tokenstore"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PendingUser is the registration payload parked until the emailed code is
// confirmed. The password is already hashed when it enters the store.
type PendingUser struct {
	Login        string
	Email        string
	PasswordHash string
}

// RegistrationService drives the two-step register/verify-email flow.
// Pending payloads and verification codes live in ephemeral token stores;
// losing them on restart only forces the user to register again.
type RegistrationService interface {
	Register(req dto.RegisterRequest) error
	VerifyEmail(email, code string) (*model.User, error)
}

type registrationService struct {
	userRepo repository.UserRepository
	auth     AuthService
	mail     mailer.Mailer
	pending  tokenstore.Store[PendingUser]
	codes    tokenstore.Store[string]
}

func NewRegistrationService(
	userRepo repository.UserRepository,
	auth AuthService,
	mail mailer.Mailer,
	pending tokenstore.Store[PendingUser],
	codes tokenstore.Store[string],
) RegistrationService {
	return &registrationService{
		userRepo: userRepo,
		auth:     auth,
		mail:     mail,
		pending:  pending,
		codes:    codes,
	}
}

func (s *registrationService) Register(req dto.RegisterRequest) error {
	if len(req.Password) < 6 {
		return ErrWeakPassword
	}
	if !strings.Contains(req.Email, "@") || !strings.Contains(req.Email, ".") {
		return ErrInvalidEmail
	}

	if _, err := s.userRepo.FindByLogin(req.Login); err == nil {
		return ErrDuplicateLogin
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check login: %w", err)
	}
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	// A second registration for the same email overwrites the pending
	// payload and code; at most one attempt is in flight per address.
	s.pending.Put(req.Email, PendingUser{Login: req.Login, Email: req.Email, PasswordHash: hash})
	code := generateVerificationCode()
	s.codes.Put(req.Email, code)

	if err := s.mail.SendVerificationCode(req.Email, code); err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}
	log.Info().Str("email", req.Email).Msg("Registration pending, verification code sent")
	return nil
}

func (s *registrationService) VerifyEmail(email, code string) (*model.User, error) {
	stored, ok := s.codes.Get(email)
	if !ok || stored != code {
		return nil, ErrInvalidCode
	}

	pending, ok := s.pending.Get(email)
	if !ok {
		return nil, ErrInvalidCode
	}

	user := model.User{
		Login:    pending.Login,
		Email:    pending.Email,
		Password: pending.PasswordHash,
		IsAdmin:  false,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Single use: both entries are gone after a successful verification.
	s.codes.Invalidate(email)
	s.pending.Invalidate(email)

	log.Info().Str("login", user.Login).Uint("userID", user.ID).Msg("User registered")
	return &user, nil
}

func generateVerificationCode() string {
	const digits = "0123456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = digits[rand.Intn(len(digits))]
	}
	return string(b)
}

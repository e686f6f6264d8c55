package service

import (
	"testing"
	"time"

	"github.com/lshigami/Zooracle/config"
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/lshigami/Zooracle/internal/tokenstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newRegistrationFixture(t *testing.T) (RegistrationService, repository.UserRepository, *fakeMailer) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	auth := NewAuthService(userRepo, &config.Config{JWTSecret: "test-secret"})
	mail := newFakeMailer()
	svc := NewRegistrationService(
		userRepo, auth, mail,
		tokenstore.New[PendingUser](time.Hour),
		tokenstore.New[string](5*time.Minute),
	)
	return svc, userRepo, mail
}

func TestRegisterAndVerify(t *testing.T) {
	svc, userRepo, mail := newRegistrationFixture(t)

	req := dto.RegisterRequest{Login: "visitor", Email: "visitor@zoo.example", Password: "letmein"}
	require.NoError(t, svc.Register(req))

	code := mail.lastCode("visitor@zoo.example")
	require.Len(t, code, 6)

	user, err := svc.VerifyEmail("visitor@zoo.example", code)
	require.NoError(t, err)
	assert.Equal(t, "visitor", user.Login)
	assert.False(t, user.IsAdmin)

	stored, err := userRepo.FindByLogin("visitor")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("letmein")))

	// The code is single use.
	_, err = svc.VerifyEmail("visitor@zoo.example", code)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestRegisterValidation(t *testing.T) {
	svc, userRepo, _ := newRegistrationFixture(t)

	err := svc.Register(dto.RegisterRequest{Login: "a", Email: "a@zoo.example", Password: "short"})
	assert.ErrorIs(t, err, ErrWeakPassword)

	err = svc.Register(dto.RegisterRequest{Login: "a", Email: "not-an-email", Password: "longenough"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	require.NoError(t, userRepo.Create(&model.User{Login: "taken", Email: "taken@zoo.example", Password: "x"}))

	err = svc.Register(dto.RegisterRequest{Login: "taken", Email: "new@zoo.example", Password: "longenough"})
	assert.ErrorIs(t, err, ErrDuplicateLogin)

	err = svc.Register(dto.RegisterRequest{Login: "new", Email: "taken@zoo.example", Password: "longenough"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestVerifyWrongCode(t *testing.T) {
	svc, _, mail := newRegistrationFixture(t)

	require.NoError(t, svc.Register(dto.RegisterRequest{Login: "visitor", Email: "visitor@zoo.example", Password: "letmein"}))
	require.NotEmpty(t, mail.lastCode("visitor@zoo.example"))

	_, err := svc.VerifyEmail("visitor@zoo.example", "000000x")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestReRegisterOverwritesPending(t *testing.T) {
	svc, _, mail := newRegistrationFixture(t)

	require.NoError(t, svc.Register(dto.RegisterRequest{Login: "first", Email: "v@zoo.example", Password: "letmein1"}))
	firstCode := mail.lastCode("v@zoo.example")

	require.NoError(t, svc.Register(dto.RegisterRequest{Login: "second", Email: "v@zoo.example", Password: "letmein2"}))
	secondCode := mail.lastCode("v@zoo.example")

	// Only the latest pending payload is redeemable.
	if firstCode != secondCode {
		_, err := svc.VerifyEmail("v@zoo.example", firstCode)
		assert.ErrorIs(t, err, ErrInvalidCode)
	}
	user, err := svc.VerifyEmail("v@zoo.example", secondCode)
	require.NoError(t, err)
	assert.Equal(t, "second", user.Login)
}

package service

import (
	"strings"
	"testing"
	"time"

	"github.com/lshigami/Zooracle/config"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type resetFixture struct {
	svc       PasswordResetService
	db        *gorm.DB
	userRepo  repository.UserRepository
	tokenRepo repository.ResetTokenRepository
	mail      *fakeMailer
	user      *model.User
}

func newResetFixture(t *testing.T) *resetFixture {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewResetTokenRepository(db)
	auth := NewAuthService(userRepo, &config.Config{JWTSecret: "test-secret"})
	mail := newFakeMailer()
	svc := NewPasswordResetService(db, userRepo, tokenRepo, auth, mail, "https://zoo.example")

	user := model.User{Login: "keeper", Email: "keeper@zoo.example", Password: "old-hash"}
	require.NoError(t, userRepo.Create(&user))

	return &resetFixture{svc: svc, db: db, userRepo: userRepo, tokenRepo: tokenRepo, mail: mail, user: &user}
}

func (f *resetFixture) issueToken(t *testing.T) string {
	t.Helper()
	require.NoError(t, f.svc.RequestReset(f.user.Email))

	resetURL := f.mail.resetURLs[f.user.Email]
	require.NotEmpty(t, resetURL)
	require.True(t, strings.HasPrefix(resetURL, "https://zoo.example/reset-password?token="))

	rest := strings.TrimPrefix(resetURL, "https://zoo.example/reset-password?token=")
	return strings.SplitN(rest, "&", 2)[0]
}

func TestRequestResetUnknownEmailSilent(t *testing.T) {
	f := newResetFixture(t)

	require.NoError(t, f.svc.RequestReset("stranger@zoo.example"))
	assert.Empty(t, f.mail.resetURLs["stranger@zoo.example"])
}

func TestValidateTokenReasons(t *testing.T) {
	f := newResetFixture(t)
	token := f.issueToken(t)

	v := f.svc.ValidateToken(token, f.user.Email)
	assert.True(t, v.Valid)
	assert.Empty(t, v.Reason)

	v = f.svc.ValidateToken("bogus", f.user.Email)
	assert.False(t, v.Valid)
	assert.Equal(t, "token_not_found", v.Reason)

	v = f.svc.ValidateToken(token, "other@zoo.example")
	assert.False(t, v.Valid)
	assert.Equal(t, "email_mismatch", v.Reason)

	require.NoError(t, f.db.Model(&model.PasswordResetToken{}).
		Where("token = ?", token).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)
	v = f.svc.ValidateToken(token, f.user.Email)
	assert.False(t, v.Valid)
	assert.Equal(t, "token_expired", v.Reason)
}

func TestResetPasswordBurnsToken(t *testing.T) {
	f := newResetFixture(t)
	token := f.issueToken(t)

	require.NoError(t, f.svc.ResetPassword(token, f.user.Email, "brand-new-pass"))

	updated, err := f.userRepo.FindByID(f.user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("brand-new-pass")))

	v := f.svc.ValidateToken(token, f.user.Email)
	assert.False(t, v.Valid)
	assert.Equal(t, "token_used", v.Reason)

	err = f.svc.ResetPassword(token, f.user.Email, "another-pass")
	assert.Error(t, err)
}

func TestResetPasswordRejectsWeak(t *testing.T) {
	f := newResetFixture(t)
	token := f.issueToken(t)

	err := f.svc.ResetPassword(token, f.user.Email, "abc")
	assert.ErrorIs(t, err, ErrWeakPassword)

	// The token survives a rejected attempt.
	assert.True(t, f.svc.ValidateToken(token, f.user.Email).Valid)
}

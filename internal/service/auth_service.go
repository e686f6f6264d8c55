package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/Zooracle/config"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const accessTokenLifetime = 7 * 24 * time.Hour

// AuthService issues and verifies credentials: bcrypt password hashes and
// HS256 bearer tokens whose subject is the user's login.
type AuthService interface {
	HashPassword(password string) (string, error)
	Authenticate(username, password string) (*model.User, error)
	CreateAccessToken(user *model.User) (string, error)
	// ResolveToken parses the bearer token and loads the user it names.
	ResolveToken(tokenString string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	secret   []byte
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty; issued tokens are unverifiable across restarts")
	}
	return &authService{userRepo: userRepo, secret: []byte(cfg.JWTSecret)}
}

func (s *authService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *authService) Authenticate(username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByLoginOrEmail(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unknown user %q: %w", username, err)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("wrong password for %q: %w", username, err)
	}
	return user, nil
}

func (s *authService) CreateAccessToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.Login,
		"exp": time.Now().Add(accessTokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (s *authService) ResolveToken(tokenString string) (*model.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	login, ok := claims["sub"].(string)
	if !ok || login == "" {
		return nil, errors.New("token has no subject")
	}

	user, err := s.userRepo.FindByLogin(login)
	if err != nil {
		return nil, fmt.Errorf("token user %q not found: %w", login, err)
	}
	return user, nil
}

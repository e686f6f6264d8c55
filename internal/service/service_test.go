package service

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.AnimalType{},
		&model.Habitat{},
		&model.Test{},
		&model.Animal{},
		&model.AnimalPhoto{},
		&model.FavoriteAnimal{},
		&model.QuestionType{},
		&model.Question{},
		&model.AnswerOption{},
		&model.QuestionAnswer{},
		&model.TestQuestion{},
		&model.TestScore{},
		&model.PasswordResetToken{},
	))
	return db
}

// fakeStorage keeps objects in a map, mirroring the bucket layout.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) Upload(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *fakeStorage) Fetch(_ context.Context, key string) (io.ReadCloser, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, 0, storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

func (s *fakeStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.objects))
	for k := range s.objects {
		out = append(out, k)
	}
	return out
}

// fakeMailer records outgoing mail instead of dialing SMTP.
type fakeMailer struct {
	mu        sync.Mutex
	codes     map[string]string
	resetURLs map[string]string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{codes: map[string]string{}, resetURLs: map[string]string{}}
}

func (m *fakeMailer) SendVerificationCode(email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[email] = code
	return nil
}

func (m *fakeMailer) SendPasswordReset(email, resetURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetURLs[email] = resetURL
	return nil
}

func (m *fakeMailer) lastCode(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[email]
}

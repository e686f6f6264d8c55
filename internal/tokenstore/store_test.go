package tokenstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWithinTTL(t *testing.T) {
	now := time.Now()
	s := newWithClock[string](5*time.Minute, func() time.Time { return now })

	s.Put("user@example.com", "123456")

	now = now.Add(4 * time.Minute)
	got, ok := s.Get("user@example.com")
	require.True(t, ok)
	assert.Equal(t, "123456", got)
}

func TestGetAfterTTLRemovesEntry(t *testing.T) {
	now := time.Now()
	s := newWithClock[string](5*time.Minute, func() time.Time { return now })

	s.Put("user@example.com", "123456")

	now = now.Add(5*time.Minute + time.Second)
	_, ok := s.Get("user@example.com")
	assert.False(t, ok)

	// The expired entry must be gone, not just hidden: a later Put for the
	// same key starts a fresh TTL window.
	s.Put("user@example.com", "654321")
	got, ok := s.Get("user@example.com")
	require.True(t, ok)
	assert.Equal(t, "654321", got)
}

func TestInvalidate(t *testing.T) {
	s := New[string](time.Hour)

	s.Put("token-abc", "payload")
	s.Invalidate("token-abc")

	_, ok := s.Get("token-abc")
	assert.False(t, ok)
}

func TestPutOverwrites(t *testing.T) {
	now := time.Now()
	s := newWithClock[int](time.Hour, func() time.Time { return now })

	s.Put("user@example.com", 1)
	s.Put("user@example.com", 2)

	got, ok := s.Get("user@example.com")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestPutSweepsOtherExpiredKeys(t *testing.T) {
	now := time.Now()
	s := newWithClock[string](time.Minute, func() time.Time { return now })

	s.Put("stale@example.com", "old")
	now = now.Add(2 * time.Minute)
	s.Put("fresh@example.com", "new")

	s.mu.Lock()
	_, stale := s.entries["stale@example.com"]
	s.mu.Unlock()
	assert.False(t, stale)
}

func TestGetMissingKey(t *testing.T) {
	s := New[string](time.Minute)
	v, ok := s.Get("nobody@example.com")
	assert.False(t, ok)
	assert.Empty(t, v)
}

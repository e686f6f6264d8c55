package tokenstore

import (
	"sync"
	"time"
)

// Store holds short-lived values keyed by email or token. Entries expire
// after the store's TTL; expired entries are swept lazily on access rather
// than by a background timer, and a Put for an existing key overwrites it.
// State is process-local: a restart loses all pending entries, which is
// acceptable because every flow backed by a store is user-retriable.
type Store[T any] interface {
	Put(key string, value T)
	Get(key string) (T, bool)
	Invalidate(key string)
}

type entry[T any] struct {
	value     T
	createdAt time.Time
}

type memoryStore[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[T]
	now     func() time.Time
}

// New returns an in-memory Store with the given TTL.
func New[T any](ttl time.Duration) Store[T] {
	return newWithClock[T](ttl, time.Now)
}

func newWithClock[T any](ttl time.Duration, now func() time.Time) *memoryStore[T] {
	return &memoryStore[T]{
		ttl:     ttl,
		entries: make(map[string]entry[T]),
		now:     now,
	}
}

func (s *memoryStore[T]) Put(key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.entries[key] = entry[T]{value: value, createdAt: s.now()}
}

func (s *memoryStore[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	e, ok := s.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, true
}

func (s *memoryStore[T]) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// sweep drops every expired entry so stale survivors never block a later
// Put for the same key. Callers must hold the mutex.
func (s *memoryStore[T]) sweep() {
	now := s.now()
	for key, e := range s.entries {
		if now.Sub(e.createdAt) > s.ttl {
			delete(s.entries, key)
		}
	}
}

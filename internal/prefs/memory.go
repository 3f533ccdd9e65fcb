package prefs

import (
	"context"
	"sync"
)

// MemoryStore is an in-process preference store used when no Redis is
// configured and in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory preference store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func memoryKey(session, key string) string {
	return session + ":" + key
}

// Get returns the stored value for a session key, or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, session, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[memoryKey(session, key)]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set stores a value for a session key.
func (s *MemoryStore) Set(_ context.Context, session, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[memoryKey(session, key)] = value
	return nil
}

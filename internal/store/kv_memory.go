package store

import (
	"context"
	"fmt"
	"maps"
	"sync"
)

// MemoryStore keeps all keys in a map. It is used by tests and by ephemeral
// runs started with the memory driver.
type MemoryStore struct {
	mu      sync.RWMutex
	data    map[string]string
	failErr error
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// FailWith makes every following operation return err, simulating an
// unreachable backend. Passing nil restores normal behaviour.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

// Snapshot returns a copy of the stored entries.
func (s *MemoryStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.data)
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failErr != nil {
		return "", fmt.Errorf("memory store get %q: %w", key, s.failErr)
	}

	v, ok := s.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return fmt.Errorf("memory store set %q: %w", key, s.failErr)
	}

	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return fmt.Errorf("memory store delete %q: %w", key, s.failErr)
	}

	delete(s.data, key)
	return nil
}

package repository

import (
	"context"
	"fmt"
	"sync"
)

// MemoryEntryStore keeps entries in process memory. Used by tests and by
// the --storage memory mode.
type MemoryEntryStore struct {
	mu      sync.Mutex
	entries map[string][]byte
	writes  map[string]int
}

func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{
		entries: make(map[string][]byte),
		writes:  make(map[string]int),
	}
}

func (s *MemoryEntryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", key, ErrNotFound)
	}
	return cloneBytes(v), nil
}

func (s *MemoryEntryStore) Set(_ context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = cloneBytes(value)
	s.writes[key]++
	return nil
}

// Writes returns how many times key has been written.
func (s *MemoryEntryStore) Writes(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[key]
}

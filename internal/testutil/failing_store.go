package testutil

import (
	"context"
	"sync/atomic"
)

// entryStore mirrors repository.EntryStore without importing it, so
// repository tests can use this package.
type entryStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// FailOnNthSetStore wraps a store and injects Err on the Nth Set call.
// Set calls are counted starting at 1; FailOn <= 0 fails every Set.
// Reads pass through.
type FailOnNthSetStore struct {
	Inner  entryStore
	FailOn int32
	Err    error

	count atomic.Int32
}

func (s *FailOnNthSetStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.Inner.Get(ctx, key)
}

func (s *FailOnNthSetStore) Set(ctx context.Context, key string, value []byte) error {
	n := s.count.Add(1)
	if s.FailOn <= 0 || n == s.FailOn {
		return s.Err
	}
	return s.Inner.Set(ctx, key, value)
}

// Sets returns how many Set calls were attempted.
func (s *FailOnNthSetStore) Sets() int {
	return int(s.count.Load())
}

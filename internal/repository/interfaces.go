package repository

import (
	"context"
	"errors"
)

// Keys of the three persisted collections.
const (
	KeyStudents = "monte_students"
	KeyWorks    = "monte_works"
	KeyProgress = "monte_progress"
)

// ErrNotFound is returned by Get when no value is stored under a key.
var ErrNotFound = errors.New("not found")

// EntryStore persists whole values under string keys. It offers no partial
// updates and no locking: a Set replaces the previous value entirely.
type EntryStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/montessori/internal/repository"
	"github.com/alexanderramin/montessori/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// newTestManager loads a manager over store with sequential ids and a
// settable clock.
func newTestManager(t *testing.T, store repository.EntryStore) (*StateManager, *testutil.Clock) {
	t.Helper()
	clock := testutil.NewClock(testStart)
	m, err := Load(context.Background(), store,
		WithIDGenerator(testutil.SequentialIDs("id")),
		WithClock(clock.Now),
	)
	require.NoError(t, err)
	return m, clock
}

// emptyStore has no students, no works and no progress persisted, so the
// manager skips seeding and starts with an empty curriculum.
func emptyStore(t *testing.T) *repository.MemoryEntryStore {
	t.Helper()
	store := repository.NewMemoryEntryStore()
	require.NoError(t, store.Set(context.Background(), repository.KeyWorks, []byte("[]")))
	return store
}

func storedJSON(t *testing.T, store repository.EntryStore, key string) []map[string]any {
	t.Helper()
	data, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileEntryStore_WritesOneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileEntryStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyStudents, []byte(`[]`)))
	require.NoError(t, store.Set(ctx, KeyStudents, []byte(`[{"id":"a"}]`)))

	data, err := os.ReadFile(filepath.Join(dir, KeyStudents+".json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(data))

	// No temp files are left behind after successful writes.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileEntryStore_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	_, err := NewFileEntryStore(dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

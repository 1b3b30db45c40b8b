package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileEntryStore keeps each entry in <dir>/<key>.json. Writes land in a
// temporary file that is renamed over the old one, so a reader sees either
// the previous or the new value.
type FileEntryStore struct {
	dir string
}

// NewFileEntryStore creates the data directory if needed.
func NewFileEntryStore(dir string) (*FileEntryStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileEntryStore{dir: dir}, nil
}

func (s *FileEntryStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileEntryStore) Get(_ context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("entry %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("reading entry %s: %w", key, err)
	}
	return data, nil
}

func (s *FileEntryStore) Set(_ context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("writing entry %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing entry %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing entry %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		return fmt.Errorf("replacing entry %s: %w", key, err)
	}
	committed = true
	return nil
}

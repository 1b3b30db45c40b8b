package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/montessori/internal/db"
)

// SQLiteEntryStore implements EntryStore on the kv_entries table.
type SQLiteEntryStore struct {
	db db.DBTX
}

// NewSQLiteEntryStore creates a new SQLiteEntryStore.
func NewSQLiteEntryStore(conn db.DBTX) *SQLiteEntryStore {
	return &SQLiteEntryStore{db: conn}
}

func (r *SQLiteEntryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("entry %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("reading entry %s: %w", key, err)
	}
	return []byte(value), nil
}

func (r *SQLiteEntryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	query := `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, string(value), nowUTC()); err != nil {
		return fmt.Errorf("writing entry %s: %w", key, err)
	}
	return nil
}

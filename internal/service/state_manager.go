package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/repository"
	"github.com/google/uuid"
)

// StateManager owns the student, work and progress collections. Every
// mutation is applied in memory and then the affected collection is written
// back to the entry store as a whole, one key at a time.
//
// If a write fails the in-memory change is kept and the error is returned;
// the next successful write of that collection persists it.
type StateManager struct {
	mu       sync.Mutex
	store    repository.EntryStore
	newID    func() string
	now      func() time.Time
	observer UseCaseObserver

	students []domain.Student
	works    []domain.Work
	progress []domain.ProgressRecord
}

type Option func(*StateManager)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(m *StateManager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

func WithClock(fn func() time.Time) Option {
	return func(m *StateManager) {
		if fn != nil {
			m.now = fn
		}
	}
}

func WithObserver(o UseCaseObserver) Option {
	return func(m *StateManager) {
		if o != nil {
			m.observer = o
		}
	}
}

// Load reads the three collections from store. Missing students and
// progress start empty; missing works are seeded from the default
// curriculum and written back immediately. Progress in the legacy shape is
// migrated and, when anything changed, rewritten once.
func Load(ctx context.Context, store repository.EntryStore, opts ...Option) (*StateManager, error) {
	m := &StateManager{
		store:    store,
		newID:    func() string { return uuid.New().String() },
		now:      func() time.Time { return time.Now().UTC() },
		observer: NoopUseCaseObserver{},
		students: []domain.Student{},
		works:    []domain.Work{},
		progress: []domain.ProgressRecord{},
	}
	for _, opt := range opts {
		opt(m)
	}

	startedAt := time.Now()
	fields := map[string]any{}
	err := m.load(ctx, fields)
	m.observe(ctx, "load", startedAt, err, fields)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *StateManager) load(ctx context.Context, fields map[string]any) error {
	data, found, err := m.get(ctx, repository.KeyStudents)
	if err != nil {
		return err
	}
	if found {
		if err := decodeList(data, &m.students); err != nil {
			return fmt.Errorf("decoding %s: %w", repository.KeyStudents, err)
		}
	}
	fields["students"] = len(m.students)

	data, found, err = m.get(ctx, repository.KeyWorks)
	if err != nil {
		return err
	}
	if found {
		if err := decodeList(data, &m.works); err != nil {
			return fmt.Errorf("decoding %s: %w", repository.KeyWorks, err)
		}
	} else {
		for _, d := range domain.DefaultCurriculum() {
			m.works = append(m.works, d.WithID(m.newID()))
		}
		fields["seeded"] = true
		if err := m.save(ctx, repository.KeyWorks); err != nil {
			return err
		}
	}
	fields["works"] = len(m.works)

	data, found, err = m.get(ctx, repository.KeyProgress)
	if err != nil {
		return err
	}
	if found {
		records, changed, err := decodeProgress(data, m.now())
		if err != nil {
			return fmt.Errorf("decoding %s: %w", repository.KeyProgress, err)
		}
		m.progress = records
		if changed {
			fields["migrated"] = true
			if err := m.save(ctx, repository.KeyProgress); err != nil {
				return err
			}
		}
	}
	fields["progress"] = len(m.progress)
	return nil
}

// get reads key from the store, reporting absence as found == false.
func (m *StateManager) get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := m.store.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading %s: %w", key, err)
	}
	return data, true, nil
}

func decodeList[T any](data []byte, dst *[]T) error {
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if out != nil {
		*dst = out
	}
	return nil
}

// save serializes the collection stored under key. Callers hold m.mu or
// have exclusive access during Load.
func (m *StateManager) save(ctx context.Context, key string) error {
	var (
		data []byte
		err  error
	)
	switch key {
	case repository.KeyStudents:
		data, err = json.Marshal(m.students)
	case repository.KeyWorks:
		data, err = json.Marshal(m.works)
	case repository.KeyProgress:
		data, err = encodeProgress(m.progress)
	default:
		return fmt.Errorf("unknown collection %q", key)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := m.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

func (m *StateManager) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	m.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// Snapshot returns copies of all three collections.
func (m *StateManager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Students: cloneSlice(m.students),
		Works:    cloneSlice(m.works),
		Progress: cloneSlice(m.progress),
	}
}

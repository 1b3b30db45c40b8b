package service

import (
	"context"
	"time"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/repository"
)

func (m *StateManager) AddWork(ctx context.Context, d domain.WorkDraft) (work domain.Work, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	startedAt := time.Now()
	defer func() {
		m.observe(ctx, "add-work", startedAt, err, map[string]any{"work_id": work.ID, "area": d.Area.Key()})
	}()

	work = d.WithID(m.newID())
	m.works = append(m.works, work)
	return work, m.save(ctx, repository.KeyWorks)
}

// AddWorksBulk appends every draft in order, each with its own fresh id,
// and writes the collection once. An empty list changes nothing.
func (m *StateManager) AddWorksBulk(ctx context.Context, drafts []domain.WorkDraft) (works []domain.Work, err error) {
	if len(drafts) == 0 {
		return nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	startedAt := time.Now()
	defer func() {
		m.observe(ctx, "add-works-bulk", startedAt, err, map[string]any{"count": len(drafts)})
	}()

	works = make([]domain.Work, len(drafts))
	for i, d := range drafts {
		works[i] = d.WithID(m.newID())
	}
	m.works = append(m.works, works...)
	return works, m.save(ctx, repository.KeyWorks)
}

// UpdateWork replaces the work with the same id. Unknown ids are ignored.
func (m *StateManager) UpdateWork(ctx context.Context, w domain.Work) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.workIndex(w.ID)
	if i < 0 {
		return nil
	}
	startedAt := time.Now()
	defer func() {
		m.observe(ctx, "update-work", startedAt, err, map[string]any{"work_id": w.ID})
	}()

	m.works[i] = w
	return m.save(ctx, repository.KeyWorks)
}

// DeleteWork removes the work and every progress record against it.
func (m *StateManager) DeleteWork(ctx context.Context, id string) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.workIndex(id)
	if i < 0 {
		return nil
	}
	startedAt := time.Now()
	fields := map[string]any{"work_id": id}
	defer func() {
		m.observe(ctx, "delete-work", startedAt, err, fields)
	}()

	m.works = append(m.works[:i:i], m.works[i+1:]...)
	removed := m.removeProgress(func(p domain.ProgressRecord) bool { return p.WorkID == id })
	fields["progress_removed"] = removed

	if err = m.save(ctx, repository.KeyWorks); err != nil {
		return err
	}
	if removed > 0 {
		return m.save(ctx, repository.KeyProgress)
	}
	return nil
}

func (m *StateManager) Work(id string) (domain.Work, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.workIndex(id); i >= 0 {
		return m.works[i], true
	}
	return domain.Work{}, false
}

func (m *StateManager) Works() []domain.Work {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneSlice(m.works)
}

// WorksByArea returns the works of one area in insertion order.
func (m *StateManager) WorksByArea(area domain.Area) []domain.Work {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Work
	for _, w := range m.works {
		if w.Area == area {
			out = append(out, w)
		}
	}
	return out
}

func (m *StateManager) workIndex(id string) int {
	for i, w := range m.works {
		if w.ID == id {
			return i
		}
	}
	return -1
}

package service

import (
	"context"
	"time"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/repository"
)

// CycleProgress advances the (student, work) pair one step:
//
//	no record    -> IN_PROGRESS (updatedAt = now)
//	IN_PROGRESS  -> COMPLETED   (updatedAt = now)
//	COMPLETED    -> record removed
//	anything else -> record removed
//
// The transition is WorkStatus.Next; a status that is not Stored removes
// the record. It returns the status the pair ends up in.
func (m *StateManager) CycleProgress(ctx context.Context, studentID, workID string) (status domain.WorkStatus, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	startedAt := time.Now()
	fields := map[string]any{"student_id": studentID, "work_id": workID}
	defer func() {
		fields["status"] = string(status)
		m.observe(ctx, "cycle-progress", startedAt, err, fields)
	}()

	i := m.progressIndex(studentID, workID)
	current := domain.StatusNotStarted
	if i >= 0 {
		current = m.progress[i].Status
		if !current.Stored() {
			fields["unexpected_status"] = string(current)
		}
	}

	status = current.Next()
	switch {
	case !status.Stored():
		m.progress = append(m.progress[:i:i], m.progress[i+1:]...)
	case i < 0:
		m.progress = append(m.progress, domain.ProgressRecord{
			StudentID: studentID,
			WorkID:    workID,
			Status:    status,
			UpdatedAt: m.now(),
		})
	default:
		m.progress[i].Status = status
		m.progress[i].UpdatedAt = m.now()
	}
	return status, m.save(ctx, repository.KeyProgress)
}

// ResetProgress removes every record of one student and returns how many
// were removed.
func (m *StateManager) ResetProgress(ctx context.Context, studentID string) (removed int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed = m.removeProgress(func(p domain.ProgressRecord) bool { return p.StudentID == studentID })
	if removed == 0 {
		return 0, nil
	}
	startedAt := time.Now()
	defer func() {
		m.observe(ctx, "reset-progress", startedAt, err, map[string]any{"student_id": studentID, "removed": removed})
	}()
	return removed, m.save(ctx, repository.KeyProgress)
}

// StatusOf returns the stored status for the pair, NOT_STARTED when no
// record exists.
func (m *StateManager) StatusOf(studentID, workID string) domain.WorkStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.progressIndex(studentID, workID); i >= 0 {
		return m.progress[i].Status
	}
	return domain.StatusNotStarted
}

// GetStudentProgress counts one student's records against the whole
// curriculum, attempted or not.
func (m *StateManager) GetStudentProgress(studentID string) domain.StudentProgress {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sp domain.StudentProgress
	for _, p := range m.progress {
		if p.StudentID != studentID {
			continue
		}
		switch p.Status {
		case domain.StatusCompleted:
			sp.CompletedCount++
		case domain.StatusInProgress:
			sp.InProgressCount++
		}
	}
	sp.TotalCount = len(m.works)
	sp.Percent = domain.Percent(sp.CompletedCount, sp.TotalCount)
	return sp
}

func (m *StateManager) progressIndex(studentID, workID string) int {
	key := domain.ProgressKey{StudentID: studentID, WorkID: workID}
	for i, p := range m.progress {
		if p.Key() == key {
			return i
		}
	}
	return -1
}

// removeProgress drops every record matching drop and returns the count.
func (m *StateManager) removeProgress(drop func(domain.ProgressRecord) bool) int {
	kept := m.progress[:0:0]
	for _, p := range m.progress {
		if !drop(p) {
			kept = append(kept, p)
		}
	}
	removed := len(m.progress) - len(kept)
	if removed > 0 {
		m.progress = kept
	}
	return removed
}

package service

import (
	"context"
	"time"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/repository"
)

// AddStudent assigns a fresh id and appends the student. Input is expected
// to be validated by the caller.
func (m *StateManager) AddStudent(ctx context.Context, d domain.StudentDraft) (student domain.Student, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	startedAt := time.Now()
	defer func() {
		m.observe(ctx, "add-student", startedAt, err, map[string]any{"student_id": student.ID})
	}()

	student = d.WithID(m.newID())
	m.students = append(m.students, student)
	return student, m.save(ctx, repository.KeyStudents)
}

// UpdateStudent replaces the student with the same id. Unknown ids are
// ignored.
func (m *StateManager) UpdateStudent(ctx context.Context, s domain.Student) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.studentIndex(s.ID)
	if i < 0 {
		return nil
	}
	startedAt := time.Now()
	defer func() {
		m.observe(ctx, "update-student", startedAt, err, map[string]any{"student_id": s.ID})
	}()

	m.students[i] = s
	return m.save(ctx, repository.KeyStudents)
}

// DeleteStudent removes the student and every progress record that
// references it. Unknown ids are ignored.
func (m *StateManager) DeleteStudent(ctx context.Context, id string) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.studentIndex(id)
	if i < 0 {
		return nil
	}
	startedAt := time.Now()
	fields := map[string]any{"student_id": id}
	defer func() {
		m.observe(ctx, "delete-student", startedAt, err, fields)
	}()

	m.students = append(m.students[:i:i], m.students[i+1:]...)
	removed := m.removeProgress(func(p domain.ProgressRecord) bool { return p.StudentID == id })
	fields["progress_removed"] = removed

	if err = m.save(ctx, repository.KeyStudents); err != nil {
		return err
	}
	if removed > 0 {
		return m.save(ctx, repository.KeyProgress)
	}
	return nil
}

func (m *StateManager) Student(id string) (domain.Student, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.studentIndex(id); i >= 0 {
		return m.students[i], true
	}
	return domain.Student{}, false
}

// Students returns a copy of all students in insertion order.
func (m *StateManager) Students() []domain.Student {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneSlice(m.students)
}

func (m *StateManager) studentIndex(id string) int {
	for i, s := range m.students {
		if s.ID == id {
			return i
		}
	}
	return -1
}

package service

import (
	"context"

	"github.com/alexanderramin/montessori/internal/domain"
)

type StudentService interface {
	AddStudent(ctx context.Context, d domain.StudentDraft) (domain.Student, error)
	UpdateStudent(ctx context.Context, s domain.Student) error
	DeleteStudent(ctx context.Context, id string) error
	Student(id string) (domain.Student, bool)
	Students() []domain.Student
}

type WorkService interface {
	AddWork(ctx context.Context, d domain.WorkDraft) (domain.Work, error)
	AddWorksBulk(ctx context.Context, drafts []domain.WorkDraft) ([]domain.Work, error)
	UpdateWork(ctx context.Context, w domain.Work) error
	DeleteWork(ctx context.Context, id string) error
	Work(id string) (domain.Work, bool)
	Works() []domain.Work
	WorksByArea(area domain.Area) []domain.Work
}

type ProgressService interface {
	CycleProgress(ctx context.Context, studentID, workID string) (domain.WorkStatus, error)
	ResetProgress(ctx context.Context, studentID string) (int, error)
	StatusOf(studentID, workID string) domain.WorkStatus
	GetStudentProgress(studentID string) domain.StudentProgress
}

// SnapshotSource hands out read-only copies of the three collections.
type SnapshotSource interface {
	Snapshot() Snapshot
}

var (
	_ StudentService  = (*StateManager)(nil)
	_ WorkService     = (*StateManager)(nil)
	_ ProgressService = (*StateManager)(nil)
	_ SnapshotSource  = (*StateManager)(nil)
)

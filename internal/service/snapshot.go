package service

import "github.com/alexanderramin/montessori/internal/domain"

// Snapshot is a copy of the three collections at one point in time.
// Mutating it has no effect on the state manager.
type Snapshot struct {
	Students []domain.Student
	Works    []domain.Work
	Progress []domain.ProgressRecord
}

// StatusOf returns the stored status for the pair, NOT_STARTED when absent.
func (s Snapshot) StatusOf(studentID, workID string) domain.WorkStatus {
	for _, p := range s.Progress {
		if p.StudentID == studentID && p.WorkID == workID {
			return p.Status
		}
	}
	return domain.StatusNotStarted
}

// Record returns the stored record for the pair, if any.
func (s Snapshot) Record(studentID, workID string) (domain.ProgressRecord, bool) {
	for _, p := range s.Progress {
		if p.StudentID == studentID && p.WorkID == workID {
			return p, true
		}
	}
	return domain.ProgressRecord{}, false
}

func (s Snapshot) WorksByArea(area domain.Area) []domain.Work {
	var out []domain.Work
	for _, w := range s.Works {
		if w.Area == area {
			out = append(out, w)
		}
	}
	return out
}

func (s Snapshot) Student(id string) (domain.Student, bool) {
	for _, st := range s.Students {
		if st.ID == id {
			return st, true
		}
	}
	return domain.Student{}, false
}

func (s Snapshot) Work(id string) (domain.Work, bool) {
	for _, w := range s.Works {
		if w.ID == id {
			return w, true
		}
	}
	return domain.Work{}, false
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

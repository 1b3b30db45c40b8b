package domain

import "time"

// ProgressKey identifies the (student, work) pair a progress record belongs to.
type ProgressKey struct {
	StudentID string
	WorkID    string
}

// ProgressRecord is the current status of one student against one work.
// Only IN_PROGRESS and COMPLETED records are ever stored.
type ProgressRecord struct {
	StudentID string
	WorkID    string
	Status    WorkStatus
	UpdatedAt time.Time
}

func (p ProgressRecord) Key() ProgressKey {
	return ProgressKey{StudentID: p.StudentID, WorkID: p.WorkID}
}

// StudentProgress summarizes one student's records against the whole
// curriculum.
type StudentProgress struct {
	CompletedCount  int `json:"completedCount"`
	InProgressCount int `json:"inProgressCount"`
	TotalCount      int `json:"totalCount"`
	Percent         int `json:"percent"`
}

// Percent returns part/total as a rounded percentage, 0 when total is 0.
// The result is clamped to [0, 100].
func Percent(part, total int) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	if part >= total {
		return 100
	}
	// Round half up on integers: (200*part + total) / (2*total).
	return (200*part + total) / (2 * total)
}

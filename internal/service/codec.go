package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/montessori/internal/domain"
)

// ErrMalformedProgress is returned when a persisted progress element matches
// neither the status shape nor the legacy isCompleted shape.
var ErrMalformedProgress = errors.New("malformed progress record")

// progressJSON is the persisted shape of a progress record. updatedAt is
// milliseconds since the Unix epoch.
type progressJSON struct {
	StudentID string            `json:"studentId"`
	WorkID    string            `json:"workId"`
	Status    domain.WorkStatus `json:"status"`
	UpdatedAt int64             `json:"updatedAt,omitempty"`
}

// statusShape and legacyShape use pointers so a missing discriminating
// field can be told apart from its zero value.
type statusShape struct {
	StudentID string             `json:"studentId"`
	WorkID    string             `json:"workId"`
	Status    *domain.WorkStatus `json:"status"`
	UpdatedAt *float64           `json:"updatedAt"`
}

type legacyShape struct {
	StudentID   string   `json:"studentId"`
	WorkID      string   `json:"workId"`
	IsCompleted *bool           `json:"isCompleted"`
	CompletedAt json.RawMessage `json:"completedAt"`
}

func encodeProgress(records []domain.ProgressRecord) ([]byte, error) {
	out := make([]progressJSON, len(records))
	for i, r := range records {
		out[i] = progressJSON{
			StudentID: r.StudentID,
			WorkID:    r.WorkID,
			Status:    r.Status,
			UpdatedAt: toMillis(r.UpdatedAt),
		}
	}
	return json.Marshal(out)
}

// decodeProgress parses the persisted progress array. Each element is read
// as the status shape first and as the legacy shape second. Legacy elements
// with isCompleted true become COMPLETED (updatedAt = completedAt, or
// loadedAt when absent); everything that resolves to NOT_STARTED is dropped.
// Several elements for one (student, work) pair collapse into one: the
// latest updatedAt wins, the later element on a tie.
// changed reports whether the result differs from what was stored.
func decodeProgress(data []byte, loadedAt time.Time) (records []domain.ProgressRecord, changed bool, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrMalformedProgress, err)
	}

	records = make([]domain.ProgressRecord, 0, len(raw))
	seen := make(map[domain.ProgressKey]int, len(raw))
	for i, elem := range raw {
		rec, ok, migrated, err := decodeProgressElement(elem, loadedAt)
		if err != nil {
			return nil, false, fmt.Errorf("progress element %d: %w", i, err)
		}
		if migrated || !ok {
			changed = true
		}
		if !ok {
			continue
		}
		if j, dup := seen[rec.Key()]; dup {
			changed = true
			if !rec.UpdatedAt.Before(records[j].UpdatedAt) {
				records[j] = rec
			}
			continue
		}
		seen[rec.Key()] = len(records)
		records = append(records, rec)
	}
	return records, changed, nil
}

func decodeProgressElement(elem json.RawMessage, loadedAt time.Time) (rec domain.ProgressRecord, keep, migrated bool, err error) {
	var cur statusShape
	if json.Unmarshal(elem, &cur) == nil && cur.Status != nil {
		rec = domain.ProgressRecord{
			StudentID: cur.StudentID,
			WorkID:    cur.WorkID,
			Status:    *cur.Status,
		}
		if cur.UpdatedAt != nil {
			rec.UpdatedAt = fromMillis(*cur.UpdatedAt)
		}
		return rec, rec.Status != domain.StatusNotStarted, false, nil
	}

	var legacy legacyShape
	if json.Unmarshal(elem, &legacy) == nil && legacy.IsCompleted != nil {
		if !*legacy.IsCompleted {
			return domain.ProgressRecord{}, false, true, nil
		}
		rec = domain.ProgressRecord{
			StudentID: legacy.StudentID,
			WorkID:    legacy.WorkID,
			Status:    domain.StatusCompleted,
			UpdatedAt: loadedAt,
		}
		// A completedAt that is not a positive number falls back to load time.
		var ms float64
		if json.Unmarshal(legacy.CompletedAt, &ms) == nil && ms > 0 {
			rec.UpdatedAt = fromMillis(ms)
		}
		return rec, true, true, nil
	}

	return domain.ProgressRecord{}, false, false, ErrMalformedProgress
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms float64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(ms)).UTC()
}

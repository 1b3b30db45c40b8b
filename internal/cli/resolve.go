package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/montessori/internal/domain"
)

// resolveStudent finds a student by exact id, unique id prefix, or exact
// name (case-insensitive), in that order.
func resolveStudent(app *App, input string) (domain.Student, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.Student{}, fmt.Errorf("student is required")
	}
	students := app.Students.Students()

	for _, s := range students {
		if s.ID == input {
			return s, nil
		}
	}

	var matches []domain.Student
	for _, s := range students {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s)
		}
	}
	if len(matches) == 0 {
		for _, s := range students {
			if strings.EqualFold(s.Name, input) {
				matches = append(matches, s)
			}
		}
	}

	switch len(matches) {
	case 0:
		return domain.Student{}, fmt.Errorf("student not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return domain.Student{}, fmt.Errorf("student %q is ambiguous (%d matches); use the id", input, len(matches))
	}
}

// resolveWork finds a work by exact id, unique id prefix, or exact title.
func resolveWork(app *App, input string) (domain.Work, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.Work{}, fmt.Errorf("work is required")
	}
	works := app.Works.Works()

	for _, w := range works {
		if w.ID == input {
			return w, nil
		}
	}

	var matches []domain.Work
	for _, w := range works {
		if strings.HasPrefix(w.ID, input) {
			matches = append(matches, w)
		}
	}
	if len(matches) == 0 {
		for _, w := range works {
			if strings.EqualFold(w.Title, input) {
				matches = append(matches, w)
			}
		}
	}

	switch len(matches) {
	case 0:
		return domain.Work{}, fmt.Errorf("work not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return domain.Work{}, fmt.Errorf("work %q is ambiguous (%d matches); use the id", input, len(matches))
	}
}

package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/montessori/internal/domain"
)

// Converted holds the drafts of one import file, ready for the state
// manager.
type Converted struct {
	Works    []domain.WorkDraft
	Students []domain.StudentDraft
	// Skipped counts works dropped because the curriculum already had them.
	Skipped int
}

// Convert transforms a validated ImportSchema into drafts. Works whose
// (area, title) is already in existing are skipped so re-importing the same
// file does not duplicate the curriculum. Call ValidateImportSchema first.
func Convert(schema *ImportSchema, existing []domain.Work) (*Converted, error) {
	have := make(map[string]bool, len(existing))
	for _, w := range existing {
		have[w.Area.Key()+"/"+titleKey(w.Title)] = true
	}

	out := &Converted{}
	for i, w := range schema.Works {
		area, err := domain.ParseArea(w.Area)
		if err != nil {
			return nil, fmt.Errorf("works[%d]: %w", i, err)
		}
		if have[area.Key()+"/"+titleKey(w.Title)] {
			out.Skipped++
			continue
		}
		out.Works = append(out.Works, domain.WorkDraft{
			Area:        area,
			Title:       strings.TrimSpace(w.Title),
			Description: strings.TrimSpace(w.Description),
		})
	}

	for i, s := range schema.Students {
		d, err := studentDraft(s)
		if err != nil {
			return nil, fmt.Errorf("students[%d]: %w", i, err)
		}
		out.Students = append(out.Students, d)
	}

	return out, nil
}

func studentDraft(s StudentImport) (domain.StudentDraft, error) {
	d := domain.StudentDraft{
		Name:          strings.TrimSpace(s.Name),
		Age:           s.Age,
		ParentContact: s.ParentContact,
		Notes:         s.Notes,
	}
	g, err := domain.ParseGender(s.Gender)
	if err != nil {
		return d, err
	}
	d.Gender = g
	return d, nil
}

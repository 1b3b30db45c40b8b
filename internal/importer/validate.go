package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/montessori/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Works) == 0 && len(schema.Students) == 0 {
		errs = append(errs, fmt.Errorf("import file has no works and no students"))
	}
	errs = append(errs, validateWorks(schema.Works)...)
	errs = append(errs, validateStudents(schema.Students)...)

	return errs
}

func validateWorks(works []WorkImport) []error {
	var errs []error
	seen := make(map[string]int)

	for i, w := range works {
		prefix := fmt.Sprintf("works[%d]", i)
		area, err := domain.ParseArea(w.Area)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.area: %w", prefix, err))
		}
		if strings.TrimSpace(w.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
			continue
		}
		if err == nil {
			key := area.Key() + "/" + titleKey(w.Title)
			if first, dup := seen[key]; dup {
				errs = append(errs, fmt.Errorf("%s: duplicate of works[%d] (%q)", prefix, first, w.Title))
				continue
			}
			seen[key] = i
		}
	}

	return errs
}

func validateStudents(students []StudentImport) []error {
	var errs []error

	for i, s := range students {
		prefix := fmt.Sprintf("students[%d]", i)
		d, err := studentDraft(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.gender: %w", prefix, err))
			d.Gender = domain.GenderFemale
		}
		if err := d.Validate(); err != nil {
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
				continue
			}
			for _, f := range verr.Fields {
				errs = append(errs, fmt.Errorf("%s.%s: %s", prefix, f.Field, f.Message))
			}
		}
	}

	return errs
}

func titleKey(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

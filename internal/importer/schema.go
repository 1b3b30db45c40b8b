package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure of a classroom import file:
// a curriculum and/or a student roster.
type ImportSchema struct {
	Works    []WorkImport    `json:"works,omitempty"`
	Students []StudentImport `json:"students,omitempty"`
}

// WorkImport is one curriculum entry. Area accepts the label ("数学区") or
// the key ("MATH").
type WorkImport struct {
	Area        string `json:"area"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// StudentImport is one roster entry. Gender accepts "男"/"女" or
// male/female.
type StudentImport struct {
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	Age           int    `json:"age"`
	ParentContact string `json:"parentContact,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// LoadImportSchema reads and parses a classroom import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_MinimalSchema(t *testing.T) {
	got, err := Convert(validMinimalSchema(), nil)
	require.NoError(t, err)

	require.Len(t, got.Works, 1)
	assert.Equal(t, domain.WorkDraft{Area: domain.AreaMath, Title: "纺锤棒箱"}, got.Works[0])
	assert.Empty(t, got.Students)
	assert.Zero(t, got.Skipped)
}

func TestConvert_SkipsExistingWorks(t *testing.T) {
	schema := &ImportSchema{
		Works: []WorkImport{
			{Area: "MATH", Title: "数棒"},
			{Area: "SENSORY", Title: "数棒"},
			{Area: "MATH", Title: " 纺锤棒箱 ", Description: " 0-9 "},
		},
	}
	existing := []domain.Work{{ID: "w1", Area: domain.AreaMath, Title: "数棒"}}

	got, err := Convert(schema, existing)
	require.NoError(t, err)

	assert.Equal(t, 1, got.Skipped)
	assert.Equal(t, []domain.WorkDraft{
		{Area: domain.AreaSensory, Title: "数棒"},
		{Area: domain.AreaMath, Title: "纺锤棒箱", Description: "0-9"},
	}, got.Works)
}

func TestConvert_Students(t *testing.T) {
	schema := &ImportSchema{
		Students: []StudentImport{
			{Name: " Mei ", Gender: "female", Age: 4, ParentContact: "555-0101"},
		},
	}

	got, err := Convert(schema, nil)
	require.NoError(t, err)

	require.Len(t, got.Students, 1)
	assert.Equal(t, domain.StudentDraft{Name: "Mei", Gender: domain.GenderFemale, Age: 4, ParentContact: "555-0101"}, got.Students[0])
}

func TestLoadImportSchema_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classroom.json")
	data := `{
		"works": [{"area": "语言区", "title": "活动字母"}],
		"students": [{"name": "Mei", "gender": "女", "age": 4}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	require.Empty(t, ValidateImportSchema(schema))

	got, err := Convert(schema, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.AreaLanguage, got.Works[0].Area)
	assert.Equal(t, domain.GenderFemale, got.Students[0].Gender)
}

func TestLoadImportSchema_MissingFile(t *testing.T) {
	_, err := LoadImportSchema(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

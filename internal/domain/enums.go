package domain

import (
	"fmt"
	"strings"
)

// Area is one of the five fixed pedagogical areas of the classroom.
// Values are the labels persisted by earlier versions of the tool.
type Area string

const (
	AreaDailyLife Area = "日常生活区"
	AreaSensory   Area = "感官区"
	AreaMath      Area = "数学区"
	AreaLanguage  Area = "语言区"
	AreaCulture   Area = "科学文化区"
)

var areaKeys = map[Area]string{
	AreaDailyLife: "DAILY_LIFE",
	AreaSensory:   "SENSORY",
	AreaMath:      "MATH",
	AreaLanguage:  "LANGUAGE",
	AreaCulture:   "CULTURE",
}

// Areas returns every area in display order.
func Areas() []Area {
	return []Area{AreaDailyLife, AreaSensory, AreaMath, AreaLanguage, AreaCulture}
}

// Valid reports whether a is one of the five known areas.
func (a Area) Valid() bool {
	_, ok := areaKeys[a]
	return ok
}

// Key returns the stable ASCII identifier of the area, e.g. "MATH".
func (a Area) Key() string {
	return areaKeys[a]
}

// Short returns the label without its trailing "区" suffix.
func (a Area) Short() string {
	return strings.TrimSuffix(string(a), "区")
}

// ParseArea accepts either the persisted label or the ASCII key
// (case-insensitive, "-" and "_" interchangeable).
func ParseArea(s string) (Area, error) {
	s = strings.TrimSpace(s)
	if a := Area(s); a.Valid() {
		return a, nil
	}
	norm := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for a, key := range areaKeys {
		if key == norm || a.Short() == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown area %q (want one of %s)", s, strings.Join(AreaKeys(), ", "))
}

// AreaKeys returns the ASCII keys of all areas in display order.
func AreaKeys() []string {
	keys := make([]string, 0, len(areaKeys))
	for _, a := range Areas() {
		keys = append(keys, a.Key())
	}
	return keys
}

type Gender string

const (
	GenderMale   Gender = "男"
	GenderFemale Gender = "女"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ParseGender accepts the persisted value or an English spelling.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(GenderMale), "male", "m", "boy":
		return GenderMale, nil
	case string(GenderFemale), "female", "f", "girl":
		return GenderFemale, nil
	}
	return "", fmt.Errorf("unknown gender %q (want male or female)", s)
}

// WorkStatus is the progress of one student against one work.
type WorkStatus string

const (
	StatusNotStarted WorkStatus = "NOT_STARTED"
	StatusInProgress WorkStatus = "IN_PROGRESS"
	StatusCompleted  WorkStatus = "COMPLETED"
)

// Next returns the status reached by one cycling step. Unknown values fall
// back to NOT_STARTED.
func (s WorkStatus) Next() WorkStatus {
	switch s {
	case StatusNotStarted:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusNotStarted
	}
}

// Stored reports whether a record with this status is kept in the progress
// collection. Absence of a record means NOT_STARTED.
func (s WorkStatus) Stored() bool {
	return s == StatusInProgress || s == StatusCompleted
}

package domain

// Work is a curriculum activity belonging to exactly one area.
type Work struct {
	ID          string `json:"id"`
	Area        Area   `json:"area"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// WorkDraft is a work that has not been assigned an id.
type WorkDraft struct {
	Area        Area   `json:"area" validate:"area"`
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description,omitempty"`
}

func (d WorkDraft) WithID(id string) Work {
	return Work{ID: id, Area: d.Area, Title: d.Title, Description: d.Description}
}

func (w Work) Draft() WorkDraft {
	return WorkDraft{Area: w.Area, Title: w.Title, Description: w.Description}
}

// DefaultCurriculum is the seed list used when no works have been saved yet:
// one classic work per area.
func DefaultCurriculum() []WorkDraft {
	return []WorkDraft{
		{Area: AreaDailyLife, Title: "倒豆子", Description: "练习手眼协调"},
		{Area: AreaSensory, Title: "粉红塔", Description: "感知大小变化"},
		{Area: AreaMath, Title: "数棒", Description: "1-10的数量概念"},
		{Area: AreaLanguage, Title: "砂纸字母", Description: "触觉认识字母"},
		{Area: AreaCulture, Title: "世界地图嵌板", Description: "认识大洲"},
	}
}

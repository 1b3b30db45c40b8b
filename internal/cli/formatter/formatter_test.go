package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsCJK(t *testing.T) {
	out := stripANSI(RenderTable([]string{"NAME", "AGE"}, [][]string{
		{"小明", "4"},
		{"Mei", "5"},
	}))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME  AGE", lines[0])
	assert.Equal(t, "────  ───", lines[1])
	assert.Equal(t, "小明  4", lines[2])
	assert.Equal(t, "Mei   5", lines[3])
	assert.Empty(t, RenderTable(nil, nil))
}

func TestStatusPill(t *testing.T) {
	assert.Contains(t, stripANSI(StatusPill(domain.StatusCompleted)), "已掌握")
	assert.Contains(t, stripANSI(StatusPill(domain.StatusInProgress)), "进行中")
	assert.Contains(t, stripANSI(StatusPill(domain.StatusNotStarted)), "未开始")
	assert.Contains(t, stripANSI(StatusPill("PAUSED")), "PAUSED")
}

func TestFormatStudentList(t *testing.T) {
	out := stripANSI(FormatStudentList([]StudentRow{{
		Student:  domain.Student{ID: "0b7c1d2e-1111", Name: "Mei", Gender: domain.GenderFemale, Age: 4},
		Progress: domain.StudentProgress{CompletedCount: 1, TotalCount: 3, Percent: 33},
	}}))
	assert.Contains(t, out, "0b7c1d2e")
	assert.NotContains(t, out, "0b7c1d2e-1111")
	assert.Contains(t, out, "Mei")
	assert.Contains(t, out, "1/3")
	assert.Contains(t, out, "33%")
}

func TestFormatStudentDetail(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	math := domain.Work{ID: "m1", Area: domain.AreaMath, Title: "数棒"}
	out := stripANSI(FormatStudentDetail(StudentDetailData{
		Student:  domain.Student{ID: "s1", Name: "Mei", Gender: domain.GenderFemale, Age: 4, ParentContact: "138"},
		Progress: domain.StudentProgress{CompletedCount: 1, TotalCount: 1, Percent: 100},
		Breakdown: []stats.AreaProgress{
			{Area: domain.AreaMath, Completed: 1, Total: 1, Percent: 100},
			{Area: domain.AreaLanguage},
		},
		Works: map[domain.Area][]WorkLine{
			domain.AreaMath: {{Work: math, Status: domain.StatusCompleted, UpdatedAt: now.Add(-2 * time.Hour)}},
		},
		Now: now,
	}))
	assert.Contains(t, out, "家长联系: 138")
	assert.Contains(t, out, "数学区")
	assert.Contains(t, out, "🏆")
	assert.Contains(t, out, "数棒")
	assert.Contains(t, out, "2小时前")
	assert.Contains(t, out, "暂无工作")
}

func TestFormatWorkList_GroupsByArea(t *testing.T) {
	out := stripANSI(FormatWorkList([]domain.Work{
		{ID: "w1", Area: domain.AreaMath, Title: "数棒"},
		{ID: "w2", Area: domain.AreaDailyLife, Title: "倒豆子"},
	}))
	daily := strings.Index(out, "日常生活区")
	math := strings.Index(out, "数学区")
	require.GreaterOrEqual(t, daily, 0)
	require.GreaterOrEqual(t, math, 0)
	assert.Less(t, daily, math, "areas print in display order")
	assert.Less(t, strings.Index(out, "倒豆子"), strings.Index(out, "数棒"))
	assert.Equal(t, 3, strings.Count(out, "暂无工作"))
}

func TestFormatDashboard(t *testing.T) {
	snap := stats.Overview{Students: 2, Works: 5, InProgress: 1, Completed: 3}
	out := stripANSI(FormatDashboard(DashboardData{
		Overview: snap,
		Rates:    []stats.AreaRate{{Area: domain.AreaMath, Completed: 1, Possible: 2, Percent: 50}},
		Rankings: []stats.StudentRanking{{Student: domain.Student{Name: "Leo"}, Completed: 3, Percent: 60}},
	}))
	assert.Contains(t, out, "CLASSROOM")
	assert.Contains(t, out, "学生 2")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, "Leo")
	assert.Contains(t, out, " 60%")

	empty := stripANSI(FormatDashboard(DashboardData{}))
	assert.Contains(t, empty, "No students yet")
}

func TestFormatSuggestions(t *testing.T) {
	out := stripANSI(FormatSuggestions(domain.AreaMath, []domain.WorkDraft{{Title: "邮票游戏", Description: "四则运算"}}))
	assert.Contains(t, out, " 1. 邮票游戏")
	assert.Contains(t, out, "四则运算")
}

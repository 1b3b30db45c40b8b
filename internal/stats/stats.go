// Package stats derives classroom aggregates from a state snapshot. Every
// function is pure: it reads the snapshot and never mutates it.
package stats

import (
	"sort"

	"github.com/alexanderramin/montessori/internal/domain"
	"github.com/alexanderramin/montessori/internal/service"
)

// AreaRate is the class-wide completion rate of one area.
type AreaRate struct {
	Area      domain.Area
	Completed int
	Possible  int
	Percent   int
}

// AreaCompletionRate is the number of COMPLETED records on works of area,
// divided by works in the area times students, as a rounded percentage.
func AreaCompletionRate(snap service.Snapshot, area domain.Area) int {
	return areaRate(snap, area).Percent
}

// AreaRates returns the rate of every area in display order.
func AreaRates(snap service.Snapshot) []AreaRate {
	out := make([]AreaRate, 0, len(domain.Areas()))
	for _, a := range domain.Areas() {
		out = append(out, areaRate(snap, a))
	}
	return out
}

func areaRate(snap service.Snapshot, area domain.Area) AreaRate {
	works := workAreas(snap)
	var inArea int
	for _, a := range works {
		if a == area {
			inArea++
		}
	}
	var completed int
	for _, p := range snap.Progress {
		if p.Status == domain.StatusCompleted && works[p.WorkID] == area {
			completed++
		}
	}
	possible := inArea * len(snap.Students)
	return AreaRate{
		Area:      area,
		Completed: completed,
		Possible:  possible,
		Percent:   domain.Percent(completed, possible),
	}
}

// StudentRanking is one row of the class leaderboard.
type StudentRanking struct {
	Student   domain.Student
	Completed int
	Percent   int
}

// StudentRankings orders students by percent of the whole curriculum
// completed, highest first. Ties keep insertion order.
func StudentRankings(snap service.Snapshot) []StudentRanking {
	completed := make(map[string]int, len(snap.Students))
	for _, p := range snap.Progress {
		if p.Status == domain.StatusCompleted {
			completed[p.StudentID]++
		}
	}
	out := make([]StudentRanking, len(snap.Students))
	for i, s := range snap.Students {
		out[i] = StudentRanking{
			Student:   s,
			Completed: completed[s.ID],
			Percent:   domain.Percent(completed[s.ID], len(snap.Works)),
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Percent > out[j].Percent
	})
	return out
}

// AreaProgress is one student's progress restricted to one area.
type AreaProgress struct {
	Area       domain.Area
	Completed  int
	InProgress int
	Total      int
	Percent    int
}

// Mastered reports whether every work of a non-empty area is completed.
func (p AreaProgress) Mastered() bool {
	return p.Total > 0 && p.Completed >= p.Total
}

func AreaBreakdown(snap service.Snapshot, studentID string, area domain.Area) AreaProgress {
	works := workAreas(snap)
	out := AreaProgress{Area: area}
	for _, a := range works {
		if a == area {
			out.Total++
		}
	}
	for _, p := range snap.Progress {
		if p.StudentID != studentID || works[p.WorkID] != area {
			continue
		}
		switch p.Status {
		case domain.StatusCompleted:
			out.Completed++
		case domain.StatusInProgress:
			out.InProgress++
		}
	}
	out.Percent = domain.Percent(out.Completed, out.Total)
	return out
}

// StudentBreakdown returns AreaBreakdown for every area in display order.
func StudentBreakdown(snap service.Snapshot, studentID string) []AreaProgress {
	out := make([]AreaProgress, 0, len(domain.Areas()))
	for _, a := range domain.Areas() {
		out = append(out, AreaBreakdown(snap, studentID, a))
	}
	return out
}

// Overview is the headline of the dashboard.
type Overview struct {
	Students   int
	Works      int
	InProgress int
	Completed  int
	// Orphaned counts records whose student or work no longer exists.
	Orphaned int
}

func ClassOverview(snap service.Snapshot) Overview {
	students := make(map[string]bool, len(snap.Students))
	for _, s := range snap.Students {
		students[s.ID] = true
	}
	works := workAreas(snap)

	out := Overview{Students: len(snap.Students), Works: len(snap.Works)}
	for _, p := range snap.Progress {
		if _, ok := works[p.WorkID]; !ok || !students[p.StudentID] {
			out.Orphaned++
			continue
		}
		switch p.Status {
		case domain.StatusCompleted:
			out.Completed++
		case domain.StatusInProgress:
			out.InProgress++
		}
	}
	return out
}

// workAreas maps work id to its area. Progress on unknown work ids maps to
// the empty area and so never counts toward any real area.
func workAreas(snap service.Snapshot) map[string]domain.Area {
	out := make(map[string]domain.Area, len(snap.Works))
	for _, w := range snap.Works {
		out[w.ID] = w.Area
	}
	return out
}

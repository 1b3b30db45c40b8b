package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/montessori/internal/domain"
)

// SequentialIDs returns a generator producing prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// Clock is a settable time source for deterministic updatedAt values.
type Clock struct {
	now atomic.Int64
}

func NewClock(start time.Time) *Clock {
	c := &Clock{}
	c.Set(start)
	return c
}

func (c *Clock) Now() time.Time {
	return time.UnixMilli(c.now.Load()).UTC()
}

func (c *Clock) Set(t time.Time) {
	c.now.Store(t.UnixMilli())
}

func (c *Clock) Advance(d time.Duration) {
	c.now.Add(d.Milliseconds())
}

// Student options
type StudentOption func(*domain.StudentDraft)

func WithGender(g domain.Gender) StudentOption {
	return func(s *domain.StudentDraft) {
		s.Gender = g
	}
}

func WithAge(age int) StudentOption {
	return func(s *domain.StudentDraft) {
		s.Age = age
	}
}

func WithParentContact(c string) StudentOption {
	return func(s *domain.StudentDraft) {
		s.ParentContact = c
	}
}

func NewTestStudent(name string, opts ...StudentOption) domain.StudentDraft {
	s := domain.StudentDraft{
		Name:   name,
		Gender: domain.GenderFemale,
		Age:    4,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Work options
type WorkOption func(*domain.WorkDraft)

func WithDescription(d string) WorkOption {
	return func(w *domain.WorkDraft) {
		w.Description = d
	}
}

func NewTestWork(area domain.Area, title string, opts ...WorkOption) domain.WorkDraft {
	w := domain.WorkDraft{Area: area, Title: title}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

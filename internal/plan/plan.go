package plan

import (
	"errors"
	"fmt"
)

// DayStatus is the stored completion status of a single plan day.
type DayStatus string

const (
	StatusPending   DayStatus = "pending"
	StatusCompleted DayStatus = "completed"
)

// DayTopic is one day of a study plan: a day number and a free-text
// description of what to study that day.
type DayTopic struct {
	// Day is the 1-based day number, unique and strictly increasing
	// within a plan.
	Day int

	// Topics is the free-text topic description for the day,
	// e.g. "Math: Algebra, Geometry; Science: Physics."
	Topics string

	// Status is the stored completion status. The derived
	// locked/active/completed view is computed by DayStates.
	Status DayStatus
}

// StudyPlan is a multi-day curriculum. The backend owns the canonical
// copy; this is the client-side read/write-through representation.
type StudyPlan struct {
	ID                 string
	ExamName           string
	TotalDays          int
	PerQuestionSeconds int
	QuestionsPerQuiz   int
	Days               []DayTopic
}

// ErrNoActiveDay is returned when an operation requires an active day
// but every day in the plan is already completed.
var ErrNoActiveDay = errors.New("no active day: plan is complete")

// Validate checks the structural invariants of the plan: a non-empty
// exam name, positive quiz parameters, and day numbers that are unique
// and strictly increasing.
func (p *StudyPlan) Validate() error {
	if p.ExamName == "" {
		return errors.New("plan: exam name is required")
	}
	if p.PerQuestionSeconds <= 0 {
		return fmt.Errorf("plan: per-question seconds must be positive, got %d", p.PerQuestionSeconds)
	}
	if p.QuestionsPerQuiz <= 0 {
		return fmt.Errorf("plan: questions per quiz must be positive, got %d", p.QuestionsPerQuiz)
	}
	prev := 0
	for i, d := range p.Days {
		if d.Day <= prev {
			return fmt.Errorf("plan: day numbers must be unique and strictly increasing, got %d after %d at index %d", d.Day, prev, i)
		}
		if d.Status != StatusPending && d.Status != StatusCompleted {
			return fmt.Errorf("plan: day %d has invalid status %q", d.Day, d.Status)
		}
		prev = d.Day
	}
	return nil
}

// DayByNumber returns the index of the day with the given day number,
// or -1 if no such day exists.
func (p *StudyPlan) DayByNumber(day int) int {
	for i, d := range p.Days {
		if d.Day == day {
			return i
		}
	}
	return -1
}

// CompleteActiveDay marks the currently active day as completed.
// Callers invoke this only after a passed quiz outcome is confirmed;
// a failed attempt leaves the plan untouched so the day can be retaken.
// Returns ErrNoActiveDay if every day is already completed.
func (p *StudyPlan) CompleteActiveDay() error {
	idx, ok := ActiveIndex(p.Days)
	if !ok {
		return ErrNoActiveDay
	}
	p.Days[idx].Status = StatusCompleted
	return nil
}

package plan

import (
	"reflect"
	"testing"
)

func days(statuses ...DayStatus) []DayTopic {
	out := make([]DayTopic, len(statuses))
	for i, s := range statuses {
		out[i] = DayTopic{Day: i + 1, Topics: "Topic", Status: s}
	}
	return out
}

func TestDayStates_MidPlan(t *testing.T) {
	got := DayStates(days(StatusCompleted, StatusCompleted, StatusPending, StatusPending))
	want := []DayState{StateCompleted, StateCompleted, StateActive, StateLocked}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DayStates = %v, want %v", got, want)
	}
}

func TestDayStates_FreshPlan(t *testing.T) {
	got := DayStates(days(StatusPending, StatusPending, StatusPending))
	want := []DayState{StateActive, StateLocked, StateLocked}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DayStates = %v, want %v", got, want)
	}
}

func TestDayStates_AllCompleted(t *testing.T) {
	got := DayStates(days(StatusCompleted, StatusCompleted))
	for i, s := range got {
		if s != StateCompleted {
			t.Errorf("day %d state = %v, want completed", i, s)
		}
	}
	if _, ok := ActiveIndex(days(StatusCompleted, StatusCompleted)); ok {
		t.Error("expected no active day when all completed")
	}
}

func TestActiveIndex_SkipsCompleted(t *testing.T) {
	idx, ok := ActiveIndex(days(StatusCompleted, StatusPending, StatusPending))
	if !ok || idx != 1 {
		t.Errorf("ActiveIndex = (%d, %t), want (1, true)", idx, ok)
	}
}

func TestCompleteActiveDay_AdvancesPointer(t *testing.T) {
	p := &StudyPlan{
		ExamName:           "SAT",
		PerQuestionSeconds: 60,
		QuestionsPerQuiz:   5,
		Days:               days(StatusPending, StatusPending),
	}

	if err := p.CompleteActiveDay(); err != nil {
		t.Fatalf("CompleteActiveDay: %v", err)
	}
	idx, ok := ActiveIndex(p.Days)
	if !ok || idx != 1 {
		t.Errorf("active after completion = (%d, %t), want (1, true)", idx, ok)
	}

	if err := p.CompleteActiveDay(); err != nil {
		t.Fatalf("CompleteActiveDay: %v", err)
	}
	if err := p.CompleteActiveDay(); err != ErrNoActiveDay {
		t.Errorf("CompleteActiveDay on finished plan = %v, want ErrNoActiveDay", err)
	}
}

func TestIsUnlocked(t *testing.T) {
	d := days(StatusCompleted, StatusPending, StatusPending)

	tests := []struct {
		idx  int
		want bool
	}{
		{0, true},  // completed days stay open for review
		{1, true},  // active day
		{2, false}, // locked
		{-1, false},
		{3, false},
	}
	for _, tt := range tests {
		if got := IsUnlocked(d, tt.idx); got != tt.want {
			t.Errorf("IsUnlocked(%d) = %t, want %t", tt.idx, got, tt.want)
		}
	}
}

package plan

import (
	"strings"
	"testing"
)

func validPlan() *StudyPlan {
	return &StudyPlan{
		ID:                 "p1",
		ExamName:           "NEET",
		TotalDays:          3,
		PerQuestionSeconds: 60,
		QuestionsPerQuiz:   5,
		Days: []DayTopic{
			{Day: 1, Topics: "Physics: Kinematics", Status: StatusPending},
			{Day: 2, Topics: "Physics: Dynamics", Status: StatusPending},
			{Day: 3, Topics: "Chemistry: Atomic Structure", Status: StatusPending},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validPlan().Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}

func TestValidate_DuplicateDay(t *testing.T) {
	p := validPlan()
	p.Days[2].Day = 2
	err := p.Validate()
	if err == nil || !strings.Contains(err.Error(), "strictly increasing") {
		t.Errorf("Validate = %v, want strictly-increasing error", err)
	}
}

func TestValidate_NonIncreasingDay(t *testing.T) {
	p := validPlan()
	p.Days[1].Day = 5
	p.Days[2].Day = 4
	if err := p.Validate(); err == nil {
		t.Error("expected error for non-increasing day numbers")
	}
}

func TestValidate_BadQuizParams(t *testing.T) {
	p := validPlan()
	p.PerQuestionSeconds = 0
	if err := p.Validate(); err == nil {
		t.Error("expected error for zero per-question seconds")
	}

	p = validPlan()
	p.QuestionsPerQuiz = -1
	if err := p.Validate(); err == nil {
		t.Error("expected error for negative questions per quiz")
	}
}

func TestValidate_BadStatus(t *testing.T) {
	p := validPlan()
	p.Days[0].Status = "done"
	if err := p.Validate(); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestDayByNumber(t *testing.T) {
	p := validPlan()
	if got := p.DayByNumber(2); got != 1 {
		t.Errorf("DayByNumber(2) = %d, want 1", got)
	}
	if got := p.DayByNumber(9); got != -1 {
		t.Errorf("DayByNumber(9) = %d, want -1", got)
	}
}

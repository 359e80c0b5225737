package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/prepwise/internal/quizgen"
)

func fiveQuestions() []quizgen.Question {
	qs := make([]quizgen.Question, 5)
	for i := range qs {
		qs[i] = quizgen.Question{
			Text:         fmt.Sprintf("Q%d", i),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % 4,
			Explanation:  "because",
		}
	}
	return qs
}

func TestNewSession_Countdown(t *testing.T) {
	s := NewSession(fiveQuestions(), 60)
	if s.Remaining() != 300 {
		t.Errorf("Remaining = %d, want 300", s.Remaining())
	}
	if s.State() != StateInProgress {
		t.Errorf("State = %v, want InProgress", s.State())
	}
	if s.ID() == "" {
		t.Error("expected a session ID")
	}
}

func TestScoring_FourOfFivePasses(t *testing.T) {
	s := NewSession(fiveQuestions(), 60)
	for i := 0; i < 5; i++ {
		opt := s.questions[i].CorrectIndex
		if i == 4 {
			opt = (opt + 1) % 4 // one wrong
		}
		if err := s.SelectAnswer(i, opt); err != nil {
			t.Fatalf("SelectAnswer(%d): %v", i, err)
		}
	}

	attempt, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if attempt.Score != 80 {
		t.Errorf("Score = %v, want 80", attempt.Score)
	}
	if attempt.Correct != 4 || attempt.Total != 5 {
		t.Errorf("Correct/Total = %d/%d, want 4/5", attempt.Correct, attempt.Total)
	}
	if !attempt.Passed() {
		t.Error("score 80 must pass (threshold is inclusive)")
	}
}

func TestScoring_ThreeOfFiveFails(t *testing.T) {
	s := NewSession(fiveQuestions(), 60)
	for i := 0; i < 5; i++ {
		opt := s.questions[i].CorrectIndex
		if i >= 3 {
			opt = (opt + 1) % 4
		}
		if err := s.SelectAnswer(i, opt); err != nil {
			t.Fatalf("SelectAnswer(%d): %v", i, err)
		}
	}

	attempt, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if attempt.Score != 60 {
		t.Errorf("Score = %v, want 60", attempt.Score)
	}
	if attempt.Outcome != OutcomeFailed {
		t.Errorf("Outcome = %v, want failed", attempt.Outcome)
	}
}

func TestSubmit_RejectsIncomplete(t *testing.T) {
	s := NewSession(fiveQuestions(), 60)
	if err := s.SelectAnswer(0, 0); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}

	if _, err := s.Submit(); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Submit = %v, want ErrIncomplete", err)
	}
	if s.State() != StateInProgress {
		t.Error("rejected submit must not change state")
	}
}

func TestTick_AutoSubmitsOnceAtZero(t *testing.T) {
	s := NewSession(fiveQuestions(), 1) // 5 second countdown
	if err := s.SelectAnswer(0, s.questions[0].CorrectIndex); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}

	fired := 0
	for i := 0; i < 10; i++ {
		if s.Tick() {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("auto-submit fired %d times, want exactly 1", fired)
	}
	if s.State() != StateSubmitted {
		t.Error("expected Submitted after countdown expiry")
	}

	// Forced submission scores the sparse answer map.
	attempt, ok := s.Result()
	if !ok {
		t.Fatal("expected a result after auto-submit")
	}
	if attempt.Correct != 1 || attempt.Total != 5 {
		t.Errorf("Correct/Total = %d/%d, want 1/5", attempt.Correct, attempt.Total)
	}
	if attempt.Passed() {
		t.Error("20%% must not pass")
	}
}

func TestSubmitted_IsTerminal(t *testing.T) {
	s := NewSession(fiveQuestions(), 60)
	for i := 0; i < 5; i++ {
		if err := s.SelectAnswer(i, s.questions[i].CorrectIndex); err != nil {
			t.Fatalf("SelectAnswer: %v", err)
		}
	}
	if _, err := s.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := s.Submit(); !errors.Is(err, ErrSubmitted) {
		t.Errorf("second Submit = %v, want ErrSubmitted", err)
	}
	if s.Tick() {
		t.Error("Tick after submission must be a no-op")
	}
	if err := s.SelectAnswer(0, 1); !errors.Is(err, ErrSubmitted) {
		t.Errorf("SelectAnswer after submit = %v, want ErrSubmitted", err)
	}
	if err := s.GoToQuestion(2); !errors.Is(err, ErrSubmitted) {
		t.Errorf("GoToQuestion after submit = %v, want ErrSubmitted", err)
	}
}

func TestGoToQuestion_Bounds(t *testing.T) {
	s := NewSession(fiveQuestions(), 60)
	if err := s.GoToQuestion(4); err != nil {
		t.Errorf("GoToQuestion(4) = %v, want nil", err)
	}
	if err := s.GoToQuestion(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("GoToQuestion(5) = %v, want ErrOutOfRange", err)
	}
	if err := s.GoToQuestion(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("GoToQuestion(-1) = %v, want ErrOutOfRange", err)
	}
}

func TestCanGoTo_ForwardRequiresAnswers(t *testing.T) {
	s := NewSession(fiveQuestions(), 60)

	if s.CanGoTo(2) {
		t.Error("forward to 2 with nothing answered should be denied")
	}
	if !s.CanGoTo(0) {
		t.Error("current question always allowed")
	}

	_ = s.SelectAnswer(0, 0)
	_ = s.SelectAnswer(1, 0)
	if !s.CanGoTo(2) {
		t.Error("forward allowed once earlier questions answered")
	}

	_ = s.GoToQuestion(2)
	if !s.CanGoTo(0) {
		t.Error("backward always allowed")
	}
}

func TestSelectAnswer_OptionBounds(t *testing.T) {
	s := NewSession(fiveQuestions(), 60)
	if err := s.SelectAnswer(0, 4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SelectAnswer option 4 = %v, want ErrOutOfRange", err)
	}
	if err := s.SelectAnswer(0, 3); err != nil {
		t.Errorf("SelectAnswer option 3 = %v, want nil", err)
	}
	// Re-selection overwrites.
	if err := s.SelectAnswer(0, 1); err != nil {
		t.Errorf("re-select = %v, want nil", err)
	}
	if opt, _ := s.Answer(0); opt != 1 {
		t.Errorf("Answer(0) = %d, want 1", opt)
	}
}

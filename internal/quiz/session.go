package quiz

import (
	"errors"

	"github.com/google/uuid"

	"github.com/abhisek/prepwise/internal/quizgen"
)

// PassThreshold is the score (percent correct) required for a quiz
// attempt to unlock the next plan day.
const PassThreshold = 80.0

// State is the quiz session lifecycle state.
type State int

const (
	StateInProgress State = iota
	StateSubmitted        // terminal
)

// Outcome is the pass/fail result of a submitted attempt.
type Outcome string

const (
	OutcomePassed Outcome = "passed"
	OutcomeFailed Outcome = "failed"
)

var (
	// ErrSubmitted is returned by mutating operations after the session
	// has reached the terminal Submitted state.
	ErrSubmitted = errors.New("quiz: session already submitted")

	// ErrIncomplete is returned by Submit when not every question has
	// an answer. The session state is unchanged.
	ErrIncomplete = errors.New("quiz: unanswered questions remain")

	// ErrOutOfRange is returned for question indices outside
	// [0, QuestionCount-1].
	ErrOutOfRange = errors.New("quiz: question index out of range")
)

// Attempt is the scored result of one quiz attempt. It is ephemeral:
// created when the session submits and discarded once the student
// proceeds past the result; only the day-completion flag persists.
type Attempt struct {
	Answers map[int]int
	Score   float64
	Correct int
	Total   int
	Outcome Outcome
}

// Passed reports whether the attempt met the pass threshold.
func (a *Attempt) Passed() bool {
	return a.Outcome == OutcomePassed
}

// Session is the state machine for one timed quiz attempt. All
// transitions are synchronous and deterministic; the host drives the
// countdown by calling Tick once per scheduling interval. The timer
// and a manual Submit race to reach Submitted; whichever fires first
// wins and the transition is idempotent.
//
// Session is not safe for concurrent use; it models the single-threaded
// event loop it is driven from.
type Session struct {
	id        string
	questions []quizgen.Question
	answers   map[int]int
	cursor    int
	remaining int
	state     State
	result    *Attempt
}

// NewSession starts a quiz over the given questions with a countdown of
// len(questions) × perQuestionSeconds.
func NewSession(questions []quizgen.Question, perQuestionSeconds int) *Session {
	return &Session{
		id:        uuid.NewString(),
		questions: questions,
		answers:   make(map[int]int),
		remaining: len(questions) * perQuestionSeconds,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// QuestionCount returns the number of questions in this attempt.
func (s *Session) QuestionCount() int { return len(s.questions) }

// Question returns the question at index i.
func (s *Session) Question(i int) (quizgen.Question, error) {
	if i < 0 || i >= len(s.questions) {
		return quizgen.Question{}, ErrOutOfRange
	}
	return s.questions[i], nil
}

// Cursor returns the index of the question currently in view.
func (s *Session) Cursor() int { return s.cursor }

// Remaining returns the seconds left on the countdown.
func (s *Session) Remaining() int { return s.remaining }

// Answer returns the selected option for question i, if any.
func (s *Session) Answer(i int) (int, bool) {
	opt, ok := s.answers[i]
	return opt, ok
}

// AllAnswered reports whether every question has a selected option.
func (s *Session) AllAnswered() bool {
	return len(s.answers) == len(s.questions)
}

// SelectAnswer records the selected option for question i. It does not
// move the cursor. Rejected once the session is submitted.
func (s *Session) SelectAnswer(i, option int) error {
	if s.state != StateInProgress {
		return ErrSubmitted
	}
	if i < 0 || i >= len(s.questions) {
		return ErrOutOfRange
	}
	if option < 0 || option >= len(s.questions[i].Options) {
		return ErrOutOfRange
	}
	s.answers[i] = option
	return nil
}

// CanGoTo reports whether navigation to question i is allowed under the
// host policy: moving backward is always allowed, moving forward
// requires every earlier question to be answered.
func (s *Session) CanGoTo(i int) bool {
	if i < 0 || i >= len(s.questions) {
		return false
	}
	if i <= s.cursor {
		return true
	}
	for j := 0; j < i; j++ {
		if _, ok := s.answers[j]; !ok {
			return false
		}
	}
	return true
}

// GoToQuestion moves the cursor to question i, bounded to the question
// range. Rejected once the session is submitted.
func (s *Session) GoToQuestion(i int) error {
	if s.state != StateInProgress {
		return ErrSubmitted
	}
	if i < 0 || i >= len(s.questions) {
		return ErrOutOfRange
	}
	s.cursor = i
	return nil
}

// Tick decrements the countdown by one second. When the countdown
// reaches zero the session force-submits regardless of completeness.
// Returns true when this tick caused the auto-submit. Ticks after
// submission are no-ops.
func (s *Session) Tick() bool {
	if s.state != StateInProgress {
		return false
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		s.finalize()
		return true
	}
	return false
}

// Submit finishes the attempt. It is accepted only while in progress
// and only when every question has an answer; an incomplete manual
// submit is rejected with no state change. The forced path on timer
// expiry goes through Tick instead.
func (s *Session) Submit() (*Attempt, error) {
	if s.state != StateInProgress {
		return nil, ErrSubmitted
	}
	if !s.AllAnswered() {
		return nil, ErrIncomplete
	}
	s.finalize()
	return s.result, nil
}

// Result returns the scored attempt once the session is submitted.
func (s *Session) Result() (*Attempt, bool) {
	if s.state != StateSubmitted {
		return nil, false
	}
	return s.result, true
}

// finalize transitions to Submitted and computes the score. Idempotent:
// the state check in every caller guarantees a single invocation.
func (s *Session) finalize() {
	s.state = StateSubmitted
	s.result = score(s.questions, s.answers)
}

// score computes the attempt result from the answer map. Unanswered
// questions count as incorrect.
func score(questions []quizgen.Question, answers map[int]int) *Attempt {
	correct := 0
	for i, q := range questions {
		if opt, ok := answers[i]; ok && opt == q.CorrectIndex {
			correct++
		}
	}

	total := len(questions)
	var pct float64
	if total > 0 {
		pct = float64(correct) / float64(total) * 100
	}

	outcome := OutcomeFailed
	if pct >= PassThreshold {
		outcome = OutcomePassed
	}

	return &Attempt{
		Answers: answers,
		Score:   pct,
		Correct: correct,
		Total:   total,
		Outcome: outcome,
	}
}

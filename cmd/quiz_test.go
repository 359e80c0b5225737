package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepwise/internal/quiz"
	"github.com/abhisek/prepwise/internal/quizgen"
)

func testQuestions() []quizgen.Question {
	return []quizgen.Question{
		{Text: "2 + 2?", Options: []string{"3", "4", "5", "6"}, CorrectIndex: 1},
		{Text: "3 * 3?", Options: []string{"6", "9", "12", "15"}, CorrectIndex: 1},
	}
}

// fakeClock returns a now func that advances step on every call.
func fakeClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestRunQuiz_AnswerAllAndSubmit(t *testing.T) {
	s := quiz.NewSession(testQuestions(), 60)
	in := strings.NewReader("2\n2\nsubmit\n")
	var out strings.Builder

	attempt, auto, err := runQuiz(s, in, &out, fakeClock(time.Second))
	require.NoError(t, err)
	require.False(t, auto)
	require.Equal(t, 2, attempt.Correct)
	require.Equal(t, 100.0, attempt.Score)
	require.True(t, attempt.Passed())
}

func TestRunQuiz_IncompleteSubmitRejected(t *testing.T) {
	s := quiz.NewSession(testQuestions(), 60)
	// Submit with one question unanswered, then finish properly.
	in := strings.NewReader("2\nsubmit\n1\nsubmit\n")
	var out strings.Builder

	attempt, auto, err := runQuiz(s, in, &out, fakeClock(time.Second))
	require.NoError(t, err)
	require.False(t, auto)
	require.Contains(t, out.String(), "Answer every question")
	require.Equal(t, 1, attempt.Correct)
	require.False(t, attempt.Passed())
}

func TestRunQuiz_ForwardNavigationGated(t *testing.T) {
	s := quiz.NewSession(testQuestions(), 60)
	// "n" with the first question unanswered must be refused; after
	// answering, the quiz completes normally.
	in := strings.NewReader("n\n2\n2\nsubmit\n")
	var out strings.Builder

	attempt, auto, err := runQuiz(s, in, &out, fakeClock(time.Second))
	require.NoError(t, err)
	require.False(t, auto)
	require.Contains(t, out.String(), "Answer this question before moving on.")
	require.Equal(t, 2, attempt.Correct)
}

func TestRunQuiz_CountdownExpiryAutoSubmits(t *testing.T) {
	// 2 questions x 2s each = 4s countdown; the clock jumps 10s per
	// input, so the first input already expires it.
	s := quiz.NewSession(testQuestions(), 2)
	in := strings.NewReader("2\n2\n")
	var out strings.Builder

	attempt, auto, err := runQuiz(s, in, &out, fakeClock(10*time.Second))
	require.NoError(t, err)
	require.True(t, auto)
	require.Equal(t, quiz.StateSubmitted, s.State())
	require.Equal(t, 0, attempt.Correct)
	require.Contains(t, out.String(), "Time's up")
}

func TestRunQuiz_InputClosedForcesSubmit(t *testing.T) {
	s := quiz.NewSession(testQuestions(), 60)
	in := strings.NewReader("2\n")
	var out strings.Builder

	attempt, auto, err := runQuiz(s, in, &out, fakeClock(time.Second))
	require.NoError(t, err)
	require.True(t, auto)
	// Only the first question was answered before the stream closed.
	require.Equal(t, 1, attempt.Correct)
}

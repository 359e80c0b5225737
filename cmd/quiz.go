package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/prepwise/internal/llm"
	"github.com/abhisek/prepwise/internal/plan"
	"github.com/abhisek/prepwise/internal/quiz"
	"github.com/abhisek/prepwise/internal/quizgen"
	"github.com/abhisek/prepwise/internal/store"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the active day's quiz",
	Long: `Generates a quiz over the active day's topics and runs it with a
countdown. Score 80% or better to complete the day and unlock the next
one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, _ := cmd.Flags().GetString("plan")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p, err := loadPlan(cmd, st, planID)
		if err != nil {
			return err
		}

		active, ok := plan.ActiveIndex(p.Days)
		if !ok {
			fmt.Println("All days completed. Nothing left to quiz!")
			return nil
		}
		day := p.Days[active]
		topics := plan.ExtractTopics(day.Topics)
		if len(topics) == 0 {
			return fmt.Errorf("day %d has no topics", day.Day)
		}

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		gen := quizgen.New(provider, quizgen.DefaultConfig())
		questions, err := gen.Generate(ctx, quizgen.GenerateInput{
			Topics:             topics,
			ExamName:           p.ExamName,
			TotalDays:          p.TotalDays,
			StudyPlanID:        p.ID,
			QuestionsPerQuiz:   p.QuestionsPerQuiz,
			PerQuestionSeconds: p.PerQuestionSeconds,
		})
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}

		session := quiz.NewSession(questions, p.PerQuestionSeconds)
		fmt.Printf("Day %d quiz: %d questions, %d seconds total. Pass mark is %.0f%%.\n\n",
			day.Day, session.QuestionCount(), session.Remaining(), quiz.PassThreshold)

		attempt, autoSubmitted, err := runQuiz(session, os.Stdin, os.Stdout, time.Now)
		if err != nil {
			return err
		}

		err = st.EventRepo().AppendQuizEvent(ctx, store.QuizEventData{
			QuizID:        session.ID(),
			PlanID:        p.ID,
			Day:           day.Day,
			Topics:        topics,
			Score:         attempt.Score,
			Correct:       attempt.Correct,
			Total:         attempt.Total,
			Passed:        attempt.Passed(),
			AutoSubmitted: autoSubmitted,
		})
		if err != nil {
			return fmt.Errorf("record quiz: %w", err)
		}

		printAttempt(os.Stdout, session, attempt, autoSubmitted)

		if attempt.Passed() {
			if err := p.CompleteActiveDay(); err != nil {
				return err
			}
			if err := st.PlanRepo().UpdateDays(ctx, p.ID, planToRecord(p).Days); err != nil {
				return fmt.Errorf("update plan: %w", err)
			}
			if _, ok := plan.ActiveIndex(p.Days); ok {
				fmt.Printf("\nDay %d completed! The next day is unlocked.\n", day.Day)
			} else {
				fmt.Println("\nPlan complete. Congratulations!")
			}
		} else {
			fmt.Printf("\nBelow the pass mark. Review the material and retake the quiz for day %d.\n", day.Day)
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().String("plan", "", "Plan ID (defaults to the latest plan)")
}

// runQuiz drives the session from a line-based input stream. The
// countdown advances by wall-clock time between inputs, applied as
// whole-second ticks; an expired countdown auto-submits with whatever
// answers are in.
func runQuiz(s *quiz.Session, in io.Reader, out io.Writer, now func() time.Time) (*quiz.Attempt, bool, error) {
	scanner := bufio.NewScanner(in)
	last := now()

	for s.State() == quiz.StateInProgress {
		printQuestion(out, s)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, false, fmt.Errorf("read input: %w", err)
			}
			// Input closed: treat like an expired timer and force
			// submission of whatever is answered.
			for s.State() == quiz.StateInProgress {
				s.Tick()
			}
			attempt, _ := s.Result()
			return attempt, true, nil
		}

		t := now()
		expired := applyElapsed(s, int(t.Sub(last).Seconds()))
		last = t
		if expired {
			fmt.Fprintln(out, "\nTime's up! Submitting your answers.")
			attempt, _ := s.Result()
			return attempt, true, nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "n":
			next := s.Cursor() + 1
			switch {
			case next >= s.QuestionCount():
				fmt.Fprintln(out, "Already at the last question.")
			case !s.CanGoTo(next):
				fmt.Fprintln(out, "Answer this question before moving on.")
			default:
				_ = s.GoToQuestion(next)
			}
		case line == "p":
			if err := s.GoToQuestion(s.Cursor() - 1); err != nil {
				fmt.Fprintln(out, "Already at the first question.")
			}
		case line == "submit":
			attempt, err := s.Submit()
			if err != nil {
				fmt.Fprintln(out, "Answer every question before submitting.")
				continue
			}
			return attempt, false, nil
		default:
			option, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintln(out, "Enter an option number, n, p, or submit.")
				continue
			}
			if err := s.SelectAnswer(s.Cursor(), option-1); err != nil {
				fmt.Fprintln(out, "That option is out of range.")
				continue
			}
			// Selecting an answer advances to the next question when
			// the navigation policy allows it.
			if next := s.Cursor() + 1; next < s.QuestionCount() && s.CanGoTo(next) {
				_ = s.GoToQuestion(next)
			}
		}
	}

	attempt, _ := s.Result()
	return attempt, true, nil
}

// applyElapsed advances the countdown by n seconds. Returns true when
// the countdown expired and the session auto-submitted.
func applyElapsed(s *quiz.Session, n int) bool {
	for i := 0; i < n; i++ {
		if s.Tick() {
			return true
		}
	}
	return false
}

func printQuestion(out io.Writer, s *quiz.Session) {
	i := s.Cursor()
	q, err := s.Question(i)
	if err != nil {
		return
	}

	fmt.Fprintf(out, "[%ds left] Question %d/%d: %s\n", s.Remaining(), i+1, s.QuestionCount(), q.Text)
	selected, answered := s.Answer(i)
	for j, opt := range q.Options {
		marker := " "
		if answered && j == selected {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %d. %s\n", marker, j+1, opt)
	}
	fmt.Fprint(out, "> ")
}

func printAttempt(out io.Writer, s *quiz.Session, attempt *quiz.Attempt, autoSubmitted bool) {
	if autoSubmitted {
		fmt.Fprintln(out, "Auto-submitted when the countdown expired.")
	}
	outcome := "FAILED"
	if attempt.Passed() {
		outcome = "PASSED"
	}
	fmt.Fprintf(out, "\nScore: %.0f%% (%d/%d) — %s\n", attempt.Score, attempt.Correct, attempt.Total, outcome)

	for i := 0; i < s.QuestionCount(); i++ {
		q, err := s.Question(i)
		if err != nil {
			continue
		}
		selected, answered := attempt.Answers[i]
		if answered && selected == q.CorrectIndex {
			continue
		}
		fmt.Fprintf(out, "\nQuestion %d: %s\n", i+1, q.Text)
		if answered {
			fmt.Fprintf(out, "  Your answer:    %s\n", q.Options[selected])
		} else {
			fmt.Fprintln(out, "  Your answer:    (none)")
		}
		fmt.Fprintf(out, "  Correct answer: %s\n", q.Options[q.CorrectIndex])
		if q.Explanation != "" {
			fmt.Fprintf(out, "  %s\n", q.Explanation)
		}
	}
}

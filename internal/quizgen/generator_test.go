package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/prepwise/internal/llm"
)

func quizJSON(n int) json.RawMessage {
	var qs []string
	for i := 0; i < n; i++ {
		qs = append(qs, fmt.Sprintf(`{
			"question_text": "Question %d?",
			"options": ["A%d", "B%d", "C%d", "D%d"],
			"correct_answer_index": 1,
			"explanation": "Because B."
		}`, i, i, i, i, i))
	}
	return json.RawMessage(`{"questions":[` + strings.Join(qs, ",") + `]}`)
}

func testInput(n int) GenerateInput {
	return GenerateInput{
		Topics:             []string{"Math: Algebra", "Math: Geometry"},
		ExamName:           "SAT",
		QuestionsPerQuiz:   n,
		PerQuestionSeconds: 60,
	}
}

func TestGenerate_OK(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(5)})
	g := New(mock, DefaultConfig())

	questions, err := g.Generate(context.Background(), testInput(5))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("len(questions) = %d, want 5", len(questions))
	}
	q := questions[0]
	if q.Text != "Question 0?" || q.CorrectIndex != 1 || len(q.Options) != 4 {
		t.Errorf("unexpected question: %+v", q)
	}
	if len(mock.Calls) != 1 || mock.Calls[0].Schema != QuizSchema {
		t.Error("expected one schema-constrained provider call")
	}
}

func TestGenerate_WrongCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(3)})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput(5))
	if err == nil {
		t.Fatal("expected error for wrong question count")
	}
}

func TestGenerate_BadQuestion(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"correct index out of range", `{"questions":[{"question_text":"Q","options":["a","b","c","d"],"correct_answer_index":4,"explanation":"e"}]}`},
		{"too few options", `{"questions":[{"question_text":"Q","options":["a","b"],"correct_answer_index":0,"explanation":"e"}]}`},
		{"duplicate options", `{"questions":[{"question_text":"Q","options":["a","a","c","d"],"correct_answer_index":0,"explanation":"e"}]}`},
		{"empty text", `{"questions":[{"question_text":"","options":["a","b","c","d"],"correct_answer_index":0,"explanation":"e"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.body)})
			g := New(mock, DefaultConfig())
			if _, err := g.Generate(context.Background(), testInput(1)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGenerate_RequiresTopics(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock, DefaultConfig())

	in := testInput(5)
	in.Topics = nil
	if _, err := g.Generate(context.Background(), in); err == nil {
		t.Error("expected error for empty topics")
	}
	if mock.CallCount() != 0 {
		t.Error("provider should not be called without topics")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput(5)); err == nil {
		t.Error("expected provider error to propagate")
	}
}

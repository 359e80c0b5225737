package materialgen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/prepwise/internal/content"
	"github.com/abhisek/prepwise/internal/llm"
)

func testInput(kind content.Kind) Input {
	return Input{
		ExamName: "NEET",
		Topics:   []string{"Physics: Kinematics"},
		UserID:   "u1",
		PlanID:   "p1",
		Day:      3,
		Kind:     kind,
	}
}

func TestFetch_ReturnsRawPayload(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(revisionJSON)})
	s := NewService(mock, DefaultConfig())

	raw, err := s.Fetch(context.Background(), testInput(content.KindRevisionNotes))
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if raw != revisionJSON {
		t.Error("Fetch must return the payload verbatim for caching")
	}
	if len(mock.Calls) != 1 || mock.Calls[0].Schema != RevisionNotesSchema {
		t.Error("expected one call with the revision-notes schema")
	}
}

func TestFetch_SchemaPerKind(t *testing.T) {
	tests := []struct {
		kind content.Kind
		want *llm.Schema
	}{
		{content.KindSummary, KeyConceptsSchema},
		{content.KindFullChapter, KeyConceptsSchema},
		{content.KindRevisionNotes, RevisionNotesSchema},
		{content.KindPracticeQuiz, PracticeQuizSchema},
	}
	for _, tt := range tests {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{}`)})
		s := NewService(mock, DefaultConfig())
		if _, err := s.Fetch(context.Background(), testInput(tt.kind)); err != nil {
			t.Fatalf("Fetch(%q): %v", tt.kind, err)
		}
		if mock.Calls[0].Schema != tt.want {
			t.Errorf("kind %q used schema %q", tt.kind, mock.Calls[0].Schema.Name)
		}
	}
}

func TestFetch_ErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	s := NewService(mock, DefaultConfig())

	if _, err := s.Fetch(context.Background(), testInput(content.KindSummary)); err == nil {
		t.Error("expected provider error to propagate")
	}
}

func TestFetch_RequiresTopics(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewService(mock, DefaultConfig())

	in := testInput(content.KindSummary)
	in.Topics = nil
	if _, err := s.Fetch(context.Background(), in); err == nil {
		t.Error("expected error for empty topics")
	}
	if mock.CallCount() != 0 {
		t.Error("provider should not be called without topics")
	}
}

func TestFetchMaterial_Decodes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(revisionJSON)})
	s := NewService(mock, DefaultConfig())

	m, err := s.FetchMaterial(context.Background(), testInput(content.KindRevisionNotes))
	if err != nil {
		t.Fatalf("FetchMaterial: %v", err)
	}
	if m.IsOpaque() || len(m.Notes) != 1 {
		t.Errorf("unexpected material: %+v", m)
	}
}

func TestAskDoubt_DecodesAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation":{"simple_answer":"F = ma.","detailed_explanation":"Force equals mass times acceleration."},"tone":"neutral","student_query":"What is Newton's second law?"}`),
	})
	s := NewService(mock, DefaultConfig())

	ans, err := s.AskDoubt(context.Background(), "NEET", "Physics: Dynamics", "What is Newton's second law?", nil)
	if err != nil {
		t.Fatalf("AskDoubt: %v", err)
	}
	if ans.SimpleAnswer != "F = ma." {
		t.Errorf("SimpleAnswer = %q", ans.SimpleAnswer)
	}
}

func TestAskDoubt_OpaqueFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Newton's second law is F = ma.`),
	})
	s := NewService(mock, DefaultConfig())

	ans, err := s.AskDoubt(context.Background(), "NEET", "Physics", "law?", nil)
	if err != nil {
		t.Fatalf("AskDoubt: %v", err)
	}
	if ans.SimpleAnswer == "" {
		t.Error("fallback must surface the raw payload as the answer")
	}
}

func TestAskDoubt_HistoryIncluded(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation":{"simple_answer":"Yes.","detailed_explanation":"As before."},"tone":"neutral","student_query":"still?"}`),
	})
	s := NewService(mock, DefaultConfig())

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "first doubt"},
		{Role: llm.RoleAssistant, Content: "first answer"},
	}
	if _, err := s.AskDoubt(context.Background(), "NEET", "Physics", "still?", history); err != nil {
		t.Fatalf("AskDoubt: %v", err)
	}
	if got := len(mock.Calls[0].Messages); got != 3 {
		t.Errorf("messages sent = %d, want 3 (history + new doubt)", got)
	}
}

package doubts

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/prepwise/internal/llm"
	"github.com/abhisek/prepwise/internal/materialgen"
	"github.com/abhisek/prepwise/internal/store"
)

// mockDoubtRepo implements store.DoubtRepo in memory.
type mockDoubtRepo struct {
	messages  []store.DoubtMessageData
	appendErr error
}

func (m *mockDoubtRepo) Append(_ context.Context, data store.DoubtMessageData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockDoubtRepo) Thread(_ context.Context, planID, topic string) ([]store.DoubtMessageRecord, error) {
	var out []store.DoubtMessageRecord
	for _, msg := range m.messages {
		if msg.PlanID == planID && msg.Topic == topic {
			out = append(out, store.DoubtMessageRecord{
				PlanID: msg.PlanID, Topic: msg.Topic,
				Sender: msg.Sender, Content: msg.Content,
			})
		}
	}
	return out, nil
}

func (m *mockDoubtRepo) Topics(_ context.Context, planID string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, msg := range m.messages {
		if msg.PlanID == planID && !seen[msg.Topic] {
			seen[msg.Topic] = true
			out = append(out, msg.Topic)
		}
	}
	return out, nil
}

const answerJSON = `{"explanation":{"simple_answer":"F = ma.","detailed_explanation":"Force equals mass times acceleration."},"tone":"neutral","student_query":"law?"}`

func newTestService(mock *llm.MockProvider, repo store.DoubtRepo) *Service {
	gen := materialgen.NewService(mock, materialgen.DefaultConfig())
	return NewService(gen, repo, "NEET", "plan-1")
}

func TestAsk_AppendsQuestionAndAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(answerJSON)})
	repo := &mockDoubtRepo{}
	s := newTestService(mock, repo)

	ans, err := s.Ask(context.Background(), "Physics: Dynamics", "law?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if ans.SimpleAnswer != "F = ma." {
		t.Errorf("SimpleAnswer = %q", ans.SimpleAnswer)
	}

	thread := s.Thread("Physics: Dynamics")
	if len(thread) != 2 {
		t.Fatalf("thread length = %d, want 2", len(thread))
	}
	if thread[0].Sender != SenderUser || thread[1].Sender != SenderAssistant {
		t.Errorf("sender order wrong: %v, %v", thread[0].Sender, thread[1].Sender)
	}

	if len(repo.messages) != 2 {
		t.Errorf("persisted %d messages, want 2", len(repo.messages))
	}
}

func TestAsk_HistorySentOnFollowUp(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(answerJSON)},
		llm.MockResponse{Content: json.RawMessage(answerJSON)},
	)
	s := newTestService(mock, nil)

	ctx := context.Background()
	if _, err := s.Ask(ctx, "Physics: Dynamics", "law?"); err != nil {
		t.Fatalf("first Ask: %v", err)
	}
	if _, err := s.Ask(ctx, "Physics: Dynamics", "units?"); err != nil {
		t.Fatalf("second Ask: %v", err)
	}

	// Second call carries the first exchange plus the new question.
	if got := len(mock.Calls[1].Messages); got != 3 {
		t.Errorf("follow-up messages = %d, want 3", got)
	}
}

func TestAsk_QuestionKeptOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	s := newTestService(mock, nil)

	if _, err := s.Ask(context.Background(), "Physics: Dynamics", "law?"); err == nil {
		t.Fatal("expected provider error")
	}

	thread := s.Thread("Physics: Dynamics")
	if len(thread) != 1 || thread[0].Sender != SenderUser {
		t.Errorf("thread after failure = %+v, want just the question", thread)
	}
}

func TestAsk_PersistErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(answerJSON)})
	repo := &mockDoubtRepo{appendErr: errors.New("disk full")}
	s := newTestService(mock, repo)

	if _, err := s.Ask(context.Background(), "Physics: Dynamics", "law?"); err == nil {
		t.Error("expected persistence error to surface")
	}
}

func TestLoad_HydratesThreads(t *testing.T) {
	repo := &mockDoubtRepo{messages: []store.DoubtMessageData{
		{PlanID: "plan-1", Topic: "Algebra", Sender: "user", Content: "q1"},
		{PlanID: "plan-1", Topic: "Algebra", Sender: "assistant", Content: "a1"},
		{PlanID: "plan-2", Topic: "Algebra", Sender: "user", Content: "other plan"},
	}}
	s := newTestService(llm.NewMockProvider(), repo)

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	thread := s.Thread("Algebra")
	if len(thread) != 2 {
		t.Fatalf("thread length = %d, want 2 (other plan excluded)", len(thread))
	}
	if thread[0].Content != "q1" || thread[1].Content != "a1" {
		t.Errorf("hydrated thread = %+v", thread)
	}
}

package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testPlanRecord() *PlanRecord {
	return &PlanRecord{
		PlanID:             "plan-1",
		ExamName:           "NEET",
		TotalDays:          2,
		PerQuestionSeconds: 60,
		QuestionsPerQuiz:   5,
		Days: []PlanDay{
			{Day: 1, Topics: "Physics: Kinematics", Status: "pending"},
			{Day: 2, Topics: "Physics: Dynamics", Status: "pending"},
		},
	}
}

func TestPlanSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for unknown plan ID")
	}

	if err := repo.Save(ctx, testPlanRecord()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Get(ctx, "plan-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected saved plan")
	}
	if got.ExamName != "NEET" || len(got.Days) != 2 {
		t.Errorf("unexpected plan: %+v", got)
	}
	if got.Days[0].Topics != "Physics: Kinematics" {
		t.Errorf("day topics not round-tripped: %+v", got.Days[0])
	}
}

func TestPlanUpdateDays(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testPlanRecord()); err != nil {
		t.Fatalf("save: %v", err)
	}

	days := testPlanRecord().Days
	days[0].Status = "completed"
	if err := repo.UpdateDays(ctx, "plan-1", days); err != nil {
		t.Fatalf("update days: %v", err)
	}

	got, err := repo.Get(ctx, "plan-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Days[0].Status != "completed" {
		t.Errorf("day 1 status = %q, want completed", got.Days[0].Status)
	}

	if err := repo.UpdateDays(ctx, "missing", days); err == nil {
		t.Error("expected error updating unknown plan")
	}
}

func TestPlanLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if latest != nil {
		t.Fatal("expected nil when no plans exist")
	}

	if err := repo.Save(ctx, testPlanRecord()); err != nil {
		t.Fatalf("save: %v", err)
	}

	latest, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.PlanID != "plan-1" {
		t.Errorf("latest = %+v", latest)
	}
}

func TestDoubtThreadAppendOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.DoubtRepo()
	ctx := context.Background()

	thread, err := repo.Thread(ctx, "plan-1", "Physics: Kinematics")
	if err != nil {
		t.Fatalf("thread (empty): %v", err)
	}
	if len(thread) != 0 {
		t.Fatal("unknown topic must yield an empty thread")
	}

	msgs := []DoubtMessageData{
		{PlanID: "plan-1", Topic: "Physics: Kinematics", Sender: "user", Content: "What is velocity?"},
		{PlanID: "plan-1", Topic: "Physics: Kinematics", Sender: "assistant", Content: "Rate of change of position."},
		{PlanID: "plan-1", Topic: "Physics: Kinematics", Sender: "user", Content: "And acceleration?"},
	}
	for _, m := range msgs {
		if err := repo.Append(ctx, m); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	thread, err = repo.Thread(ctx, "plan-1", "Physics: Kinematics")
	if err != nil {
		t.Fatalf("thread: %v", err)
	}
	if len(thread) != 3 {
		t.Fatalf("thread length = %d, want 3", len(thread))
	}
	for i, m := range msgs {
		if thread[i].Sender != m.Sender || thread[i].Content != m.Content {
			t.Errorf("message %d = %+v, want %+v", i, thread[i], m)
		}
	}
}

func TestDoubtTopics(t *testing.T) {
	s := openTestStore(t)
	repo := s.DoubtRepo()
	ctx := context.Background()

	for _, topic := range []string{"Chemistry: Bonding", "Physics: Kinematics", "Chemistry: Bonding"} {
		err := repo.Append(ctx, DoubtMessageData{
			PlanID: "plan-1", Topic: topic, Sender: "user", Content: "q",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	topics, err := repo.Topics(ctx, "plan-1")
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	want := []string{"Chemistry: Bonding", "Physics: Kinematics"}
	if len(topics) != len(want) {
		t.Fatalf("topics = %v, want %v", topics, want)
	}
	for i := range want {
		if topics[i] != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, topics[i], want[i])
		}
	}
}

func TestMaterialPutGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.MaterialRepo()
	ctx := context.Background()

	rec, err := repo.Get(ctx, "Physics: Kinematics", "summary")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil for missing entry")
	}

	if err := repo.Put(ctx, "Physics: Kinematics", "summary", `{"v":1}`); err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err = repo.Get(ctx, "Physics: Kinematics", "summary")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil || rec.Payload != `{"v":1}` {
		t.Errorf("unexpected record: %+v", rec)
	}

	// Put on an existing key replaces the payload.
	if err := repo.Put(ctx, "Physics: Kinematics", "summary", `{"v":2}`); err != nil {
		t.Fatalf("put (replace): %v", err)
	}
	rec, err = repo.Get(ctx, "Physics: Kinematics", "summary")
	if err != nil {
		t.Fatalf("get (after replace): %v", err)
	}
	if rec.Payload != `{"v":2}` {
		t.Errorf("payload = %q, want replaced value", rec.Payload)
	}
}

func TestEventSequenceSharedAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "m", Purpose: "quiz-gen", Success: true,
	})
	if err != nil {
		t.Fatalf("append LLM event: %v", err)
	}

	err = repo.AppendQuizEvent(ctx, QuizEventData{
		QuizID: "q1", PlanID: "plan-1", Day: 1, Topics: []string{"t"},
		Score: 80, Correct: 4, Total: 5, Passed: true,
	})
	if err != nil {
		t.Fatalf("append quiz event: %v", err)
	}

	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	quizEvents, err := repo.QueryQuizEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query quiz events: %v", err)
	}
	if len(llmEvents) != 1 || len(quizEvents) != 1 {
		t.Fatalf("event counts = %d, %d", len(llmEvents), len(quizEvents))
	}
	if quizEvents[0].Sequence <= llmEvents[0].Sequence {
		t.Errorf("quiz event sequence %d not after LLM event sequence %d",
			quizEvents[0].Sequence, llmEvents[0].Sequence)
	}
}

func TestQuizEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := QuizEventData{
		QuizID: "q1", PlanID: "plan-1", Day: 3,
		Topics: []string{"Physics: Kinematics", "Physics: Dynamics"},
		Score:  60, Correct: 3, Total: 5, Passed: false, AutoSubmitted: true,
	}
	if err := repo.AppendQuizEvent(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryQuizEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len = %d", len(events))
	}
	got := events[0].QuizEventData
	if got.Score != 60 || !got.AutoSubmitted || got.Passed || len(got.Topics) != 2 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 60, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "doubt-answer", InputTokens: 10, OutputTokens: 5, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %+v", stats)
	}
	// Sorted by purpose: doubt-answer first.
	if stats[0].Purpose != "doubt-answer" || stats[0].Requests != 1 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[1].Purpose != "quiz-gen" || stats[1].Requests != 2 || stats[1].OutputTokens != 110 {
		t.Errorf("stats[1] = %+v", stats[1])
	}
}

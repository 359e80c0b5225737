package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// PlanDay is the persisted form of one plan day. Topics is the
// free-text day description; subtopics are derived from it at read
// time, not stored.
type PlanDay struct {
	Day    int
	Topics string
	Status string
}

// PlanRecord is the persisted form of a study plan.
type PlanRecord struct {
	PlanID             string
	ExamName           string
	TotalDays          int
	PerQuestionSeconds int
	QuestionsPerQuiz   int
	Days               []PlanDay
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PlanRepo persists study plans and their per-day progress.
type PlanRepo interface {
	// Save stores a new plan.
	Save(ctx context.Context, rec *PlanRecord) error

	// Get returns the plan with the given ID, or nil if absent.
	Get(ctx context.Context, planID string) (*PlanRecord, error)

	// Latest returns the most recently created plan, or nil if none exist.
	Latest(ctx context.Context) (*PlanRecord, error)

	// List returns all plans, most recent first.
	List(ctx context.Context) ([]PlanRecord, error)

	// UpdateDays replaces the day entries of an existing plan.
	UpdateDays(ctx context.Context, planID string, days []PlanDay) error
}

// DoubtMessageData captures one message appended to a doubt thread.
type DoubtMessageData struct {
	PlanID  string
	Topic   string
	Sender  string
	Content string
}

// DoubtMessageRecord is a persisted doubt thread message.
type DoubtMessageRecord struct {
	PlanID    string
	Topic     string
	Sender    string
	Content   string
	CreatedAt time.Time
}

// DoubtRepo provides append and read access to per-topic doubt threads.
// Threads are append-only.
type DoubtRepo interface {
	// Append adds a message to the end of a topic's thread.
	Append(ctx context.Context, data DoubtMessageData) error

	// Thread returns a topic's messages in append order. An unknown
	// topic yields an empty slice, not an error.
	Thread(ctx context.Context, planID, topic string) ([]DoubtMessageRecord, error)

	// Topics returns the topics that have at least one message, for
	// the given plan.
	Topics(ctx context.Context, planID string) ([]string, error)
}

// MaterialRecord is a persisted raw material payload for one topic and kind.
type MaterialRecord struct {
	Topic     string
	Kind      string
	Payload   string
	FetchedAt time.Time
}

// MaterialRepo is the durable side of the material cache.
type MaterialRepo interface {
	// Put stores or replaces the payload for a topic and kind.
	Put(ctx context.Context, topic, kind, payload string) error

	// Get returns the stored payload, or nil if absent.
	Get(ctx context.Context, topic, kind string) (*MaterialRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	LLMRequestEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMUsageStats aggregates token usage per purpose label.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// QuizEventData captures the outcome of a submitted quiz attempt.
type QuizEventData struct {
	QuizID        string
	PlanID        string
	Day           int
	Topics        []string
	Score         float64
	Correct       int
	Total         int
	Passed        bool
	AutoSubmitted bool
}

// QuizEventRecord is a persisted quiz event.
type QuizEventRecord struct {
	QuizEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// AppendQuizEvent records a submitted quiz attempt.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// QueryQuizEvents returns quiz events, newest first.
	QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error)
}

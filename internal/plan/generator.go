package plan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/prepwise/internal/llm"
)

// GenerateInput holds the context needed to generate a study plan.
type GenerateInput struct {
	// ExamName is the exam the student is preparing for.
	ExamName string

	// TotalDays is the number of days the plan should span.
	TotalDays int

	// UserID identifies the student for event logging.
	UserID string

	// PerQuestionSeconds is the time allowance per quiz question.
	PerQuestionSeconds int

	// QuestionsPerQuiz is the number of questions in each day's quiz.
	QuestionsPerQuiz int
}

// Generator produces a day-by-day study plan.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*StudyPlan, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	cfg      GeneratorConfig
}

// GeneratorConfig controls plan generation.
type GeneratorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGeneratorConfig returns the recommended generation settings.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:   2048,
		Temperature: 0.5,
	}
}

// NewGenerator creates an LLMGenerator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg GeneratorConfig) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

// planOutput is the raw LLM response before validation.
type planOutput struct {
	Days []planDayOutput `json:"days"`
}

type planDayOutput struct {
	Day    int    `json:"day"`
	Topics string `json:"topics"`
}

// Generate asks the LLM for a day-by-day topic breakdown and returns a
// validated StudyPlan with a fresh ID and all days pending.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*StudyPlan, error) {
	ctx = llm.WithPurpose(ctx, "plan-gen")

	if input.PerQuestionSeconds <= 0 {
		input.PerQuestionSeconds = DefaultPerQuestionSeconds
	}
	if input.QuestionsPerQuiz <= 0 {
		input.QuestionsPerQuiz = DefaultQuestionsPerQuiz
	}

	req := llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(input)},
		},
		Schema:      PlanSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}
	if len(out.Days) != input.TotalDays {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("expected %d days, got %d", input.TotalDays, len(out.Days)),
		}
	}

	p := &StudyPlan{
		ID:                 uuid.NewString(),
		ExamName:           input.ExamName,
		TotalDays:          input.TotalDays,
		PerQuestionSeconds: input.PerQuestionSeconds,
		QuestionsPerQuiz:   input.QuestionsPerQuiz,
	}
	for _, d := range out.Days {
		p.Days = append(p.Days, DayTopic{
			Day:    d.Day,
			Topics: d.Topics,
			Status: StatusPending,
		})
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}
	return p, nil
}

// Default quiz parameters applied when the caller does not specify them.
const (
	DefaultPerQuestionSeconds = 60
	DefaultQuestionsPerQuiz   = 5
)

package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/prepwise/internal/llm"
)

// Generator produces quiz questions for a day's topics.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) ([]Question, error)
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// OptionsPerQuestion is the required option count per question.
	OptionsPerQuestion int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:          2048,
		Temperature:        0.7,
		OptionsPerQuestion: 4,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	Explanation        string   `json:"explanation"`
}

// Generate produces the questions for one quiz attempt.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	if len(input.Topics) == 0 {
		return nil, fmt.Errorf("quiz generation: no topics")
	}
	if input.QuestionsPerQuiz <= 0 {
		return nil, fmt.Errorf("quiz generation: question count must be positive, got %d", input.QuestionsPerQuiz)
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	questions := make([]Question, 0, len(out.Questions))
	for i, q := range out.Questions {
		if err := g.validate(i, q); err != nil {
			return nil, err
		}
		questions = append(questions, Question{
			Text:         q.QuestionText,
			Options:      q.Options,
			CorrectIndex: q.CorrectAnswerIndex,
			Explanation:  q.Explanation,
		})
	}

	if len(questions) != input.QuestionsPerQuiz {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("expected %d questions, got %d", input.QuestionsPerQuiz, len(questions)),
		}
	}

	return questions, nil
}

// validate checks the structural invariants of one generated question.
func (g *LLMGenerator) validate(i int, q questionOutput) error {
	if q.QuestionText == "" {
		return fmt.Errorf("question %d: empty text", i)
	}
	if len(q.Options) != g.config.OptionsPerQuestion {
		return fmt.Errorf("question %d: %d options, want %d", i, len(q.Options), g.config.OptionsPerQuestion)
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return fmt.Errorf("question %d: correct index %d out of range", i, q.CorrectAnswerIndex)
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("question %d: empty option", i)
		}
		if seen[opt] {
			return fmt.Errorf("question %d: duplicate option %q", i, opt)
		}
		seen[opt] = true
	}
	return nil
}

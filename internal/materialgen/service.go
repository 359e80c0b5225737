package materialgen

import (
	"context"
	"fmt"

	"github.com/abhisek/prepwise/internal/llm"
)

// Config controls material generation.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.4,
	}
}

// Service is the material-generation collaborator client. It returns
// raw response payloads so the material cache can store them verbatim;
// callers decode lazily with Decode at display time.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a material generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Fetch requests material for the given input and returns the raw
// response payload. On error nothing is returned, so a caching caller
// stays unpoisoned.
func (s *Service) Fetch(ctx context.Context, input Input) (string, error) {
	ctx = llm.WithPurpose(ctx, "material-gen")

	if len(input.Topics) == 0 {
		return "", fmt.Errorf("material generation: no topics")
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      schemaFor(input.Kind),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("material generation: %w", err)
	}

	return string(resp.Content), nil
}

// FetchMaterial is Fetch followed by Decode, for callers that bypass
// the cache.
func (s *Service) FetchMaterial(ctx context.Context, input Input) (Material, error) {
	raw, err := s.Fetch(ctx, input)
	if err != nil {
		return Material{}, err
	}
	return Decode(input.Kind, raw), nil
}

// AskDoubt requests an answer to a student doubt. The thread so far is
// passed as conversation history so follow-up doubts keep their
// context.
func (s *Service) AskDoubt(ctx context.Context, examName, topic, query string, history []llm.Message) (DoubtAnswer, error) {
	ctx = llm.WithPurpose(ctx, "doubt-answer")

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: buildDoubtUserMessage(examName, topic, query),
	})

	req := llm.Request{
		System:      doubtSystemPrompt,
		Messages:    messages,
		Schema:      DoubtAnswerSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return DoubtAnswer{}, fmt.Errorf("doubt answer: %w", err)
	}

	answer, ok := DecodeDoubt(string(resp.Content))
	if !ok {
		// Unparseable payload degrades to opaque display text rather
		// than an error.
		return DoubtAnswer{
			SimpleAnswer: StripFences(string(resp.Content)),
			StudentQuery: query,
		}, nil
	}
	return answer, nil
}

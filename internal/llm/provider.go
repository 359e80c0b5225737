package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the generation backend. The study
// material, quiz, plan and doubt collaborators all speak through it.
type Provider interface {
	// Generate sends a prompt and returns the model's output. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and the response Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation history. Most prepwise calls are
	// single-turn; doubt answering sends the thread so far.
	Messages []Message

	// Schema, when set, constrains the response to the given JSON
	// Schema. When nil the response Content is the raw text.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means
	// deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "study-plan".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// carried a schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label ("quiz-gen", "material-gen", ...)
// to the context for request event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/prepwise/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and request event logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from PREPWISE_* env vars,
// falling back to bare API key discovery when no provider is selected
// explicitly.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		if os.Getenv("PREPWISE_LLM_PROVIDER") != "" {
			// Explicit provider choice: misconfiguration is an error,
			// not a cue to guess.
			return nil, err
		}
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}

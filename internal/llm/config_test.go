package llm

import "testing"

func TestConfigFromEnv_Defaults(t *testing.T) {
	// No env vars set in the test environment for these keys.
	t.Setenv("PREPWISE_LLM_PROVIDER", "")
	t.Setenv("PREPWISE_ANTHROPIC_MODEL", "")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("Anthropic.Model = %q, want claude-haiku", cfg.Anthropic.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("Retry.MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("PREPWISE_LLM_PROVIDER", "openai")
	t.Setenv("PREPWISE_OPENAI_API_KEY", "sk-test")
	t.Setenv("PREPWISE_OPENAI_MODEL", "gpt-4o")
	t.Setenv("PREPWISE_OPENAI_BASE_URL", "http://localhost:9999/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI config not read from env: %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("BaseURL = %q", cfg.OpenAI.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing gemini key")
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "llama-at-home"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate(mock) = %v, want nil", err)
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	t.Setenv("ANTHROPIC_API_KEY", "a")

	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Errorf("DiscoverConfig = (%q, %t), want (gemini, true)", cfg.Provider, ok)
	}
}

func TestDiscoverConfig_None(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected no discovery without keys")
	}
}

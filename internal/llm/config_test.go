package llm

import "testing"

func TestConfigFromEnv_ExplicitProvider(t *testing.T) {
	t.Setenv("PREPDECK_LLM_PROVIDER", "openai")
	t.Setenv("PREPDECK_OPENAI_API_KEY", "sk-test")
	t.Setenv("PREPDECK_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigFromEnv_StandardKeyProbe(t *testing.T) {
	t.Setenv("PREPDECK_LLM_PROVIDER", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gk-test")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "gk-test" {
		t.Errorf("APIKey = %q", cfg.Gemini.APIKey)
	}
}

func TestConfigValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	cfg.Anthropic.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestConfigValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "quantum"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

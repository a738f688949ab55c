package llm

import (
	"context"
	"strings"
	"testing"

	"diplomacy-agent/internal/infrastructure/env"
	"diplomacy-agent/internal/infrastructure/llm/openaicompat"
)

func TestNew_UnknownProviderFails(t *testing.T) {
	envService := &env.EnvService{}

	_, err := New(context.Background(), "anthropic:claude-3-opus", envService, nil)
	if err == nil {
		t.Fatal("expected an error for an unmapped provider prefix")
	}
	if !strings.Contains(err.Error(), "anthropic") {
		t.Errorf("error should name the offending provider, got %v", err)
	}
	for _, name := range []string{"openai", "openrouter", "deepseek", "together", "gemini"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should list allowed provider %s, got %v", name, err)
		}
	}
}

func TestNew_MissingAPIKeyFails(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	envService := &env.EnvService{}

	_, err := New(context.Background(), "gpt-4o", envService, nil)
	if err == nil {
		t.Fatal("expected an error when no API key is available")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error should name the env variable to set, got %v", err)
	}
}

func TestNew_InlineKeyOverridesEnv(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	envService := &env.EnvService{}

	adapter, err := New(context.Background(), "openrouter:meta-llama/llama-3-70b#sk-inline", envService, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := adapter.(*openaicompat.Adapter); !ok {
		t.Errorf("expected an openaicompat adapter, got %T", adapter)
	}
}

package llm

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"diplomacy-agent/internal/application/port/output"
	"diplomacy-agent/internal/infrastructure/env"
	"diplomacy-agent/internal/infrastructure/llm/gemini"
	"diplomacy-agent/internal/infrastructure/llm/openaicompat"
)

type providerDefaults struct {
	envKey  string
	baseURL string
}

var providers = map[string]providerDefaults{
	"openai":     {envKey: "OPENAI_API_KEY", baseURL: "https://api.openai.com/v1"},
	"openrouter": {envKey: "OPENROUTER_API_KEY", baseURL: "https://openrouter.ai/api/v1"},
	"deepseek":   {envKey: "DEEPSEEK_API_KEY", baseURL: "https://api.deepseek.com"},
	"together":   {envKey: "TOGETHER_API_KEY", baseURL: "https://api.together.xyz/v1"},
	"gemini":     {envKey: "GEMINI_API_KEY"},
}

// New builds the chat adapter for a model spec. A key embedded in the spec
// overrides the provider's environment variable.
func New(ctx context.Context, spec string, envService *env.EnvService, logger output.LoggerPort) (output.LLMPort, error) {
	parsed := ParseSpec(spec)

	defaults, ok := providers[parsed.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q in model spec %q (want one of %s)",
			parsed.Provider, spec, strings.Join(providerNames(), ", "))
	}

	apiKey := parsed.APIKey
	if apiKey == "" {
		apiKey = envService.Get(defaults.envKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no API key for %s: set %s or embed one in the model spec", parsed.Provider, defaults.envKey)
	}

	if parsed.Provider == "gemini" {
		return gemini.New(ctx, gemini.Config{
			APIKey: apiKey,
			Model:  parsed.Model,
			Logger: logger,
		})
	}

	baseURL := parsed.BaseURL
	if baseURL == "" {
		baseURL = defaults.baseURL
	}
	return openaicompat.New(openaicompat.Config{
		APIKey:  apiKey,
		Model:   parsed.Model,
		BaseURL: baseURL,
		Logger:  logger,
	}), nil
}

func providerNames() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

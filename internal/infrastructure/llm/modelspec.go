// Package llm builds chat adapters from model spec strings of the form
//
//	[provider:]model[@baseURL][#apiKey]
//
// e.g. "openrouter:anthropic/claude-3.5-sonnet" or
// "gpt-4o@https://api.openai.com/v1#sk-...".
package llm

import "strings"

type ModelSpec struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
}

// ParseSpec splits a model spec string. The API key fragment is cut first
// so keys containing '@' or ':' survive, then the base URL, then the
// provider prefix.
func ParseSpec(spec string) ModelSpec {
	var parsed ModelSpec

	spec, parsed.APIKey = cutLast(spec, "#")
	spec, parsed.BaseURL = cutLast(spec, "@")

	if prefix, rest, ok := strings.Cut(spec, ":"); ok && providerLike(prefix) {
		parsed.Provider = strings.ToLower(prefix)
		parsed.Model = rest
	} else {
		parsed.Model = spec
		parsed.Provider = guessProvider(spec)
	}

	return parsed
}

func cutLast(s, sep string) (before, after string) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx+len(sep):]
}

// providerLike reports whether a colon prefix names a provider rather than
// being part of the model name. Any alphabetic token of three or more
// characters counts; this keeps an unmapped provider visible so the factory
// can reject it, rather than folding it into the model name. OpenAI
// fine-tune IDs ("ft:gpt-4o:...") fall through to the model name.
func providerLike(s string) bool {
	if len(s) < 3 {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// guessProvider infers a provider from bare model names so specs from
// older configs keep working.
func guessProvider(model string) string {
	name := strings.ToLower(model)
	switch {
	case strings.HasPrefix(name, "gemini"):
		return "gemini"
	case strings.HasPrefix(name, "deepseek"):
		return "deepseek"
	case strings.Contains(name, "/"):
		return "openrouter"
	default:
		return "openai"
	}
}

package prompts

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"diplomacy-agent/internal/domain/entity"
)

//go:embed system.txt
var DefaultSystemPrompt string

//go:embed movement.txt
var MovementPrompt string

//go:embed retreat.txt
var RetreatPrompt string

//go:embed context.txt
var contextTemplate string

//go:embed initial_state.txt
var initialStateTemplate string

// ErrUnknownPhase is returned when an order prompt is requested for a phase
// the store has no template for.
var ErrUnknownPhase = errors.New("unknown phase")

// ForPhase returns the literal template text for the given phase. The text
// is immutable: callers get exactly the embedded source.
func ForPhase(phase entity.Phase) (string, error) {
	switch phase {
	case entity.PhaseMovement:
		return MovementPrompt, nil
	case entity.PhaseRetreat:
		return RetreatPrompt, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPhase, phase)
}

// SystemPromptFor returns the power-specific system prompt from dir when one
// exists (e.g. france_system_prompt.txt), otherwise the embedded default.
// An empty dir always yields the default.
func SystemPromptFor(power entity.Power, dir string) string {
	if dir == "" {
		return DefaultSystemPrompt
	}
	name := strings.ToLower(string(power)) + "_system_prompt.txt"
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil || len(strings.TrimSpace(string(data))) == 0 {
		return DefaultSystemPrompt
	}
	return string(data)
}

package agent

import (
	"context"
	"strings"
	"time"

	"diplomacy-agent/internal/application/port/output"
	"diplomacy-agent/internal/domain/entity"
	"diplomacy-agent/internal/infrastructure/prompts"
	"diplomacy-agent/internal/usecase/parse"
)

// defaultGoals seeds an agent when the model's opening reply cannot be
// used.
var defaultGoals = []string{
	"Survive and expand",
	"Form beneficial alliances",
	"Secure key territories",
}

// Initialize asks the model for the power's opening goals and
// relationships and applies them. Any failure degrades to default goals
// and all-neutral relationships; initialization never fails the run.
func (a *Agent) Initialize(ctx context.Context, llm output.LLMPort, replies output.ReplyLogPort, model, systemPrompt string) {
	prompt, err := prompts.GenerateInitialStatePrompt(prompts.InitialStateData{
		Power:         a.power,
		AllowedLabels: allowedLabels(),
	})
	if err != nil {
		a.logger.Error("Failed to render initial-state prompt", "error", err)
		a.SetGoals(defaultGoals)
		return
	}

	if systemPrompt == "" {
		systemPrompt = prompts.DefaultSystemPrompt
	}

	resp, err := llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: systemPrompt},
			{Role: entity.RoleUser, Content: prompt},
		},
	})
	if err != nil {
		a.logger.Warn("Initial-state request failed, using defaults", "error", err)
		a.record(replies, model, prompt, "", "transport error: "+err.Error())
		a.SetGoals(defaultGoals)
		return
	}
	raw := resp.Message.Content

	state, err := parse.ExtractObject(raw)
	if err != nil {
		a.logger.Warn("Unparsable initial-state reply, using defaults", "error", err)
		a.record(replies, model, prompt, raw, "fallback: "+err.Error())
		a.SetGoals(defaultGoals)
		return
	}

	a.ApplyStateUpdate(state, "initialization")
	if len(a.Snapshot().Goals) == 0 {
		a.SetGoals(defaultGoals)
	}
	a.record(replies, model, prompt, raw, "ok")
	a.logger.Info("Agent initialized", "goals", a.Snapshot().Goals)
}

func (a *Agent) record(replies output.ReplyLogPort, model, prompt, reply, outcome string) {
	if replies == nil {
		return
	}
	replies.Record(output.ReplyRecord{
		Timestamp: time.Now(),
		Model:     model,
		Power:     a.power,
		PhaseName: "initialization",
		Kind:      "initialization",
		Prompt:    prompt,
		Reply:     reply,
		Outcome:   outcome,
	})
}

func allowedLabels() string {
	labels := []string{
		string(entity.RelEnemy),
		string(entity.RelUnfriendly),
		string(entity.RelNeutral),
		string(entity.RelFriendly),
		string(entity.RelAlly),
	}
	return strings.Join(labels, ", ")
}

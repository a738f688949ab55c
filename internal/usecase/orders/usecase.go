// Package orders generates a power's orders for one phase: render the
// phase prompt, call the model, parse the two-section reply and review the
// proposals against the engine's legal sets.
package orders

import (
	"context"
	"fmt"
	"time"

	"diplomacy-agent/internal/application/port/input"
	"diplomacy-agent/internal/application/port/output"
	"diplomacy-agent/internal/domain/entity"
	"diplomacy-agent/internal/infrastructure/prompts"
	"diplomacy-agent/internal/usecase/parse"
)

var _ input.OrderGenerator = (*UseCase)(nil)

type UseCase struct {
	llm         output.LLMPort
	logger      output.LoggerPort
	replies     output.ReplyLogPort
	model       string
	temperature float32
	maxTokens   int

	// systemPrompt is the seat's default; a request can still override it.
	systemPrompt string
}

func New(
	llm output.LLMPort,
	logger output.LoggerPort,
	replies output.ReplyLogPort,
	model string,
	temperature float32,
) *UseCase {
	return &UseCase{
		llm:         llm,
		logger:      logger,
		replies:     replies,
		model:       model,
		temperature: temperature,
	}
}

// WithSystemPrompt sets the system prompt used when a request carries none.
func (uc *UseCase) WithSystemPrompt(prompt string) *UseCase {
	uc.systemPrompt = prompt
	return uc
}

// WithMaxTokens caps the reply length of every request. Zero means no cap.
func (uc *UseCase) WithMaxTokens(n int) *UseCase {
	uc.maxTokens = n
	return uc
}

func (uc *UseCase) Generate(ctx context.Context, req input.OrderRequest) (*input.OrderResult, error) {
	instructions, err := prompts.ForPhase(req.Phase)
	if err != nil {
		return nil, err
	}

	data := prompts.BuildOrderPromptData(prompts.OrderContext{
		Power:    req.Power,
		Board:    req.Board,
		Possible: req.Possible,
		Agent:    req.Agent,
		Press:    req.Press,
	})
	prompt, err := prompts.GenerateOrderPrompt(instructions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order prompt: %w", err)
	}

	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = uc.systemPrompt
	}
	if systemPrompt == "" {
		systemPrompt = prompts.DefaultSystemPrompt
	}

	resp, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: systemPrompt},
			{Role: entity.RoleUser, Content: prompt},
		},
		Temperature: uc.temperature,
		MaxTokens:   uc.maxTokens,
	})
	if err != nil {
		uc.record(req, prompt, "", "transport error: "+err.Error())
		return nil, fmt.Errorf("llm request failed: %w", err)
	}
	raw := resp.Message.Content

	result := &input.OrderResult{Power: req.Power, RawReply: raw}
	outcome := "ok"

	proposed, reasoning := uc.proposals(req.Power, raw)
	result.Reasoning = reasoning

	if proposed == nil {
		uc.logger.Warn("Unusable order reply, using hold fallback", "power", req.Power, "phase", req.Board.PhaseName)
		result.Orders = Fallback(req.Possible)
		result.FellBack = true
		outcome = "fallback: no orders section"
	} else {
		accepted, rejected := Review(proposed, req.Possible)
		result.Orders = accepted
		result.Rejected = rejected
		if len(rejected) > 0 {
			outcome = fmt.Sprintf("ok with %d rejected", len(rejected))
			uc.logger.Info("Rejected impossible orders", "power", req.Power, "rejected", rejected)
		}
	}

	uc.record(req, prompt, raw, outcome)
	uc.logger.Debug("Orders decided", "power", req.Power, "count", len(result.Orders), "fellBack", result.FellBack)
	return result, nil
}

// proposals extracts the proposed order list from a raw reply, trying the
// two-section format first and JSON salvage second. A nil slice means the
// reply was unusable (an empty orders section is usable and means "no
// proposals", which review will hold-fill).
func (uc *UseCase) proposals(power entity.Power, raw string) ([]string, string) {
	parsed, err := parse.Split(raw)
	if err == nil {
		if parsed.Orders == nil {
			return []string{}, parsed.Reasoning
		}
		return parsed.Orders, parsed.Reasoning
	}

	if salvaged, ok := parse.SalvageOrders(raw); ok {
		uc.logger.Debug("Recovered orders from JSON block", "power", power, "count", len(salvaged))
		return salvaged, ""
	}

	return nil, ""
}

func (uc *UseCase) record(req input.OrderRequest, prompt, reply, outcome string) {
	if uc.replies == nil {
		return
	}
	kind := "orders"
	if req.Phase == entity.PhaseRetreat {
		kind = "retreats"
	}
	uc.replies.Record(output.ReplyRecord{
		Timestamp: time.Now(),
		Model:     uc.model,
		Power:     req.Power,
		PhaseName: req.Board.PhaseName,
		Kind:      kind,
		Prompt:    prompt,
		Reply:     reply,
		Outcome:   outcome,
	})
}

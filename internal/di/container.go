package di

import (
	"context"
	"fmt"

	"diplomacy-agent/internal/application/port/input"
	"diplomacy-agent/internal/application/port/output"
	"diplomacy-agent/internal/application/service"
	"diplomacy-agent/internal/domain/entity"
	"diplomacy-agent/internal/infrastructure/console"
	"diplomacy-agent/internal/infrastructure/env"
	"diplomacy-agent/internal/infrastructure/llm"
	"diplomacy-agent/internal/infrastructure/logger"
	"diplomacy-agent/internal/infrastructure/prompts"
	"diplomacy-agent/internal/infrastructure/replylog"
	"diplomacy-agent/internal/infrastructure/roster"
	"diplomacy-agent/internal/usecase/agent"
	"diplomacy-agent/internal/usecase/orchestrator"
	"diplomacy-agent/internal/usecase/orders"
)

type Container struct {
	Logger      output.LoggerPort
	Replies     output.ReplyLogPort
	Agents      output.AgentRegistry
	Roster      *roster.Roster
	RoundRunner input.RoundRunner

	powerAgents []*agent.Agent
	llms        map[entity.Power]output.LLMPort
	models      map[entity.Power]string
}

type Config struct {
	RosterPath string
	Debug      bool
	Quiet      bool
	LogFile    string
}

func NewContainer(ctx context.Context, cfg Config, envService *env.EnvService) (*Container, error) {
	log, err := logger.New(cfg.Debug, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	gameRoster, err := roster.Load(cfg.RosterPath)
	if err != nil {
		log.Close()
		return nil, err
	}

	replies, err := replylog.New(gameRoster.ReplyLogDir)
	if err != nil {
		log.Close()
		return nil, err
	}

	c := &Container{
		Logger:  log,
		Replies: replies,
		Roster:  gameRoster,
		llms:    make(map[entity.Power]output.LLMPort),
		models:  make(map[entity.Power]string),
	}

	registry := service.NewAgentRegistry()
	generators := make(map[entity.Power]input.OrderGenerator)

	for power, seat := range gameRoster.Powers {
		chat, err := llm.New(ctx, seat.Model, envService, log.WithField("power", string(power)))
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to create %s adapter: %w", power, err)
		}
		c.llms[power] = chat
		c.models[power] = seat.Model

		powerAgent := agent.New(power, log)
		registry.Register(powerAgent)
		c.powerAgents = append(c.powerAgents, powerAgent)

		generators[power] = orders.New(chat, log, replies, seat.Model, seat.Temperature).
			WithSystemPrompt(prompts.SystemPromptFor(power, gameRoster.PromptsDir)).
			WithMaxTokens(seat.MaxTokens)
	}

	c.Agents = registry
	c.RoundRunner = orchestrator.New(registry, generators, console.Quiet(cfg.Quiet), log)
	return c, nil
}

// InitializeAgents seeds every agent's opening goals and relationships.
func (c *Container) InitializeAgents(ctx context.Context) {
	for _, powerAgent := range c.powerAgents {
		power := powerAgent.Power()
		systemPrompt := prompts.SystemPromptFor(power, c.Roster.PromptsDir)
		powerAgent.Initialize(ctx, c.llms[power], c.Replies, c.models[power], systemPrompt)
	}
}

// SystemPromptFor resolves the per-power system prompt override.
func (c *Container) SystemPromptFor(power entity.Power) string {
	return prompts.SystemPromptFor(power, c.Roster.PromptsDir)
}

func (c *Container) Close() {
	if c.Replies != nil {
		c.Replies.Close()
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}

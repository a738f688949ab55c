// Package gemini is the chat adapter for Google's Gemini models.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"diplomacy-agent/internal/application/port/output"
	"diplomacy-agent/internal/domain/entity"
)

var _ output.LLMPort = (*Adapter)(nil)

type Adapter struct {
	client *genai.Client
	model  string
	logger output.LoggerPort
}

type Config struct {
	APIKey string
	Model  string
	Logger output.LoggerPort
}

func New(ctx context.Context, cfg Config) (*Adapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Adapter{
		client: client,
		model:  cfg.Model,
		logger: cfg.Logger,
	}, nil
}

func (a *Adapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	contents, config := convertRequest(req)

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	return &output.ChatResponse{
		Message: entity.Message{Role: entity.RoleAssistant, Content: text},
	}, nil
}

// convertRequest maps chat messages onto the Gemini request shape: system
// messages become the system instruction, the rest become content turns.
func convertRequest(req output.ChatRequest) ([]*genai.Content, *genai.GenerateContentConfig) {
	config := &genai.GenerateContentConfig{}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(req.Temperature)
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	var contents []*genai.Content
	for _, msg := range req.Messages {
		switch msg.Role {
		case entity.RoleSystem:
			config.SystemInstruction = genai.NewContentFromText(msg.Content, genai.RoleUser)
		case entity.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}
	return contents, config
}

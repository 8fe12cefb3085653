package services

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"scaffold-backend/internal/models"
)

// GroqCompleter talks to any OpenAI-compatible chat completions endpoint.
// Groq is the default base URL.
type GroqCompleter struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewGroqCompleter(apiKey, baseURL, model string, temperature float64) *GroqCompleter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &GroqCompleter{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: float32(temperature),
	}
}

func (c *GroqCompleter) Name() string { return "Groq" }

func (c *GroqCompleter) Complete(ctx context.Context, messages []models.Message) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

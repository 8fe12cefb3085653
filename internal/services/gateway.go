package services

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"scaffold-backend/internal/config"
	"scaffold-backend/internal/models"
	"scaffold-backend/internal/observability"
)

// Completer sends a full conversation to a completion backend and returns the
// text of the first choice ("" when there is none).
type Completer interface {
	Complete(ctx context.Context, messages []models.Message) (string, error)
	Name() string
}

// NewCompleter builds the backend selected by cfg.LLMProvider.
func NewCompleter(ctx context.Context, cfg *config.Config) (Completer, error) {
	switch cfg.LLMProvider {
	case config.ProviderGroq:
		return NewGroqCompleter(cfg.LLMAPIKey, cfg.GroqBaseURL, cfg.ModelID, cfg.LLMTemperature), nil
	case config.ProviderGemini:
		return NewGeminiCompleter(ctx, cfg.LLMAPIKey, cfg.ModelID, cfg.LLMTemperature)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.LLMProvider)
	}
}

// Gateway is the single path to the completion API. It hides upstream
// failure details from callers.
type Gateway struct {
	completer Completer
}

func NewGateway(completer Completer) *Gateway {
	return &Gateway{completer: completer}
}

// Predict prepends systemPrompt (when non-empty) as a system message and
// returns the model's text. Every backend error becomes ErrProcessing.
func (g *Gateway) Predict(ctx context.Context, messages []models.Message, systemPrompt string) (string, error) {
	ctx, span := observability.Tracer().Start(ctx, "gateway.Predict")
	defer span.End()

	conversation := make([]models.Message, 0, len(messages)+1)
	if systemPrompt != "" {
		conversation = append(conversation, models.Message{Role: models.RoleSystem, Content: systemPrompt})
	}
	conversation = append(conversation, messages...)

	span.SetAttributes(
		attribute.String("llm.provider", g.completer.Name()),
		attribute.Int("llm.messages", len(conversation)),
	)

	log.Printf("Making request to %s API...", g.completer.Name())
	text, err := g.completer.Complete(ctx, conversation)
	if err != nil {
		log.Printf("✗ Error from %s API: %v", g.completer.Name(), err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		return "", ErrProcessing
	}
	log.Printf("✓ %s API responded (%d chars)", g.completer.Name(), len(text))

	return text, nil
}

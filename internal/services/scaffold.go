package services

import (
	"context"
	"log"
	"strings"

	"scaffold-backend/internal/models"
	"scaffold-backend/internal/prompts"
	"scaffold-backend/internal/templates"
)

type predictor interface {
	Predict(ctx context.Context, messages []models.Message, systemPrompt string) (string, error)
}

// ScaffoldService answers the template and chat requests. It holds no
// per-request state.
type ScaffoldService struct {
	gateway predictor
}

func NewScaffoldService(gateway predictor) *ScaffoldService {
	return &ScaffoldService{gateway: gateway}
}

// Template classifies prompt as a node or react project and returns the
// matching template prompts. Unrecognized answers yield ErrAccessDenied.
func (s *ScaffoldService) Template(ctx context.Context, prompt string) (*models.ScaffoldResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrPromptRequired
	}

	answer, err := s.gateway.Predict(ctx,
		[]models.Message{{Role: models.RoleUser, Content: prompt}},
		prompts.ClassifierPrompt,
	)
	if err != nil {
		log.Printf("Error processing template request: %v", err)
		return nil, ErrProcessing
	}

	kind, ok := models.ParseProjectKind(answer)
	if !ok {
		log.Printf("Template classification rejected: %q", answer)
		return nil, ErrAccessDenied
	}

	switch kind {
	case models.ProjectReact:
		return &models.ScaffoldResponse{
			Prompts:   []string{prompts.BasePrompt, prompts.ArtifactPrompt(templates.ReactBasePrompt)},
			UIPrompts: []string{templates.ReactBasePrompt},
		}, nil
	case models.ProjectNode:
		// The node branch carries no BasePrompt.
		return &models.ScaffoldResponse{
			Prompts:   []string{prompts.ArtifactPrompt(templates.NodeBasePrompt)},
			UIPrompts: []string{templates.NodeBasePrompt},
		}, nil
	}
	return nil, ErrAccessDenied
}

// Chat forwards the conversation with the chat system prompt.
func (s *ScaffoldService) Chat(ctx context.Context, messages []models.Message) (*models.ChatResponse, error) {
	if len(messages) == 0 {
		return nil, ErrMessagesRequired
	}
	for _, m := range messages {
		if !m.Role.Valid() {
			return nil, ErrInvalidRole
		}
	}

	result, err := s.gateway.Predict(ctx, messages, prompts.SystemPrompt())
	if err != nil {
		log.Printf("Error connecting to the API: %v", err)
		return nil, ErrProcessing
	}
	log.Printf("API Response: %d chars", len(result))

	return &models.ChatResponse{Response: result}, nil
}

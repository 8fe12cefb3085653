package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"scaffold-backend/internal/models"
	"scaffold-backend/internal/services"
)

type scaffolder interface {
	Template(ctx context.Context, prompt string) (*models.ScaffoldResponse, error)
	Chat(ctx context.Context, messages []models.Message) (*models.ChatResponse, error)
}

type ChatHandler struct {
	scaffold scaffolder
}

func NewChatHandler(scaffold scaffolder) *ChatHandler {
	return &ChatHandler{scaffold: scaffold}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleServiceError(w, services.ErrInvalidBody)
		return
	}

	resp, err := h.scaffold.Chat(r.Context(), req.Messages)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

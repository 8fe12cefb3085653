package handlers

import (
	"encoding/json"
	"net/http"

	"scaffold-backend/internal/models"
	"scaffold-backend/internal/services"
)

type TemplateHandler struct {
	scaffold scaffolder
}

func NewTemplateHandler(scaffold scaffolder) *TemplateHandler {
	return &TemplateHandler{scaffold: scaffold}
}

// Template handles POST /template
func (h *TemplateHandler) Template(w http.ResponseWriter, r *http.Request) {
	var req models.TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleServiceError(w, services.ErrInvalidBody)
		return
	}

	resp, err := h.scaffold.Template(r.Context(), req.Prompt)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"scaffold-backend/internal/models"
	"scaffold-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// handleServiceError writes the error as a {message} body. Clients read the
// body, not the status, so every outcome is a 200.
func handleServiceError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: e.Message})
	case *services.ForbiddenError:
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: e.Message})
	case *services.ProcessingError:
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: e.Message})
	default:
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: services.ErrProcessing.Message})
	}
}

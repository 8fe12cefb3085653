package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"scaffold-backend/internal/handlers"
	"scaffold-backend/internal/middleware"
	"scaffold-backend/internal/observability"
)

func New(
	templateHandler *handlers.TemplateHandler,
	chatHandler *handlers.ChatHandler,
	corsOrigin string,
	frontendDir string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(observability.Middleware)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(corsOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/template", templateHandler.Template)
	r.Post("/chat", chatHandler.Chat)

	// ──── Frontend (optional) ────
	if frontendDir != "" {
		r.Group(func(r chi.Router) {
			r.Use(middleware.CrossOriginIsolation)
			r.Handle("/*", http.FileServer(http.Dir(frontendDir)))
		})
	}

	return r
}

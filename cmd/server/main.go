package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scaffold-backend/internal/config"
	"scaffold-backend/internal/handlers"
	"scaffold-backend/internal/observability"
	"scaffold-backend/internal/router"
	"scaffold-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Scaffold Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Tracing ────
	tracing, err := observability.InitTracing(context.Background(), observability.TracingConfig{
		ServiceName:  cfg.ServiceName,
		Environment:  cfg.Env,
		OTLPEndpoint: cfg.OTLPEndpoint,
	})
	if err != nil {
		log.Fatalf("✗ Tracing initialization failed: %v", err)
	}
	defer tracing.Shutdown(context.Background())
	if tracing.Enabled() {
		log.Printf("✓ Exporting traces to %s", cfg.OTLPEndpoint)
	}

	// ──── Step 3: Initialize Completion Client ────
	completer, err := services.NewCompleter(context.Background(), cfg)
	if err != nil {
		log.Fatalf("✗ %s client initialization failed: %v", cfg.LLMProvider, err)
	}
	if c, ok := completer.(io.Closer); ok {
		defer c.Close()
	}
	log.Printf("✓ %s client initialized (model %s)", completer.Name(), cfg.ModelID)

	// ──── Initialize Services ────
	gateway := services.NewGateway(completer)
	scaffoldService := services.NewScaffoldService(gateway)

	// ──── Initialize Handlers ────
	templateHandler := handlers.NewTemplateHandler(scaffoldService)
	chatHandler := handlers.NewChatHandler(scaffoldService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(templateHandler, chatHandler, cfg.CORSOrigin, cfg.FrontendDir)

	// No WriteTimeout: a completion call may take as long as the upstream needs.
	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Scaffold Backend ready on http://localhost:%s", cfg.Port)
	log.Println("  API: POST /template, POST /chat")
	if cfg.FrontendDir != "" {
		log.Printf("  Frontend: %s", cfg.FrontendDir)
	}

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scaffold-backend/internal/models"
)

func newCompletionServer(t *testing.T, status int, body map[string]any, seen *map[string]any, auth *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth != nil {
			*auth = r.Header.Get("Authorization")
		}
		if seen != nil {
			json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
}

func TestGroqCompleter_FirstChoice(t *testing.T) {
	var seen map[string]any
	var auth string
	server := newCompletionServer(t, http.StatusOK, map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "llama3-70b-8192",
		"choices": []map[string]any{
			{"index": 0, "message": map[string]any{"role": "assistant", "content": "react"}, "finish_reason": "stop"},
			{"index": 1, "message": map[string]any{"role": "assistant", "content": "node"}, "finish_reason": "stop"},
		},
	}, &seen, &auth)
	defer server.Close()

	c := NewGroqCompleter("test-key", server.URL, "llama3-70b-8192", 0)
	got, err := c.Complete(context.Background(), []models.Message{
		{Role: models.RoleSystem, Content: "classify"},
		{Role: models.RoleUser, Content: "todo app"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "react" {
		t.Fatalf("expected first choice 'react', got %q", got)
	}
	if auth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", auth)
	}
	if seen["model"] != "llama3-70b-8192" {
		t.Errorf("expected model in request, got %v", seen["model"])
	}

	msgs, _ := seen["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages in request, got %d", len(msgs))
	}
	first, _ := msgs[0].(map[string]any)
	if first["role"] != "system" || first["content"] != "classify" {
		t.Errorf("unexpected first message %v", first)
	}
}

func TestGroqCompleter_NoChoices(t *testing.T) {
	server := newCompletionServer(t, http.StatusOK, map[string]any{"choices": []map[string]any{}}, nil, nil)
	defer server.Close()

	c := NewGroqCompleter("test-key", server.URL, "test-model", 0)
	got, err := c.Complete(context.Background(), []models.Message{{Role: models.RoleUser, Content: "hi"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestGroqCompleter_HTTPError(t *testing.T) {
	server := newCompletionServer(t, http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"message": "rate limited", "type": "rate_limit_exceeded"},
	}, nil, nil)
	defer server.Close()

	c := NewGroqCompleter("test-key", server.URL, "test-model", 0)
	if _, err := c.Complete(context.Background(), []models.Message{{Role: models.RoleUser, Content: "hi"}}); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestGateway_WithGroqFailure(t *testing.T) {
	server := newCompletionServer(t, http.StatusInternalServerError, map[string]any{
		"error": map[string]any{"message": "boom"},
	}, nil, nil)
	defer server.Close()

	g := NewGateway(NewGroqCompleter("test-key", server.URL, "test-model", 0))
	_, err := g.Predict(context.Background(), []models.Message{{Role: models.RoleUser, Content: "hi"}}, "sys")
	if err != ErrProcessing {
		t.Fatalf("expected ErrProcessing, got %v", err)
	}
}

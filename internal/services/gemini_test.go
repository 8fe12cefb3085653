package services

import (
	"testing"

	"github.com/google/generative-ai-go/genai"

	"scaffold-backend/internal/models"
)

func TestSplitConversation(t *testing.T) {
	system, history, last, err := splitConversation([]models.Message{
		{Role: models.RoleSystem, Content: "rules"},
		{Role: models.RoleUser, Content: "build a blog"},
		{Role: models.RoleAssistant, Content: "<boltArtifact/>"},
		{Role: models.RoleSystem, Content: "more rules"},
		{Role: models.RoleUser, Content: "add dark mode"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if system != "rules\n\nmore rules" {
		t.Errorf("unexpected system instruction %q", system)
	}
	if last != "add dark mode" {
		t.Errorf("unexpected final turn %q", last)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history turns, got %d", len(history))
	}
	if history[0].Role != "user" || history[1].Role != "model" {
		t.Errorf("unexpected history roles %q, %q", history[0].Role, history[1].Role)
	}
	if text, _ := history[1].Parts[0].(genai.Text); string(text) != "<boltArtifact/>" {
		t.Errorf("unexpected history content %q", text)
	}
}

func TestSplitConversation_OnlySystem(t *testing.T) {
	_, _, _, err := splitConversation([]models.Message{{Role: models.RoleSystem, Content: "rules"}})
	if err == nil {
		t.Fatal("expected error for a conversation without turns")
	}
}

func TestFirstCandidateText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, ""},
		{
			"first candidate only",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("re"), genai.Text("act")}}},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("node")}}},
			}},
			"react",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := firstCandidateText(tc.resp); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

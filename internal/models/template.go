package models

import "strings"

// ProjectKind is the project template chosen for a prompt.
type ProjectKind string

const (
	ProjectNode  ProjectKind = "node"
	ProjectReact ProjectKind = "react"
)

// ParseProjectKind normalizes a classifier answer (trim, lowercase).
// ok is false for anything that is not exactly "node" or "react".
func ParseProjectKind(answer string) (kind ProjectKind, ok bool) {
	switch k := ProjectKind(strings.ToLower(strings.TrimSpace(answer))); k {
	case ProjectNode, ProjectReact:
		return k, true
	default:
		return "", false
	}
}

type TemplateRequest struct {
	Prompt string `json:"prompt"`
}

// ScaffoldResponse holds the prompts the client replays to the model and
// the raw template text it renders as the initial file tree.
type ScaffoldResponse struct {
	Prompts   []string `json:"prompts"`
	UIPrompts []string `json:"uiPrompts"`
}

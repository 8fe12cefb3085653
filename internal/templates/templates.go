// Package templates holds the boilerplate file trees a new project starts from.
// Each template is an artifact: file contents wrapped in boltAction tags so the
// preview host and the model share a single representation.
package templates

import "scaffold-backend/internal/models"

// HiddenFiles exist on disk in every template but are never shown to the model.
var HiddenFiles = []string{".gitignore", "package-lock.json"}

// ForKind returns the template text for kind.
func ForKind(kind models.ProjectKind) string {
	switch kind {
	case models.ProjectReact:
		return ReactBasePrompt
	case models.ProjectNode:
		return NodeBasePrompt
	}
	return ""
}

package templates

import (
	"strings"
	"testing"

	"scaffold-backend/internal/models"
)

func TestForKind(t *testing.T) {
	if got := ForKind(models.ProjectReact); got != ReactBasePrompt {
		t.Fatalf("expected react template")
	}
	if got := ForKind(models.ProjectNode); got != NodeBasePrompt {
		t.Fatalf("expected node template")
	}
	if got := ForKind("vue"); got != "" {
		t.Fatalf("expected empty template for unknown kind, got %d bytes", len(got))
	}
}

func TestTemplatesAreArtifacts(t *testing.T) {
	for name, tpl := range map[string]string{"node": NodeBasePrompt, "react": ReactBasePrompt} {
		if !strings.HasPrefix(tpl, "<boltArtifact") || !strings.HasSuffix(tpl, "</boltArtifact>") {
			t.Errorf("%s template is not wrapped in a boltArtifact", name)
		}
		if !strings.Contains(tpl, `filePath="package.json"`) {
			t.Errorf("%s template is missing package.json", name)
		}
		for _, hidden := range HiddenFiles {
			if strings.Contains(tpl, `filePath="`+hidden+`"`) {
				t.Errorf("%s template must not show hidden file %s", name, hidden)
			}
		}
	}
}

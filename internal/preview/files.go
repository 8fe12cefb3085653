package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteFiles writes files under dir, creating parent directories. A name
// that would land outside dir is rejected before anything is written.
func WriteFiles(dir string, files []File) error {
	paths := make([]string, len(files))
	for i, f := range files {
		rel := filepath.Clean(filepath.FromSlash(f.Name))
		if rel == "." || filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return fmt.Errorf("file %q escapes the project directory", f.Name)
		}
		paths[i] = filepath.Join(dir, rel)
	}

	for i, f := range files {
		if err := os.MkdirAll(filepath.Dir(paths[i]), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", f.Name, err)
		}
		if err := os.WriteFile(paths[i], []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	return nil
}

// Package preview materializes a generated project on disk and runs it:
// install dependencies, start the dev server, report where it is served.
package preview

import (
	"regexp"
	"strings"
)

// File is one generated project file. Name is slash-separated and relative
// to the project root.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

var (
	actionRe    = regexp.MustCompile(`(?s)<boltAction\s+([^>]*)>(.*?)</boltAction>`)
	attributeRe = regexp.MustCompile(`(\w+)="([^"]*)"`)
)

// ParseArtifact extracts the file actions from artifact text, in order.
// Later actions for the same path replace earlier ones.
func ParseArtifact(text string) []File {
	var files []File
	index := map[string]int{}

	for _, m := range actionRe.FindAllStringSubmatch(text, -1) {
		attrs := map[string]string{}
		for _, a := range attributeRe.FindAllStringSubmatch(m[1], -1) {
			attrs[a[1]] = a[2]
		}
		if attrs["type"] != "file" || attrs["filePath"] == "" {
			continue
		}

		name := strings.TrimPrefix(attrs["filePath"], "./")
		if i, ok := index[name]; ok {
			files[i].Content = m[2]
			continue
		}
		index[name] = len(files)
		files = append(files, File{Name: name, Content: m[2]})
	}
	return files
}

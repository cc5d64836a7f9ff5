// Package docs holds the embedded help pages served by the topic subcommand.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.md
var pages embed.FS

// List returns the available topic names in sorted order. The readme index
// page is the table of contents, not a topic of its own.
func List() []string {
	matches, _ := fs.Glob(pages, "*.md")
	var names []string
	for _, m := range matches {
		if name := strings.TrimSuffix(m, ".md"); name != "readme" {
			names = append(names, name)
		}
	}
	return names
}

// Render concatenates the content of the named topics. The name "*" expands
// to every topic; an unknown name fails the whole rendering.
func Render(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		if name == "*" {
			expanded, err := Render(List()...)
			if err != nil {
				return "", err
			}
			b.WriteString(expanded)
			continue
		}
		content, err := pages.ReadFile(name + ".md")
		if err != nil {
			return "", fmt.Errorf("topic %q not found: %w", name, err)
		}
		b.Write(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

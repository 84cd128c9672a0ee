// Package ignore builds .gitignore content from predefined template
// groups and free-form custom entries.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ljgarcia/gitstart/internal/errors"
)

// FileName is the fixed name of the ignore file in the workspace.
const FileName = ".gitignore"

// builtinTemplates maps template keys to their pattern groups.
var builtinTemplates = map[string][]string{
	"Node":    {"node_modules/", "*.log", ".DS_Store"},
	"Python":  {"*.pyc", "__pycache__/", ".venv/", "venv/"},
	"Java":    {"*.class", "target/", "build/"},
	"Editors": {".idea/", ".vscode/", "*.sublime-project", "*.sublime-workspace"},
	"Vim":     {"*.swp", "*.swo", "*~"},
}

// templateOrder fixes the presentation order of the built-in templates.
var templateOrder = []string{"Node", "Python", "Java", "Editors", "Vim"}

// Builder resolves template keys against the built-in set plus any
// extra templates supplied by configuration. Extra templates with a
// built-in key override the built-in patterns.
type Builder struct {
	templates map[string][]string
	order     []string
}

// NewBuilder creates a Builder over the built-in templates merged with
// the given extras.
func NewBuilder(extras map[string][]string) *Builder {
	templates := make(map[string][]string, len(builtinTemplates)+len(extras))
	for key, patterns := range builtinTemplates {
		templates[key] = patterns
	}

	order := append([]string(nil), templateOrder...)
	extraKeys := make([]string, 0, len(extras))
	for key := range extras {
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)

	for _, key := range extraKeys {
		if _, builtin := templates[key]; !builtin {
			order = append(order, key)
		}
		templates[key] = extras[key]
	}

	return &Builder{templates: templates, order: order}
}

// Keys returns the available template keys in presentation order.
func (b *Builder) Keys() []string {
	return append([]string(nil), b.order...)
}

// Patterns returns the pattern group for a template key.
func (b *Builder) Patterns(key string) ([]string, bool) {
	patterns, ok := b.templates[key]
	return patterns, ok
}

// Build unions the patterns of the selected template keys with the
// trimmed non-empty custom entries and deduplicates the result.
// The returned entries are sorted; order carries no meaning.
func (b *Builder) Build(keys []string, custom []string) ([]string, error) {
	seen := make(map[string]struct{})

	for _, key := range keys {
		patterns, ok := b.templates[key]
		if !ok {
			return nil, fmt.Errorf("%q: %w", key, errors.ErrUnknownTemplate)
		}
		for _, p := range patterns {
			seen[p] = struct{}{}
		}
	}

	for _, entry := range custom {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		seen[entry] = struct{}{}
	}

	entries := make([]string, 0, len(seen))
	for entry := range seen {
		entries = append(entries, entry)
	}
	sort.Strings(entries)
	return entries, nil
}

// Write overwrites the ignore file in dir with the given entries, one
// per line. There is no atomic-replace guarantee; a failed write leaves
// whatever the underlying call left behind.
func Write(dir string, entries []string) error {
	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(entry)
		sb.WriteByte('\n')
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", FileName, err)
	}
	return nil
}

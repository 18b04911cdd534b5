// Package decoration reads the visual theme bundle selected in settings:
// templates, per-tag markdown renderer snippets, and reusable components.
//
// The active decoration is resolved fresh from settings.yml on every call,
// so edits to the setting take effect on the next operation without any
// process restart. Missing pieces are reported as absence, not errors —
// callers decide what an absent template means.
package decoration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lcordova/siteforge/internal/site"
)

// Store reads decoration assets for one site root.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given site directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Renderers holds the per-tag markdown snippets of the active decoration.
type Renderers struct {
	Decoration string
	Directory  string
	// Snippets maps file name (e.g. "h1.html") to its HTML fragment.
	// Empty (never nil) when the markdown directory is missing.
	Snippets map[string]string
}

// MarkdownRenderers reads every .html file from the active decoration's
// markdown directory. A missing directory yields an empty mapping; an
// unreadable individual file is skipped with a logged diagnostic.
func (s *Store) MarkdownRenderers() Renderers {
	decoration := site.ActiveDecoration(s.root)
	dir := site.MarkdownDir(s.root, decoration)

	result := Renderers{
		Decoration: decoration,
		Directory:  dir,
		Snippets:   map[string]string{},
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARNING: listing markdown renderers in %s: %v", dir, err)
		}
		return result
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Printf("WARNING: reading markdown renderer %s: %v", entry.Name(), err)
			continue
		}
		result.Snippets[entry.Name()] = string(data)
	}
	return result
}

// Template is the result of looking up one named template.
type Template struct {
	Decoration string
	Name       string
	Path       string
	Exists     bool
	Content    string
}

// GetTemplate reads templates/<name> from the active decoration.
// Any failure leaves Exists false with empty content.
func (s *Store) GetTemplate(name string) Template {
	if name == "" {
		name = "index.html"
	}
	decoration := site.ActiveDecoration(s.root)
	path := filepath.Join(site.TemplatesDir(s.root, decoration), name)

	result := Template{Decoration: decoration, Name: name, Path: path}

	if _, err := os.Stat(path); err != nil {
		return result
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("WARNING: reading template %s: %v", path, err)
		return result
	}

	result.Exists = true
	result.Content = string(data)
	return result
}

// Component bundles one named component's template and usage examples.
// Each field is nil when the corresponding file is absent — one missing
// file does not affect the others. Exists reflects only whether the
// component directory itself is present.
type Component struct {
	Decoration  string
	Name        string
	Directory   string
	Exists      bool
	Template    *string
	ExampleMd   *string
	ExampleHTML *string
}

// GetComponent reads components/<name>/{template.html,example.md,example.html}
// from the active decoration, each file read independently.
func (s *Store) GetComponent(name string) (Component, error) {
	if name == "" {
		return Component{}, fmt.Errorf("component name is required")
	}

	decoration := site.ActiveDecoration(s.root)
	dir := site.ComponentDir(s.root, decoration, name)

	result := Component{Decoration: decoration, Name: name, Directory: dir}

	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		result.Exists = true
	}

	result.Template = readOptional(filepath.Join(dir, "template.html"))
	result.ExampleMd = readOptional(filepath.Join(dir, "example.md"))
	result.ExampleHTML = readOptional(filepath.Join(dir, "example.html"))
	return result, nil
}

// readOptional reads a file that is allowed to be absent. nil means absent
// or unreadable; unexpected errors are logged.
func readOptional(path string) *string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARNING: reading %s: %v", path, err)
		}
		return nil
	}
	text := string(data)
	return &text
}

// Package site resolves the canonical layout of a site workspace and the
// active decoration setting.
//
// Layout, relative to the site root:
//
//	src/settings.yml                  single `decoration: <name>` line
//	src/content/<dataset>/*.md        content pages
//	src/decoration/<name>/templates   decoration templates
//	src/decoration/<name>/markdown    per-tag markdown renderer snippets
//	src/decoration/<name>/components  reusable components
//	src/media                         static assets
//	dist                              generated output tree
package site

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDecoration is used whenever settings.yml is missing,
	// unreadable, or has no decoration key.
	DefaultDecoration = "light"

	// DefaultDataset is the dataset used when an operation does not
	// name one.
	DefaultDataset = "default"

	srcDir  = "src"
	distDir = "dist"
)

// ActiveDecoration reads the decoration name from src/settings.yml.
//
// The file is scanned as plain text, not parsed as YAML: the first line
// starting with `decoration:` wins. Every failure path (missing file,
// permission, absent key) falls back to DefaultDecoration. The file is
// re-read on every call so settings edits take effect immediately.
func ActiveDecoration(root string) string {
	data, err := os.ReadFile(SettingsPath(root))
	if err != nil {
		return DefaultDecoration
	}

	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "decoration:") {
			continue
		}
		_, value, _ := strings.Cut(line, ":")
		if name := strings.TrimSpace(value); name != "" {
			return name
		}
	}
	return DefaultDecoration
}

// SettingsPath returns the path of the settings file.
func SettingsPath(root string) string {
	return filepath.Join(root, srcDir, "settings.yml")
}

// ContentBaseDir returns the directory under which all datasets live.
func ContentBaseDir(root string) string {
	return filepath.Join(root, srcDir, "content")
}

// ContentDir returns the directory holding a dataset's pages.
// No existence check is performed; callers handle absence.
func ContentDir(root, dataset string) string {
	if dataset == "" {
		dataset = DefaultDataset
	}
	return filepath.Join(root, srcDir, "content", dataset)
}

// TemplatesDir returns the templates directory of a decoration.
func TemplatesDir(root, decoration string) string {
	return filepath.Join(root, srcDir, "decoration", decoration, "templates")
}

// MarkdownDir returns the per-tag markdown renderer directory of a decoration.
func MarkdownDir(root, decoration string) string {
	return filepath.Join(root, srcDir, "decoration", decoration, "markdown")
}

// ComponentDir returns the directory of one named component.
func ComponentDir(root, decoration, component string) string {
	return filepath.Join(root, srcDir, "decoration", decoration, "components", component)
}

// MediaDir returns the static asset source directory.
func MediaDir(root string) string {
	return filepath.Join(root, srcDir, "media")
}

// DistDir returns the generated output directory.
func DistDir(root string) string {
	return filepath.Join(root, distDir)
}

// MediaDistDir returns the media destination inside dist.
func MediaDistDir(root string) string {
	return filepath.Join(root, distDir, "media")
}

// FindRoot walks up from dir looking for a directory that contains src/.
// If none is found the starting directory is returned: operations that
// create content will lazily create the layout beneath it.
func FindRoot(dir string) string {
	current := dir
	for {
		if info, err := os.Stat(filepath.Join(current, srcDir)); err == nil && info.IsDir() {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return dir
		}
		current = parent
	}
}

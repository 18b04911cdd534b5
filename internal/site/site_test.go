package site

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, "src")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "settings.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
}

func TestActiveDecoration_MissingFile(t *testing.T) {
	root := t.TempDir()

	if got := ActiveDecoration(root); got != DefaultDecoration {
		t.Errorf("decoration = %q, want %q", got, DefaultDecoration)
	}
}

func TestActiveDecoration_Set(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, "decoration: dark\n")

	if got := ActiveDecoration(root); got != "dark" {
		t.Errorf("decoration = %q, want dark", got)
	}
}

func TestActiveDecoration_KeyAmongOthers(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, "siteName: demo\ndecoration: fancy\nother: value\n")

	if got := ActiveDecoration(root); got != "fancy" {
		t.Errorf("decoration = %q, want fancy", got)
	}
}

func TestActiveDecoration_KeyAbsent(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, "siteName: demo\n")

	if got := ActiveDecoration(root); got != DefaultDecoration {
		t.Errorf("decoration = %q, want default", got)
	}
}

func TestActiveDecoration_EmptyValue(t *testing.T) {
	root := t.TempDir()
	writeSettings(t, root, "decoration:\n")

	if got := ActiveDecoration(root); got != DefaultDecoration {
		t.Errorf("decoration = %q, want default", got)
	}
}

func TestPaths(t *testing.T) {
	root := string(os.PathSeparator) + "site"

	cases := []struct {
		got, want string
	}{
		{ContentDir(root, "blog"), filepath.Join(root, "src", "content", "blog")},
		{ContentDir(root, ""), filepath.Join(root, "src", "content", "default")},
		{TemplatesDir(root, "light"), filepath.Join(root, "src", "decoration", "light", "templates")},
		{MarkdownDir(root, "light"), filepath.Join(root, "src", "decoration", "light", "markdown")},
		{ComponentDir(root, "light", "card"), filepath.Join(root, "src", "decoration", "light", "components", "card")},
		{MediaDir(root), filepath.Join(root, "src", "media")},
		{DistDir(root), filepath.Join(root, "dist")},
		{MediaDistDir(root), filepath.Join(root, "dist", "media")},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("path = %q, want %q", c.got, c.want)
		}
	}
}

func TestFindRoot_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "content", "default")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if got := FindRoot(nested); got != root {
		t.Errorf("FindRoot = %q, want %q", got, root)
	}
}

func TestFindRoot_FallsBackToStart(t *testing.T) {
	dir := t.TempDir()

	if got := FindRoot(dir); got != dir {
		t.Errorf("FindRoot = %q, want %q", got, dir)
	}
}

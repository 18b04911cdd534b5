package output

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestSaveHTML_CreatesIntermediateDirectories(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root)

	path, err := m.SaveHTML(filepath.Join("blog", "2026", "post.html"), "<p>hi</p>")
	if err != nil {
		t.Fatalf("SaveHTML failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file should exist: %v", err)
	}
	if string(data) != "<p>hi</p>" {
		t.Errorf("content = %q", data)
	}
	if want := filepath.Join(root, "dist", "blog", "2026", "post.html"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestSaveHTML_Overwrites(t *testing.T) {
	m := NewManager(t.TempDir())

	if _, err := m.SaveHTML("index.html", "first"); err != nil {
		t.Fatalf("first save: %v", err)
	}
	path, err := m.SaveHTML("index.html", "second")
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("content = %q, want second", data)
	}
}

func TestCopyMedia_MissingSource(t *testing.T) {
	m := NewManager(t.TempDir())

	if _, _, err := m.CopyMedia(); err == nil {
		t.Fatal("expected error for missing media source")
	}
}

func TestCopyMedia_MirrorsTree(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "src", "media", "logo.svg"), "<svg/>")
	write(t, filepath.Join(root, "src", "media", "img", "hero.png"), "pngbytes")
	write(t, filepath.Join(root, "src", "media", "img", "icons", "x.ico"), "ico")

	m := NewManager(root)
	source, destination, err := m.CopyMedia()
	if err != nil {
		t.Fatalf("CopyMedia failed: %v", err)
	}
	if source != filepath.Join(root, "src", "media") {
		t.Errorf("source = %q", source)
	}
	if destination != filepath.Join(root, "dist", "media") {
		t.Errorf("destination = %q", destination)
	}

	for _, rel := range []string{
		"logo.svg",
		filepath.Join("img", "hero.png"),
		filepath.Join("img", "icons", "x.ico"),
	} {
		if _, err := os.Stat(filepath.Join(destination, rel)); err != nil {
			t.Errorf("missing copied file %s: %v", rel, err)
		}
	}

	data, _ := os.ReadFile(filepath.Join(destination, "img", "hero.png"))
	if string(data) != "pngbytes" {
		t.Errorf("copied content = %q", data)
	}
}

func TestEmptyDist_MissingDistIsCreated(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root)

	dist, warnings, err := m.EmptyDist()
	if err != nil {
		t.Fatalf("EmptyDist failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if _, err := os.Stat(dist); err != nil {
		t.Errorf("dist should exist afterwards: %v", err)
	}
}

func TestEmptyDist_RemovesNestedTree(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "dist", "index.html"), "x")
	write(t, filepath.Join(root, "dist", "media", "img", "a.png"), "x")
	write(t, filepath.Join(root, "dist", "blog", "post.html"), "x")

	m := NewManager(root)
	dist, warnings, err := m.EmptyDist()
	if err != nil {
		t.Fatalf("EmptyDist failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}

	entries, err := os.ReadDir(dist)
	if err != nil {
		t.Fatalf("dist should still exist: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("dist should be empty, has %d entries", len(entries))
	}
}

func TestEmptyDist_Idempotent(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "dist", "a.html"), "x")

	m := NewManager(root)
	for i := 0; i < 2; i++ {
		if _, _, err := m.EmptyDist(); err != nil {
			t.Fatalf("EmptyDist run %d failed: %v", i+1, err)
		}
	}
}

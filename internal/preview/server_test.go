package preview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func setupDist(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"index.html":                "<h1>home</h1>",
		"style.css":                 "body{}",
		"data.bin":                  "rawbytes",
		"blog/index.html":           "<h1>blog</h1>",
		filepath.Join("img", "a.png"): "png",
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return dir
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestServeHTTP_RootMapsToIndex(t *testing.T) {
	s := NewServer(setupDist(t))

	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if string(body) != "<h1>home</h1>" {
		t.Errorf("body = %q", body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content-type = %q", ct)
	}
}

func TestServeHTTP_DirectoryFallsThroughToIndex(t *testing.T) {
	s := NewServer(setupDist(t))

	rec := get(t, s, "/blog")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if string(body) != "<h1>blog</h1>" {
		t.Errorf("body = %q", body)
	}
}

func TestServeHTTP_MissingFileIs404(t *testing.T) {
	s := NewServer(setupDist(t))

	if rec := get(t, s, "/nope.html"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	// Directory without an index.html is also a 404.
	if rec := get(t, s, "/img"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for index-less directory", rec.Code)
	}
}

func TestServeHTTP_ContentTypeByExtension(t *testing.T) {
	s := NewServer(setupDist(t))

	cases := []struct {
		path, want string
	}{
		{"/style.css", "text/css; charset=utf-8"},
		{"/img/a.png", "image/png"},
		{"/data.bin", "application/octet-stream"},
	}
	for _, c := range cases {
		rec := get(t, s, c.path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d", c.path, rec.Code)
			continue
		}
		if ct := rec.Header().Get("Content-Type"); ct != c.want {
			t.Errorf("%s: content-type = %q, want %q", c.path, ct, c.want)
		}
	}
}

func TestServeHTTP_PathTraversalConfined(t *testing.T) {
	dir := setupDist(t)
	secret := filepath.Join(filepath.Dir(dir), "secret.txt")
	if err := os.WriteFile(secret, []byte("nope"), 0o644); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	s := NewServer(dir)
	rec := get(t, s, "/../secret.txt")
	body, _ := io.ReadAll(rec.Body)
	if string(body) == "nope" {
		t.Error("traversal escaped the served directory")
	}
}

func TestStart_MissingDirectory(t *testing.T) {
	s := NewServer(filepath.Join(t.TempDir(), "missing"))

	if _, err := s.Start(0); err == nil {
		t.Fatal("expected error for missing root directory")
	}
}

// Package preview serves the generated dist tree over HTTP for local
// inspection. It is a best-effort viewer, not a production server: the
// listener is long-lived, shares dist read-only with concurrent build
// operations, and a page requested mid-rebuild may be partial.
package preview

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPort is used when the caller does not pick one.
const DefaultPort = 8080

// contentTypes maps file extensions to MIME types. Unknown extensions
// fall back to application/octet-stream.
var contentTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "application/javascript",
	".json":  "application/json",
	".xml":   "application/xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".webp":  "image/webp",
	".txt":   "text/plain; charset=utf-8",
	".pdf":   "application/pdf",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".ogg":   "audio/ogg",
	".mp3":   "audio/mpeg",
	".wav":   "audio/wav",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".eot":   "application/vnd.ms-fontobject",
}

// Server serves files from one directory.
type Server struct {
	dir string
}

// NewServer creates a Server over the given directory.
func NewServer(dir string) *Server {
	return &Server{dir: dir}
}

// Start binds the listener on the given port (DefaultPort when 0) and
// begins serving in a background goroutine. It returns once the port is
// bound, so a bind failure is reported to the caller rather than lost in
// the goroutine. Teardown is the caller's responsibility — the listener is
// never stopped automatically.
func (s *Server) Start(port int) (int, error) {
	if port == 0 {
		port = DefaultPort
	}

	if info, err := os.Stat(s.dir); err != nil || !info.IsDir() {
		return port, fmt.Errorf("root directory %s does not exist — build the site first", s.dir)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return port, fmt.Errorf("binding port %d: %w", port, err)
	}

	srv := &http.Server{Handler: s}
	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("WARNING: preview server stopped: %v", err)
		}
	}()

	return port, nil
}

// ServeHTTP resolves the request path inside the served directory.
// "/" maps to index.html; a directory path falls through to its own
// index.html; anything unresolvable is a 404.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, "/")
	if rel == "" {
		rel = "index.html"
	}

	// Confine resolution to the served directory.
	path := filepath.Join(s.dir, filepath.FromSlash(filepath.Clean("/"+rel)))

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		path = filepath.Join(path, "index.html")
		info, err = os.Stat(path)
	}
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	file, err := os.Open(path)
	if err != nil {
		log.Printf("WARNING: preview: opening %s: %v", path, err)
		http.Error(w, "500 internal server error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", contentType(path))
	w.WriteHeader(http.StatusOK)

	// Streamed, not buffered. Headers are already out, so a mid-stream
	// read failure can only be logged — acceptable for a local preview.
	if _, err := io.Copy(w, file); err != nil {
		log.Printf("WARNING: preview: streaming %s: %v", path, err)
	}
}

func contentType(path string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "application/octet-stream"
}

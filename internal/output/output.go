// Package output manages the generated dist tree: writing rendered files,
// mirroring the media directory, and emptying dist between builds.
package output

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/lcordova/siteforge/internal/site"
)

// Manager performs output-tree operations for one site root.
type Manager struct {
	root string
}

// NewManager creates a Manager rooted at the given site directory.
func NewManager(root string) *Manager {
	return &Manager{root: root}
}

// DistDir returns the output directory path.
func (m *Manager) DistDir() string {
	return site.DistDir(m.root)
}

// SaveHTML writes content to dist/<fileName>, creating dist and any
// intermediate directories implied by fileName. Existing files are
// overwritten.
func (m *Manager) SaveHTML(fileName, content string) (string, error) {
	path := filepath.Join(site.DistDir(m.root), fileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("creating output directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return path, fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// CopyMedia mirrors src/media into dist/media. The source directory must
// exist; a missing source is an explicit error, not an empty success.
// The first failing nested copy aborts the whole operation.
func (m *Manager) CopyMedia() (source, destination string, err error) {
	source = site.MediaDir(m.root)
	destination = site.MediaDistDir(m.root)

	info, err := os.Stat(source)
	if err != nil {
		return source, destination, fmt.Errorf("media source directory %s: %w", source, err)
	}
	if !info.IsDir() {
		return source, destination, fmt.Errorf("media source %s is not a directory", source)
	}

	return source, destination, copyDir(source, destination)
}

// copyDir recursively mirrors src into dst, depth-first. Files are copied
// byte-for-byte; the first error aborts.
func copyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("listing %s: %w", src, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return nil
}

// EmptyDist removes every entry under dist, leaving dist itself in place.
// A missing dist is created and reported as success — there was nothing
// to empty.
//
// Removal is deliberately permissive: a failure inside one subtree is
// collected as a warning and siblings are still processed, so a partially
// broken tree never fails the whole build. Callers that need strictness
// must check the returned warnings.
func (m *Manager) EmptyDist() (dist string, warnings []string, err error) {
	dist = site.DistDir(m.root)

	if _, statErr := os.Stat(dist); statErr != nil {
		if !os.IsNotExist(statErr) {
			return dist, nil, fmt.Errorf("checking dist directory: %w", statErr)
		}
		if mkErr := os.MkdirAll(dist, 0o755); mkErr != nil {
			return dist, nil, fmt.Errorf("creating dist directory: %w", mkErr)
		}
		return dist, nil, nil
	}

	warnings = emptyDir(dist)

	// The root is kept through removal; make sure it still exists even if
	// something external deleted it mid-operation.
	if mkErr := os.MkdirAll(dist, 0o755); mkErr != nil {
		return dist, warnings, fmt.Errorf("recreating dist directory: %w", mkErr)
	}
	return dist, warnings, nil
}

// emptyDir removes the contents of dir post-order, collecting per-entry
// failures as warnings and continuing with siblings.
func emptyDir(dir string) []string {
	var warnings []string

	entries, err := os.ReadDir(dir)
	if err != nil {
		warning := fmt.Sprintf("listing %s: %v", dir, err)
		log.Printf("WARNING: emptyDist: %s", warning)
		return []string{warning}
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			warnings = append(warnings, emptyDir(path)...)
		}
		if err := os.Remove(path); err != nil {
			// Entries deleted externally between listing and removal are
			// not a problem — the goal was their absence.
			if os.IsNotExist(err) {
				continue
			}
			warning := fmt.Sprintf("removing %s: %v", path, err)
			log.Printf("WARNING: emptyDist: %s", warning)
			warnings = append(warnings, warning)
		}
	}
	return warnings
}

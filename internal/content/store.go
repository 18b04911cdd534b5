// Package content manages markdown pages grouped into named datasets.
//
// All state lives on disk under src/content/<dataset>/ — nothing is cached
// between calls. Dataset directories are created lazily: listing or writing
// to a missing dataset creates it rather than failing.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lcordova/siteforge/internal/frontmatter"
	"github.com/lcordova/siteforge/internal/site"
)

// Store reads and writes the pages of one site root.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given site directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Listing is the result of enumerating a dataset.
type Listing struct {
	Pages     []string
	Directory string
	// Existed reports whether the dataset directory was already present.
	Existed bool
	// Created reports whether this call created the dataset directory.
	Created bool
}

// ListPages enumerates the .md pages of a dataset, creating the dataset
// directory if it does not exist yet. A missing dataset is never an error;
// creation is the recovery path.
func (s *Store) ListPages(dataset string) (Listing, error) {
	dir := site.ContentDir(s.root, dataset)

	listing := Listing{Pages: []string{}, Directory: dir}

	if _, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return listing, fmt.Errorf("checking dataset directory %s: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return listing, fmt.Errorf("creating dataset directory %s: %w", dir, err)
		}
		listing.Created = true
	} else {
		listing.Existed = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return listing, fmt.Errorf("listing dataset directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		listing.Pages = append(listing.Pages, entry.Name())
	}
	return listing, nil
}

// CreatePage writes a page with single-key frontmatter into the dataset,
// creating the dataset directory if needed. Existing files are overwritten
// unconditionally — this is an upsert, not a create-if-absent.
func (s *Store) CreatePage(dataset, fileName, title, body string) (string, error) {
	dir := site.ContentDir(s.root, dataset)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating dataset directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, fileName)
	text := frontmatter.Serialize(title, body)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("writing page %s: %w", path, err)
	}
	return path, nil
}

// Page is a parsed content page.
type Page struct {
	Attributes map[string]string
	Body       string
	RawContent string
	Path       string
	Directory  string
}

// GetPage reads and parses one page. A missing or unreadable file is
// returned as an error carrying the underlying I/O message — unlike
// listing, reading a specific page has nothing sensible to default to.
func (s *Store) GetPage(dataset, pageName string) (Page, error) {
	dir := site.ContentDir(s.root, dataset)
	path := filepath.Join(dir, pageName)

	data, err := os.ReadFile(path)
	if err != nil {
		return Page{}, fmt.Errorf("reading page %s: %w", path, err)
	}

	doc := frontmatter.Parse(string(data))
	return Page{
		Attributes: doc.Attributes,
		Body:       doc.Body,
		RawContent: doc.RawContent,
		Path:       path,
		Directory:  dir,
	}, nil
}

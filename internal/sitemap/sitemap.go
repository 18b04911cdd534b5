// Package sitemap derives a sitemap.org urlset document from the pages of
// a dataset and writes it into the output tree.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lcordova/siteforge/internal/content"
	"github.com/lcordova/siteforge/internal/site"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet is the root element of a sitemap document.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []Entry  `xml:"url"`
}

// Entry is a single url element.
type Entry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Result reports what Build produced.
type Result struct {
	Path string
	URLs []string
}

// Build derives one sitemap entry per page of the dataset and writes the
// document to dist/sitemap.xml, creating dist if absent.
//
// The relative URL of a page is its `alias` frontmatter value when present,
// otherwise the file name with .md replaced by .html. Join rule: baseURL is
// normalized to end with a slash before resolving, so relatives always
// append under the base path — "https://x.test/blog" and
// "https://x.test/blog/" behave identically.
//
// Pages that cannot be read are skipped with a logged warning; the sitemap
// is still produced for the rest.
func Build(root, dataset, baseURL string) (Result, error) {
	if baseURL == "" {
		return Result{}, fmt.Errorf("baseUrl is required")
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return Result{}, fmt.Errorf("parsing baseUrl %q: %w", baseURL, err)
	}

	store := content.NewStore(root)
	listing, err := store.ListPages(dataset)
	if err != nil {
		return Result{}, err
	}

	lastMod := time.Now().UTC().Format("2006-01-02")

	set := URLSet{Xmlns: xmlns}
	var urls []string
	for _, page := range listing.Pages {
		rel, err := relativeURL(store, dataset, page)
		if err != nil {
			log.Printf("WARNING: sitemap: skipping %s: %v", page, err)
			continue
		}

		ref, err := url.Parse(rel)
		if err != nil {
			log.Printf("WARNING: sitemap: skipping %s: invalid url %q: %v", page, rel, err)
			continue
		}
		loc := base.ResolveReference(ref).String()

		priority := "0.8"
		if rel == "index.html" {
			priority = "1.0"
		}

		set.URLs = append(set.URLs, Entry{
			Loc:        loc,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   priority,
		})
		urls = append(urls, loc)
	}

	distDir := site.DistDir(root)
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating dist directory: %w", err)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("marshaling sitemap: %w", err)
	}
	document := append([]byte(xml.Header), body...)
	document = append(document, '\n')

	path := filepath.Join(distDir, "sitemap.xml")
	if err := os.WriteFile(path, document, 0o644); err != nil {
		return Result{}, fmt.Errorf("writing sitemap: %w", err)
	}

	return Result{Path: path, URLs: urls}, nil
}

// relativeURL derives the dataset-relative URL of one page: the alias
// frontmatter value when present, else the file name with .md → .html.
func relativeURL(store *content.Store, dataset, page string) (string, error) {
	doc, err := store.GetPage(dataset, page)
	if err != nil {
		return "", err
	}
	if alias := doc.Attributes["alias"]; alias != "" {
		return alias, nil
	}
	return strings.TrimSuffix(page, ".md") + ".html", nil
}

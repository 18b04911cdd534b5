// Package resources implements MCP resource handlers.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (site://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lcordova/siteforge/internal/content"
	"github.com/lcordova/siteforge/internal/site"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler manages site resource endpoints.
type Handler struct{}

// NewHandler creates a resource Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// StatusResource returns the MCP resource definition for site status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"site://status",
		"Site Status",
		mcp.WithResourceDescription("Site root, active decoration, datasets with page counts, and dist state"),
		mcp.WithMIMEType("application/json"),
	)
}

type status struct {
	Root       string         `json:"root"`
	Decoration string         `json:"decoration"`
	Datasets   map[string]int `json:"datasets"`
	DistExists bool           `json:"distExists"`
}

// HandleStatus returns the current site status as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	root := site.FindRoot(dir)

	st := status{
		Root:       root,
		Decoration: site.ActiveDecoration(root),
		Datasets:   map[string]int{},
	}

	// Datasets are plain subdirectories of src/content; count pages per
	// dataset without creating anything.
	if entries, err := os.ReadDir(site.ContentBaseDir(root)); err == nil {
		store := content.NewStore(root)
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			listing, err := store.ListPages(entry.Name())
			if err != nil {
				continue
			}
			st.Datasets[entry.Name()] = len(listing.Pages)
		}
	}

	if info, err := os.Stat(site.DistDir(root)); err == nil && info.IsDir() {
		st.DistExists = true
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

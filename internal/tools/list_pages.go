package tools

import (
	"context"

	"github.com/lcordova/siteforge/internal/content"
	"github.com/lcordova/siteforge/internal/site"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListPagesTool handles the list_pages MCP tool.
type ListPagesTool struct{}

// NewListPagesTool creates a ListPagesTool.
func NewListPagesTool() *ListPagesTool {
	return &ListPagesTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *ListPagesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_pages",
		mcp.WithDescription(
			"List the markdown pages of a content dataset. "+
				"A dataset that does not exist yet is created on the spot and "+
				"reported as empty — listing never fails on absence.",
		),
		mcp.WithString("dataSet",
			mcp.Description("Dataset name (default: \"default\")"),
		),
	)
}

type listPagesResult struct {
	Pages            []string `json:"pages"`
	Directory        string   `json:"directory"`
	DirectoryExists  bool     `json:"directoryExists"`
	DirectoryCreated bool     `json:"directoryCreated,omitempty"`
	DataSet          string   `json:"dataSet"`
}

// Handle processes the list_pages tool call.
func (t *ListPagesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataset := req.GetString("dataSet", site.DefaultDataset)

	root, err := siteRoot()
	if err != nil {
		return nil, err
	}

	listing, err := content.NewStore(root).ListPages(dataset)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(listPagesResult{
		Pages:            listing.Pages,
		Directory:        listing.Directory,
		DirectoryExists:  listing.Existed || listing.Created,
		DirectoryCreated: listing.Created,
		DataSet:          dataset,
	})
}

package tools

import (
	"context"

	"github.com/lcordova/siteforge/internal/output"
	"github.com/mark3labs/mcp-go/mcp"
)

// EmptyDistTool handles the empty_dist MCP tool.
type EmptyDistTool struct{}

// NewEmptyDistTool creates an EmptyDistTool.
func NewEmptyDistTool() *EmptyDistTool {
	return &EmptyDistTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *EmptyDistTool) Definition() mcp.Tool {
	return mcp.NewTool("empty_dist",
		mcp.WithDescription(
			"Remove everything inside the dist output tree, leaving dist itself "+
				"in place (created if absent). Removal is permissive: a subtree "+
				"that cannot be removed is reported in warnings and the rest is "+
				"still processed.",
		),
	)
}

type emptyDistResult struct {
	Success  bool     `json:"success"`
	DistDir  string   `json:"distDir"`
	Warnings []string `json:"warnings,omitempty"`
}

// Handle processes the empty_dist tool call.
func (t *EmptyDistTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := siteRoot()
	if err != nil {
		return nil, err
	}

	dist, warnings, err := output.NewManager(root).EmptyDist()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(emptyDistResult{
		Success:  true,
		DistDir:  dist,
		Warnings: warnings,
	})
}

package tools

import (
	"context"

	"github.com/lcordova/siteforge/internal/output"
	"github.com/mark3labs/mcp-go/mcp"
)

// CopyMediaTool handles the copy_media MCP tool.
type CopyMediaTool struct{}

// NewCopyMediaTool creates a CopyMediaTool.
func NewCopyMediaTool() *CopyMediaTool {
	return &CopyMediaTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *CopyMediaTool) Definition() mcp.Tool {
	return mcp.NewTool("copy_media",
		mcp.WithDescription(
			"Recursively mirror the src/media tree into dist/media. The source "+
				"directory must exist; the first failing nested copy aborts the "+
				"whole operation.",
		),
	)
}

type copyMediaResult struct {
	Success        bool   `json:"success"`
	SourceDir      string `json:"sourceDir"`
	DestinationDir string `json:"destinationDir"`
}

// Handle processes the copy_media tool call.
func (t *CopyMediaTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := siteRoot()
	if err != nil {
		return nil, err
	}

	source, destination, err := output.NewManager(root).CopyMedia()
	if err != nil {
		return failure("%v", err)
	}

	return jsonResult(copyMediaResult{
		Success:        true,
		SourceDir:      source,
		DestinationDir: destination,
	})
}

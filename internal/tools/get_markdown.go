package tools

import (
	"context"

	"github.com/lcordova/siteforge/internal/decoration"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetMarkdownTool handles the get_markdown MCP tool.
type GetMarkdownTool struct{}

// NewGetMarkdownTool creates a GetMarkdownTool.
func NewGetMarkdownTool() *GetMarkdownTool {
	return &GetMarkdownTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *GetMarkdownTool) Definition() mcp.Tool {
	return mcp.NewTool("get_markdown",
		mcp.WithDescription(
			"Read the per-tag markdown renderer snippets of the active "+
				"decoration (e.g. h1.html, p.html). Use these as the HTML shapes "+
				"to emit for each markdown element when rendering page content. "+
				"A decoration without a markdown directory yields an empty set.",
		),
	)
}

type getMarkdownResult struct {
	Decoration  string            `json:"decoration"`
	MarkdownDir string            `json:"markdownDir"`
	Templates   map[string]string `json:"templates"`
}

// Handle processes the get_markdown tool call.
func (t *GetMarkdownTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := siteRoot()
	if err != nil {
		return nil, err
	}

	renderers := decoration.NewStore(root).MarkdownRenderers()

	return jsonResult(getMarkdownResult{
		Decoration:  renderers.Decoration,
		MarkdownDir: renderers.Directory,
		Templates:   renderers.Snippets,
	})
}

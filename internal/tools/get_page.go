package tools

import (
	"context"

	"github.com/lcordova/siteforge/internal/content"
	"github.com/lcordova/siteforge/internal/site"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetPageTool handles the get_page MCP tool.
type GetPageTool struct{}

// NewGetPageTool creates a GetPageTool.
func NewGetPageTool() *GetPageTool {
	return &GetPageTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *GetPageTool) Definition() mcp.Tool {
	return mcp.NewTool("get_page",
		mcp.WithDescription(
			"Read one markdown page from a dataset and parse its frontmatter. "+
				"Returns the attribute map, the body without frontmatter, and the "+
				"raw file content.",
		),
		mcp.WithString("pageName",
			mcp.Required(),
			mcp.Description("Page file name (e.g. index.md)"),
		),
		mcp.WithString("dataSet",
			mcp.Description("Dataset name (default: \"default\")"),
		),
	)
}

type getPageResult struct {
	Success    bool              `json:"success"`
	Attributes map[string]string `json:"attributes"`
	Content    string            `json:"content"`
	RawContent string            `json:"rawContent"`
	FilePath   string            `json:"filePath"`
	DataSet    string            `json:"dataSet"`
}

// Handle processes the get_page tool call.
func (t *GetPageTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageName := req.GetString("pageName", "")
	if pageName == "" {
		return mcp.NewToolResultError("'pageName' is required"), nil
	}

	dataset := req.GetString("dataSet", site.DefaultDataset)

	root, err := siteRoot()
	if err != nil {
		return nil, err
	}

	page, err := content.NewStore(root).GetPage(dataset, pageName)
	if err != nil {
		// The whole point of this operation is the page; its absence is a
		// real failure, carried as data with the underlying I/O message.
		return failure("%v", err)
	}

	return jsonResult(getPageResult{
		Success:    true,
		Attributes: page.Attributes,
		Content:    page.Body,
		RawContent: page.RawContent,
		FilePath:   page.Path,
		DataSet:    dataset,
	})
}

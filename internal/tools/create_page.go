package tools

import (
	"context"
	"path/filepath"

	"github.com/lcordova/siteforge/internal/content"
	"github.com/lcordova/siteforge/internal/site"
	"github.com/mark3labs/mcp-go/mcp"
)

// CreatePageTool handles the create_page MCP tool.
type CreatePageTool struct{}

// NewCreatePageTool creates a CreatePageTool.
func NewCreatePageTool() *CreatePageTool {
	return &CreatePageTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *CreatePageTool) Definition() mcp.Tool {
	return mcp.NewTool("create_page",
		mcp.WithDescription(
			"Create or overwrite a markdown page in a dataset. The page is "+
				"written with a single-key frontmatter block carrying the title. "+
				"This is an upsert: an existing file with the same name is replaced.",
		),
		mcp.WithString("fileName",
			mcp.Required(),
			mcp.Description("Page file name, ending in .md (e.g. index.md)"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Page title stored in frontmatter"),
		),
		mcp.WithString("copy",
			mcp.Required(),
			mcp.Description("Markdown body of the page"),
		),
		mcp.WithString("dataSet",
			mcp.Description("Dataset name (default: \"default\")"),
		),
	)
}

type createPageResult struct {
	Success   bool   `json:"success"`
	FilePath  string `json:"filePath"`
	Directory string `json:"directory"`
	DataSet   string `json:"dataSet"`
}

// Handle processes the create_page tool call.
func (t *CreatePageTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileName := req.GetString("fileName", "")
	title := req.GetString("title", "")
	body := req.GetString("copy", "")

	if fileName == "" {
		return mcp.NewToolResultError("'fileName' is required"), nil
	}
	if title == "" {
		return mcp.NewToolResultError("'title' is required"), nil
	}
	if body == "" {
		return mcp.NewToolResultError("'copy' is required"), nil
	}

	dataset := req.GetString("dataSet", site.DefaultDataset)

	root, err := siteRoot()
	if err != nil {
		return nil, err
	}

	path, err := content.NewStore(root).CreatePage(dataset, fileName, title, body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(createPageResult{
		Success:   true,
		FilePath:  path,
		Directory: filepath.Dir(path),
		DataSet:   dataset,
	})
}

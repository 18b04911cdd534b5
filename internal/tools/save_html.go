package tools

import (
	"context"

	"github.com/lcordova/siteforge/internal/output"
	"github.com/mark3labs/mcp-go/mcp"
)

// SaveHTMLTool handles the save_html MCP tool.
type SaveHTMLTool struct{}

// NewSaveHTMLTool creates a SaveHTMLTool.
func NewSaveHTMLTool() *SaveHTMLTool {
	return &SaveHTMLTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *SaveHTMLTool) Definition() mcp.Tool {
	return mcp.NewTool("save_html",
		mcp.WithDescription(
			"Write a generated file into the dist output tree. Intermediate "+
				"directories implied by the file name are created; existing files "+
				"are overwritten.",
		),
		mcp.WithString("fileName",
			mcp.Required(),
			mcp.Description("Output path relative to dist (e.g. index.html, blog/post.html)"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("File content to write"),
		),
	)
}

type saveHTMLResult struct {
	Success  bool   `json:"success"`
	FilePath string `json:"filePath"`
	DistDir  string `json:"distDir"`
}

// Handle processes the save_html tool call.
func (t *SaveHTMLTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileName := req.GetString("fileName", "")
	content := req.GetString("content", "")

	if fileName == "" {
		return mcp.NewToolResultError("'fileName' is required"), nil
	}
	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	root, err := siteRoot()
	if err != nil {
		return nil, err
	}

	manager := output.NewManager(root)
	path, err := manager.SaveHTML(fileName, content)
	if err != nil {
		return failure("%v", err)
	}

	return jsonResult(saveHTMLResult{
		Success:  true,
		FilePath: path,
		DistDir:  manager.DistDir(),
	})
}

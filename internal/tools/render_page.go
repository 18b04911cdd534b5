package tools

import (
	"context"
	"log"
	"strings"

	"github.com/lcordova/siteforge/internal/content"
	"github.com/lcordova/siteforge/internal/decoration"
	"github.com/lcordova/siteforge/internal/output"
	"github.com/lcordova/siteforge/internal/render"
	"github.com/lcordova/siteforge/internal/site"
	"github.com/mark3labs/mcp-go/mcp"
)

// RenderPageTool handles the render_page MCP tool.
type RenderPageTool struct{}

// NewRenderPageTool creates a RenderPageTool.
func NewRenderPageTool() *RenderPageTool {
	return &RenderPageTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *RenderPageTool) Definition() mcp.Tool {
	return mcp.NewTool("render_page",
		mcp.WithDescription(
			"Render one content page to HTML in dist: the markdown body is "+
				"converted (GFM), then substituted into the active decoration's "+
				"template via the literal placeholders {{ content }} and "+
				"{{ title }}. Without a template, a minimal HTML5 shell is used.",
		),
		mcp.WithString("pageName",
			mcp.Required(),
			mcp.Description("Page file name to render (e.g. index.md)"),
		),
		mcp.WithString("dataSet",
			mcp.Description("Dataset name (default: \"default\")"),
		),
		mcp.WithString("template",
			mcp.Description("Decoration template to apply (default: index.html)"),
		),
		mcp.WithString("fileName",
			mcp.Description("Output path relative to dist (default: page name with .md replaced by .html)"),
		),
	)
}

type renderPageResult struct {
	Success  bool   `json:"success"`
	FilePath string `json:"filePath"`
	DistDir  string `json:"distDir"`
	Title    string `json:"title"`
}

// Handle processes the render_page tool call.
func (t *RenderPageTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageName := req.GetString("pageName", "")
	if pageName == "" {
		return mcp.NewToolResultError("'pageName' is required"), nil
	}

	dataset := req.GetString("dataSet", site.DefaultDataset)
	templateName := req.GetString("template", "index.html")
	fileName := req.GetString("fileName", "")
	if fileName == "" {
		fileName = strings.TrimSuffix(pageName, ".md") + ".html"
	}

	root, err := siteRoot()
	if err != nil {
		return nil, err
	}

	page, err := content.NewStore(root).GetPage(dataset, pageName)
	if err != nil {
		return failure("%v", err)
	}

	title := page.Attributes["title"]
	if title == "" {
		title = strings.TrimSuffix(pageName, ".md")
	}

	tpl := decoration.NewStore(root).GetTemplate(templateName)
	if !tpl.Exists {
		log.Printf("WARNING: render_page: template %s not found in decoration %s, using fallback shell",
			templateName, tpl.Decoration)
	}

	html, err := render.Page(tpl.Content, title, page.Body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	manager := output.NewManager(root)
	path, err := manager.SaveHTML(fileName, html)
	if err != nil {
		return failure("%v", err)
	}

	return jsonResult(renderPageResult{
		Success:  true,
		FilePath: path,
		DistDir:  manager.DistDir(),
		Title:    title,
	})
}

package tools

import (
	"context"

	"github.com/lcordova/siteforge/internal/site"
	"github.com/lcordova/siteforge/internal/sitemap"
	"github.com/mark3labs/mcp-go/mcp"
)

// XMLSitemapTool handles the xml_sitemap MCP tool.
type XMLSitemapTool struct{}

// NewXMLSitemapTool creates an XMLSitemapTool.
func NewXMLSitemapTool() *XMLSitemapTool {
	return &XMLSitemapTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *XMLSitemapTool) Definition() mcp.Tool {
	return mcp.NewTool("xml_sitemap",
		mcp.WithDescription(
			"Generate dist/sitemap.xml from the pages of a dataset. Each page "+
				"contributes one entry; an `alias` frontmatter key overrides the "+
				"filename-derived URL. The entry resolving to index.html gets "+
				"priority 1.0, all others 0.8.",
		),
		mcp.WithString("baseUrl",
			mcp.Required(),
			mcp.Description("Absolute base URL of the published site (e.g. https://example.com/)"),
		),
		mcp.WithString("dataSet",
			mcp.Description("Dataset name (default: \"default\")"),
		),
	)
}

type xmlSitemapResult struct {
	Success     bool     `json:"success"`
	SitemapPath string   `json:"sitemapPath"`
	URLCount    int      `json:"urlCount"`
	URLs        []string `json:"urls"`
}

// Handle processes the xml_sitemap tool call.
func (t *XMLSitemapTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	baseURL := req.GetString("baseUrl", "")
	if baseURL == "" {
		return mcp.NewToolResultError("'baseUrl' is required"), nil
	}

	dataset := req.GetString("dataSet", site.DefaultDataset)

	root, err := siteRoot()
	if err != nil {
		return nil, err
	}

	result, err := sitemap.Build(root, dataset, baseURL)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	urls := result.URLs
	if urls == nil {
		urls = []string{}
	}
	return jsonResult(xmlSitemapResult{
		Success:     true,
		SitemapPath: result.Path,
		URLCount:    len(urls),
		URLs:        urls,
	})
}

package tools

import (
	"context"

	"github.com/lcordova/siteforge/internal/decoration"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetTemplateTool handles the get_template MCP tool.
type GetTemplateTool struct{}

// NewGetTemplateTool creates a GetTemplateTool.
func NewGetTemplateTool() *GetTemplateTool {
	return &GetTemplateTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *GetTemplateTool) Definition() mcp.Tool {
	return mcp.NewTool("get_template",
		mcp.WithDescription(
			"Read a named template from the active decoration. A missing "+
				"template is reported as templateExists:false with null content, "+
				"not as an error.",
		),
		mcp.WithString("template",
			mcp.Description("Template file name (default: index.html)"),
		),
	)
}

type getTemplateResult struct {
	Decoration     string  `json:"decoration"`
	TemplateExists bool    `json:"templateExists"`
	Template       *string `json:"template"`
	TemplatePath   string  `json:"templatePath"`
}

// Handle processes the get_template tool call.
func (t *GetTemplateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("template", "index.html")

	root, err := siteRoot()
	if err != nil {
		return nil, err
	}

	tpl := decoration.NewStore(root).GetTemplate(name)

	result := getTemplateResult{
		Decoration:     tpl.Decoration,
		TemplateExists: tpl.Exists,
		TemplatePath:   tpl.Path,
	}
	if tpl.Exists {
		result.Template = &tpl.Content
	}
	return jsonResult(result)
}

package tools

import (
	"context"

	"github.com/lcordova/siteforge/internal/decoration"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetComponentTool handles the get_component MCP tool.
type GetComponentTool struct{}

// NewGetComponentTool creates a GetComponentTool.
func NewGetComponentTool() *GetComponentTool {
	return &GetComponentTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *GetComponentTool) Definition() mcp.Tool {
	return mcp.NewTool("get_component",
		mcp.WithDescription(
			"Read a reusable component from the active decoration: its "+
				"template.html plus example.md/example.html usage examples. Each "+
				"file is read independently — a missing example does not hide the "+
				"template. componentExists reflects only the component directory.",
		),
		mcp.WithString("component",
			mcp.Required(),
			mcp.Description("Component name (directory under components/)"),
		),
	)
}

type getComponentResult struct {
	Decoration      string  `json:"decoration"`
	Component       string  `json:"component"`
	ComponentExists bool    `json:"componentExists"`
	Template        *string `json:"template"`
	ExampleMd       *string `json:"exampleMd"`
	ExampleHTML     *string `json:"exampleHtml"`
}

// Handle processes the get_component tool call.
func (t *GetComponentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("component", "")
	if name == "" {
		return mcp.NewToolResultError("'component' is required"), nil
	}

	root, err := siteRoot()
	if err != nil {
		return nil, err
	}

	comp, err := decoration.NewStore(root).GetComponent(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(getComponentResult{
		Decoration:      comp.Decoration,
		Component:       comp.Name,
		ComponentExists: comp.Exists,
		Template:        comp.Template,
		ExampleMd:       comp.ExampleMd,
		ExampleHTML:     comp.ExampleHTML,
	})
}

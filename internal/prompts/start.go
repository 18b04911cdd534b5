// Package prompts implements MCP prompt handlers.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the site-start MCP prompt.
// It guides the AI through assembling and previewing a site.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("site-start",
		mcp.WithPromptDescription(
			"Start working on the site: review the existing content and "+
				"decoration, then walk through the authoring loop — write pages, "+
				"render them, build the sitemap, copy media, and preview.",
		),
		mcp.WithArgument("dataSet",
			mcp.ArgumentDescription("Content dataset to work on (default: default)"),
		),
	)
}

// Handle processes the site-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	dataset := "default"
	if args := req.Params.Arguments; args != nil {
		if d, ok := args["dataSet"]; ok && d != "" {
			dataset = d
		}
	}

	text := fmt.Sprintf(`Let's work on the site (dataset %q).

1. Call list_pages to see what content exists.
2. Call get_template and get_markdown to learn the active decoration's
   HTML shapes, and get_component for any reusable fragments you need.
3. Write or update pages with create_page (markdown body + title).
4. Produce output: render_page for each page (or save_html for hand-built
   files), xml_sitemap with the site's base URL, and copy_media.
5. Call run_server and give the user the preview URL.

Empty the output first with empty_dist when doing a full rebuild. Every
tool re-reads the filesystem, so you can repeat any step at any time.`, dataset)

	return &mcp.GetPromptResult{
		Description: "Site authoring workflow",
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(text),
			},
		},
	}, nil
}

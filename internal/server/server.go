// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it registers every tool, prompt, and
// resource. No business logic lives here — only wiring.
package server

import (
	"github.com/lcordova/siteforge/internal/prompts"
	"github.com/lcordova/siteforge/internal/resources"
	"github.com/lcordova/siteforge/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered.
func New() *server.MCPServer {
	s := server.NewMCPServer(
		"siteforge",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Content tools ---

	listPages := tools.NewListPagesTool()
	s.AddTool(listPages.Definition(), listPages.Handle)

	createPage := tools.NewCreatePageTool()
	s.AddTool(createPage.Definition(), createPage.Handle)

	getPage := tools.NewGetPageTool()
	s.AddTool(getPage.Definition(), getPage.Handle)

	// --- Decoration tools ---

	getMarkdown := tools.NewGetMarkdownTool()
	s.AddTool(getMarkdown.Definition(), getMarkdown.Handle)

	getTemplate := tools.NewGetTemplateTool()
	s.AddTool(getTemplate.Definition(), getTemplate.Handle)

	getComponent := tools.NewGetComponentTool()
	s.AddTool(getComponent.Definition(), getComponent.Handle)

	// --- Build output tools ---

	renderPage := tools.NewRenderPageTool()
	s.AddTool(renderPage.Definition(), renderPage.Handle)

	saveHTML := tools.NewSaveHTMLTool()
	s.AddTool(saveHTML.Definition(), saveHTML.Handle)

	copyMedia := tools.NewCopyMediaTool()
	s.AddTool(copyMedia.Definition(), copyMedia.Handle)

	emptyDist := tools.NewEmptyDistTool()
	s.AddTool(emptyDist.Definition(), emptyDist.Handle)

	xmlSitemap := tools.NewXMLSitemapTool()
	s.AddTool(xmlSitemap.Definition(), xmlSitemap.Handle)

	// --- Preview ---

	runServer := tools.NewRunServerTool()
	s.AddTool(runServer.Definition(), runServer.Handle)

	// --- Prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	// --- Resources ---

	resourceHandler := resources.NewHandler()
	s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)

	return s
}

// serverInstructions returns the system instructions that tell the AI
// how to use the site tools effectively.
func serverInstructions() string {
	return `You have access to siteforge, a static-site assembly MCP server.

## How the site is laid out

All state is the filesystem, relative to the site root (the directory
holding src/):

- src/settings.yml — one line: "decoration: <name>" (default: light)
- src/content/<dataset>/*.md — markdown pages with "---" frontmatter
- src/decoration/<name>/templates/ — page templates (index.html, ...)
- src/decoration/<name>/markdown/ — per-tag HTML snippets (h1.html, p.html, ...)
- src/decoration/<name>/components/<component>/ — template.html + example.md + example.html
- src/media/ — static assets
- dist/ — the generated site

## How tools work

Every tool is independent and idempotent: it re-reads the filesystem on
each call and keeps no state between calls, so you can invoke tools in any
order and repeat them freely. Editing src/settings.yml switches the active
decoration for the very next call.

## Authoring workflow

1. list_pages — see what content exists (creates the dataset if missing)
2. get_template / get_markdown / get_component — learn the decoration's
   HTML shapes before generating any markup
3. create_page — write pages (title + markdown body; overwrites freely)
4. render_page — convert one page to HTML through the decoration template
   (literal {{ title }} / {{ content }} substitution), or save_html when
   you composed the HTML yourself using the markdown snippets
5. xml_sitemap — needs the site's absolute base URL; pages can override
   their URL with an "alias" frontmatter key
6. copy_media — mirror src/media into dist/media
7. run_server — preview dist at http://localhost:<port>/

Use empty_dist before a full rebuild. The preview server keeps running
once started; do not start it twice on the same port.

## Error conventions

Missing required arguments are tool errors. Missing files are data:
listing a missing dataset creates it, a missing template comes back as
templateExists:false, and only operations whose whole purpose is the
missing resource (get_page, copy_media, run_server, render_page) return
success:false with the underlying message.`
}

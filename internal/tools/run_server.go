package tools

import (
	"context"
	"fmt"

	"github.com/lcordova/siteforge/internal/preview"
	"github.com/lcordova/siteforge/internal/site"
	"github.com/mark3labs/mcp-go/mcp"
)

// RunServerTool handles the run_server MCP tool.
type RunServerTool struct{}

// NewRunServerTool creates a RunServerTool.
func NewRunServerTool() *RunServerTool {
	return &RunServerTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *RunServerTool) Definition() mcp.Tool {
	return mcp.NewTool("run_server",
		mcp.WithDescription(
			"Start a local HTTP preview server over the dist output tree. The "+
				"listener keeps running after this call returns; stopping it is "+
				"the caller's responsibility (usually: end the host process).",
		),
		mcp.WithNumber("port",
			mcp.Description("TCP port to listen on (default: 8080)"),
		),
	)
}

type runServerResult struct {
	Success bool   `json:"success"`
	Port    int    `json:"port"`
	URL     string `json:"url"`
	RootDir string `json:"rootDir"`
}

// Handle processes the run_server tool call.
func (t *RunServerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	port := intArg(req, "port", preview.DefaultPort)

	root, err := siteRoot()
	if err != nil {
		return nil, err
	}

	dist := site.DistDir(root)
	boundPort, err := preview.NewServer(dist).Start(port)
	if err != nil {
		return failure("%v", err)
	}

	return jsonResult(runServerResult{
		Success: true,
		Port:    boundPort,
		URL:     fmt.Sprintf("http://localhost:%d/", boundPort),
		RootDir: dist,
	})
}

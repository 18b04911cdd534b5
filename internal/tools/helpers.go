// Package tools implements the MCP tool handlers for site operations.
//
// Each tool is independently invocable and idempotent: handlers share no
// in-memory state, re-resolve the site root and active decoration on every
// call, and return their result as a JSON object embedded in the tool
// response text.
//
// Design principles:
// - SRP: each file = one tool
// - all durable state is the filesystem; the filesystem is re-read per call
// - missing required arguments are tool errors; missing files are data
package tools

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lcordova/siteforge/internal/site"
	"github.com/mark3labs/mcp-go/mcp"
)

// siteRoot resolves the site root for this invocation by walking up from
// the working directory looking for a src/ directory. Falls back to the
// working directory itself — content operations create the layout lazily.
func siteRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return site.FindRoot(dir), nil
}

// intArg extracts an integer argument from a tool request. JSON numbers
// arrive as float64.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// jsonResult marshals a result object into the tool response text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// failureResult reports an operation whose purpose was defeated by a
// missing resource. It is a structurally successful tool response carrying
// the failure as data, distinct from argument-validation tool errors.
type failureResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func failure(format string, args ...any) (*mcp.CallToolResult, error) {
	return jsonResult(failureResult{Success: false, Error: fmt.Sprintf(format, args...)})
}

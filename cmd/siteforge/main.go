// siteforge: static-site assembly MCP server
//
// Exposes content, decoration, build-output, and preview operations as MCP
// tools over stdio, for any MCP-capable AI host to drive.
//
// Usage:
//
//	siteforge serve    # Start MCP server (stdio transport)
package main

import (
	"fmt"
	"os"

	siteserver "github.com/lcordova/siteforge/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("siteforge v%s\n", siteserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	// Everything the tools touch lives on disk relative to the working
	// directory, so the server itself needs no setup beyond registration.
	// Stdout belongs to the MCP stdio transport; all diagnostics go to
	// stderr via the log package.
	return server.ServeStdio(siteserver.New())
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `siteforge v%s — static-site assembly MCP server

Usage:
  siteforge serve    Start the MCP server (stdio transport)

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "siteforge": {
        "command": "siteforge",
        "args": ["serve"]
      }
    }
  }

Run it from (or below) your site root — the directory containing src/.
`, siteserver.Version)
}

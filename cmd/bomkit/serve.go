// Package main provides the entry point for the bomkit CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	bomkitmcp "github.com/gridworks/bomkit/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run bomkit as a Model Context Protocol (MCP) server over stdio.

This exposes BOM operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "bomkit": {
        "command": "bomkit",
        "args": ["serve"]
      }
    }
  }

Available tools: inspect, validate, export`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := bomkitmcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

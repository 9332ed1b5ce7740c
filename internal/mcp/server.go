// Package mcp provides a Model Context Protocol server for bomkit.
// It exposes BOM inspection and export as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all bomkit tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "bomkit",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that write artifacts.
// Exports are idempotent: re-running overwrites with identical content.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all bomkit tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Summarize a BOM file: project metadata, per-category item counts, and validation state.",
		Annotations: readOnlyAnnotations(),
	}, handleInspect())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Report the BOM validation checklist: each fixed check as pass/fail/not-checked plus any builder warnings.",
		Annotations: readOnlyAnnotations(),
	}, handleValidate())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export",
		Description: "Export a BOM file to its CSV, Markdown, and pretty-printed JSON artifacts. Returns the written paths.",
		Annotations: writeAnnotations(),
	}, handleExport())
}

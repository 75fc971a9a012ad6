// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/facetkit/facet/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Facet MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Facet Decision Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_file ---
	s.AddTool(mcp.NewTool("analyze_file",
		mcp.WithDescription("Analyze a CSV or JSON data file and recommend a presentation per dataset."),
		mcp.WithString("path", mcp.Description("Path to the data file (CSV or JSON)."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of decisions returned.")),
	), h.handleAnalyzeFile)

	// --- 2. Tool: analyze_values ---
	s.AddTool(mcp.NewTool("analyze_values",
		mcp.WithDescription("Analyze an inline numeric sequence and recommend a chart for it."),
		mcp.WithString("values", mcp.Description("Comma-separated numbers, e.g. '10, 20, 30'."), mcp.Required()),
	), h.handleAnalyzeValues)

	// --- 3. Tool: analyze_categories ---
	s.AddTool(mcp.NewTool("analyze_categories",
		mcp.WithDescription("Analyze inline category counts and recommend a chart for them."),
		mcp.WithString("categories", mcp.Description("JSON object mapping category labels to counts, e.g. '{\"east\": 3, \"west\": 5}'."), mcp.Required()),
	), h.handleAnalyzeCategories)

	// --- 4. Tool: resolve_field_order ---
	s.AddTool(mcp.NewTool("resolve_field_order",
		mcp.WithDescription("Resolve a deterministic display order for a set of field identifiers."),
		mcp.WithString("fields", mcp.Description("Comma-separated field identifiers."), mcp.Required()),
		mcp.WithString("hints_path", mcp.Description("Path to a hints file with ordering rules.")),
		mcp.WithString("trait", mcp.Description("Active trait for trait-specific rule overrides.")),
	), h.handleResolveFieldOrder)

	return s
}

// StartMCPServer starts the Facet MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}

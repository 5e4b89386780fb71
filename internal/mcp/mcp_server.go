// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitpulse MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitpulse Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_repository ---
	s.AddTool(mcp.NewTool("analyze_repository",
		mcp.WithDescription("Run the full git history analysis and return the aggregate report."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the configured path if not specified).")),
		mcp.WithNumber("days", mcp.Description("Lookback window in days for time-scoped queries.")),
		mcp.WithNumber("workers", mcp.Description("Number of concurrent workers for analysis.")),
	), h.handleAnalyzeRepository)

	// --- 2. Tool: get_code_churn ---
	s.AddTool(mcp.NewTool("get_code_churn",
		mcp.WithDescription("Rank files by how often they changed within the lookback window."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithNumber("days", mcp.Description("Lookback window in days.")),
	), h.handleGetCodeChurn)

	// --- 3. Tool: get_contributor_insights ---
	s.AddTool(mcp.NewTool("get_contributor_insights",
		mcp.WithDescription("Aggregate per-contributor activity and impact scores within the lookback window."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithNumber("days", mcp.Description("Lookback window in days.")),
		mcp.WithNumber("workers", mcp.Description("Number of concurrent workers.")),
	), h.handleGetContributorInsights)

	// --- 4. Tool: get_release_patterns ---
	s.AddTool(mcp.NewTool("get_release_patterns",
		mcp.WithDescription("Summarize tagging cadence and recent release details."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
	), h.handleGetReleasePatterns)

	return s
}

// StartMCPServer starts the gitpulse MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}

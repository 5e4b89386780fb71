package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/gitpulse/core"
	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// cfgForRequest applies per-request overrides on top of the base config.
func (h *toolHandler) cfgForRequest(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if d := request.GetInt("days", 0); d > 0 {
		cfg.Days = d
	}
	if w := request.GetInt("workers", 0); w > 0 {
		cfg.Workers = w
	}
	return cfg
}

func (h *toolHandler) client(cfg *contract.Config) *contract.LocalGitClient {
	c := contract.NewLocalGitClient()
	if cfg.GitTimeout > 0 {
		c.Timeout = cfg.GitTimeout
	}
	return c
}

func (h *toolHandler) handleAnalyzeRepository(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.cfgForRequest(request)

	report, err := core.GetAnalysisReport(ctx, cfg, h.client(cfg), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCodeChurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.cfgForRequest(request)

	churn, err := core.GetCodeChurn(ctx, cfg, h.client(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("churn analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(churn, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetContributorInsights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.cfgForRequest(request)

	insights, err := core.GetContributorInsights(ctx, cfg, h.client(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("contributor analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(insights, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetReleasePatterns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.cfgForRequest(request)

	releases, err := core.GetReleasePatterns(ctx, cfg, h.client(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("release analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(releases, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

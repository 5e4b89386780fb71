package mcp_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/huangsam/gitpulse/internal/contract"
	mcp_internal "github.com/huangsam/gitpulse/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerTools_Registered(t *testing.T) {
	baseCfg := &contract.Config{
		RepoPath: ".",
		Days:     30,
		Workers:  2,
	}

	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)
	require.NotNil(t, s)

	for _, name := range []string{
		"analyze_repository",
		"get_code_churn",
		"get_contributor_insights",
		"get_release_patterns",
	} {
		tool := s.GetTool(name)
		assert.NotNil(t, tool, "Tool %s should exist", name)
	}
}

func TestMCPServerHandlers_InvalidRepoPath(t *testing.T) {
	baseCfg := &contract.Config{
		RepoPath: ".",
		Days:     30,
		Workers:  2,
	}

	// No manager needed, validation fails before any cache access
	var mgr contract.CacheManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	tests := []struct {
		tool string
		msg  string
	}{
		{"analyze_repository", "analysis failed"},
		{"get_code_churn", "churn analysis failed"},
		{"get_contributor_insights", "contributor analysis failed"},
		{"get_release_patterns", "release analysis failed"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			tool := s.GetTool(tt.tool)
			require.NotNil(t, tool, "Tool %s should exist", tt.tool)

			req := mcp.CallToolRequest{
				Params: mcp.CallToolParams{
					Name: tt.tool,
					Arguments: map[string]any{
						"repo_path": missing,
					},
				},
			}

			res, err := tool.Handler(ctx, req)
			require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, res.Content[0].(mcp.TextContent).Text, tt.msg)
		})
	}
}

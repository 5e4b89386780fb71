// Package core has core logic for history analysis and report assembly.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/internal/outwriter"
	"github.com/huangsam/gitpulse/schema"
)

// ReportCacheVersion invalidates cached reports when the report shape changes.
const ReportCacheVersion = 1

// newLocalClient builds the git client with the configured per-call deadline.
func newLocalClient(cfg *contract.Config) *contract.LocalGitClient {
	client := contract.NewLocalGitClient()
	if cfg.GitTimeout > 0 {
		client.Timeout = cfg.GitTimeout
	}
	return client
}

// ExecuteReport runs the full analysis and prints the aggregate report.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	report, err := GetAnalysisReport(ctx, cfg, newLocalClient(cfg), mgr)
	if err != nil {
		return err
	}
	writer := outwriter.NewOutWriter()
	return writer.WriteReport(report, cfg, time.Since(start))
}

// ExecuteChurn runs only the Code Churn aspect and prints its ranking.
func ExecuteChurn(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	churn, err := GetCodeChurn(ctx, cfg, newLocalClient(cfg))
	if err != nil {
		return err
	}
	writer := outwriter.NewOutWriter()
	return writer.WriteChurn(churn, cfg, time.Since(start))
}

// ExecuteContributors runs only the Contributor Insights aspect.
func ExecuteContributors(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	insights, err := GetContributorInsights(ctx, cfg, newLocalClient(cfg))
	if err != nil {
		return err
	}
	writer := outwriter.NewOutWriter()
	return writer.WriteContributors(insights, cfg, time.Since(start))
}

// ExecuteReleases runs only the Release Patterns aspect.
func ExecuteReleases(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	releases, err := GetReleasePatterns(ctx, cfg, newLocalClient(cfg))
	if err != nil {
		return err
	}
	writer := outwriter.NewOutWriter()
	return writer.WriteReleases(releases, cfg, time.Since(start))
}

// GetCodeChurn computes the Code Churn aspect without touching output.
func GetCodeChurn(ctx context.Context, cfg *contract.Config, client contract.GitClient) (schema.CodeChurn, error) {
	if err := contract.ValidateRepoPath(cfg.RepoPath); err != nil {
		return schema.CodeChurn{}, err
	}
	return getCodeChurn(ctx, client, cfg.RepoPath, cfg.Days, time.Now())
}

// GetContributorInsights computes the Contributor Insights aspect without touching output.
func GetContributorInsights(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]schema.ContributorInsight, error) {
	if err := contract.ValidateRepoPath(cfg.RepoPath); err != nil {
		return nil, err
	}
	return getContributorInsights(ctx, client, cfg.RepoPath, cfg.Days, cfg.Workers, time.Now())
}

// GetReleasePatterns computes the Release Patterns aspect without touching output.
func GetReleasePatterns(ctx context.Context, cfg *contract.Config, client contract.GitClient) (schema.ReleasePatterns, error) {
	if err := contract.ValidateRepoPath(cfg.RepoPath); err != nil {
		return schema.ReleasePatterns{}, err
	}
	return analyzeReleasePatterns(ctx, client, cfg.RepoPath)
}

// GetAnalysisReport builds the aggregate report, consulting the report cache
// first and recording the run when tracking is configured. Cache failures
// degrade to a fresh analysis; they never fail the report.
func GetAnalysisReport(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) (*schema.AnalysisReport, error) {
	var store contract.ReportStore
	var runStore contract.RunStore
	if mgr != nil {
		store = mgr.GetReportStore()
		runStore = mgr.GetRunStore()
	}

	cacheKey := ""
	if store != nil {
		if key, err := reportCacheKey(ctx, client, cfg); err == nil {
			cacheKey = key
			if cached := lookupCachedReport(store, key); cached != nil {
				return cached, nil
			}
		}
	}

	var runID int64
	startTime := time.Now()
	if runStore != nil {
		params := map[string]any{
			"repo_path": cfg.RepoPath,
			"days":      cfg.Days,
			"workers":   cfg.Workers,
		}
		id, err := runStore.BeginRun(startTime, params)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
		} else {
			runID = id
		}
	}

	report, err := BuildAnalysisReport(ctx, cfg, client)
	if err != nil {
		return nil, err
	}

	if runStore != nil && runID > 0 {
		if err := runStore.EndRun(runID, time.Now(), report.RepositoryInfo.TotalCommits); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	if store != nil && cacheKey != "" {
		if data, err := json.Marshal(report); err == nil {
			if err := store.Set(cacheKey, data, ReportCacheVersion, time.Now().Unix()); err != nil {
				contract.LogWarn("Failed to cache report", err)
			}
		}
	}

	return report, nil
}

// reportCacheKey ties a cached report to the exact HEAD commit and window.
func reportCacheKey(ctx context.Context, client contract.GitClient, cfg *contract.Config) (string, error) {
	hash, err := client.GetRepoHash(ctx, cfg.RepoPath)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("report:%s:%dd", hash, cfg.Days), nil
}

// lookupCachedReport returns the cached report for key, or nil on any miss,
// version skew or decode failure.
func lookupCachedReport(store contract.ReportStore, key string) *schema.AnalysisReport {
	data, version, _, err := store.Get(key)
	if err != nil || version != ReportCacheVersion {
		return nil
	}
	var report schema.AnalysisReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil
	}
	return &report
}

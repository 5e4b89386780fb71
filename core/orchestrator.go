package core

import (
	"context"
	"sync"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// BuildAnalysisReport validates the repository path and runs all aspect
// analyzers, assembling the aggregate report exactly once.
//
// Scheduling: the four base aspects run as two concurrent pairs; Code Churn,
// Architectural Decisions and Release Patterns follow, each independent;
// Development Patterns consumes Commit History's already-parsed result and
// therefore runs strictly after it. Results combine only behind the join
// barriers, so no aspect state is shared while goroutines run.
//
// The report is all-or-nothing: a failure in any required aspect aborts the
// whole analysis with that aspect's error, never a silently partial report.
func BuildAnalysisReport(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.AnalysisReport, error) {
	if err := contract.ValidateRepoPath(cfg.RepoPath); err != nil {
		return nil, err
	}

	now := time.Now()

	var (
		repoInfo     schema.RepositoryInfo
		history      schema.CommitHistory
		branches     schema.BranchAnalysis
		contributors []schema.ContributorInsight

		repoErr, histErr, branchErr, contribErr error
	)

	var base sync.WaitGroup
	base.Go(func() { repoInfo, repoErr = getRepositoryInfo(ctx, client, cfg.RepoPath) })
	base.Go(func() { history, histErr = getCommitHistory(ctx, client, cfg.RepoPath, cfg.Days, now) })
	base.Go(func() { branches, branchErr = getBranchAnalysis(ctx, client, cfg.RepoPath, now) })
	base.Go(func() {
		contributors, contribErr = getContributorInsights(ctx, client, cfg.RepoPath, cfg.Days, cfg.Workers, now)
	})
	base.Wait()

	for _, err := range []error{repoErr, histErr, branchErr, contribErr} {
		if err != nil {
			return nil, err
		}
	}

	var (
		churn     schema.CodeChurn
		decisions []schema.ArchitecturalDecision
		releases  schema.ReleasePatterns

		churnErr, decisionErr, releaseErr error
	)

	var derived sync.WaitGroup
	derived.Go(func() { churn, churnErr = getCodeChurn(ctx, client, cfg.RepoPath, cfg.Days, now) })
	derived.Go(func() { decisions, decisionErr = findArchitecturalDecisions(ctx, client, cfg.RepoPath, cfg.Days, now) })
	derived.Go(func() { releases, releaseErr = analyzeReleasePatterns(ctx, client, cfg.RepoPath) })

	// Commit History has completed, so the cross-aspect dependency is
	// satisfied by sequencing alone.
	patterns := analyzeDevelopmentPatterns(history)

	derived.Wait()

	for _, err := range []error{churnErr, decisionErr, releaseErr} {
		if err != nil {
			return nil, err
		}
	}

	return &schema.AnalysisReport{
		RepositoryInfo:         repoInfo,
		CommitHistory:          history,
		BranchAnalysis:         branches,
		ContributorInsights:    contributors,
		CodeChurn:              churn,
		DevelopmentPatterns:    patterns,
		ArchitecturalDecisions: decisions,
		ReleasePatterns:        releases,
	}, nil
}

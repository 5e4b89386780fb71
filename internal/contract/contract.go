// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/gitpulse/schema"
)

// GitClient defines the necessary operations for git history analysis.
// This allows the core analysis logic to be tested without needing a real git executable.
type GitClient interface {
	// --- Generic / Low-Level ---

	// Run executes a git command and returns its standard output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// --- Repository Facts ---

	// GetCurrentBranch returns the currently checked-out branch name.
	GetCurrentBranch(ctx context.Context, repoPath string) (string, error)

	// GetRemoteURL returns the origin remote URL. Callers treat a failure
	// as "no remote configured", not as an error.
	GetRemoteURL(ctx context.Context, repoPath string) (string, error)

	// GetCommitCount returns the raw output of a HEAD commit count query.
	GetCommitCount(ctx context.Context, repoPath string) ([]byte, error)

	// GetBoundaryCommitDate returns the raw timestamp of the first (oldest)
	// or last (newest) commit reachable from HEAD.
	GetBoundaryCommitDate(ctx context.Context, repoPath string, oldest bool) ([]byte, error)

	// GetRepoHash returns the current HEAD commit hash of the repository.
	GetRepoHash(ctx context.Context, repoPath string) (string, error)

	// --- Window-Scoped Logs ---

	// GetCommitLog returns the pipe-delimited commit log with numstat lines since the given day.
	GetCommitLog(ctx context.Context, repoPath string, since time.Time) ([]byte, error)

	// GetAuthorSummaryLog returns one name|email line per commit since the given day.
	GetAuthorSummaryLog(ctx context.Context, repoPath string, since time.Time) ([]byte, error)

	// GetAuthorActivityLog returns timestamps plus numstat lines for one author's
	// commits since the given day.
	GetAuthorActivityLog(ctx context.Context, repoPath string, email string, since time.Time) ([]byte, error)

	// GetChurnLog returns bare numstat lines (no commit headers) since the given day.
	GetChurnLog(ctx context.Context, repoPath string, since time.Time) ([]byte, error)

	// GetDecisionLog returns pipe-delimited records for commits whose subject
	// matches the keyword, case-insensitively, since the given day.
	GetDecisionLog(ctx context.Context, repoPath string, keyword string, since time.Time) ([]byte, error)

	// --- Branches / Tags ---

	// GetBranchList returns one pipe-delimited record per branch.
	GetBranchList(ctx context.Context, repoPath string) ([]byte, error)

	// GetMergedBranches returns the names of branches already merged into HEAD.
	GetMergedBranches(ctx context.Context, repoPath string) ([]byte, error)

	// GetTagList returns all tag names, newest first by creation date.
	GetTagList(ctx context.Context, repoPath string) ([]byte, error)

	// GetTagInfo returns the single-line detail record for one tag.
	GetTagInfo(ctx context.Context, repoPath string, tag string) ([]byte, error)
}

// CacheManager defines the interface for managing persistence stores.
// This allows the persistence layer to be mocked for testing.
type CacheManager interface {
	GetReportStore() ReportStore
	GetRunStore() RunStore
}

// ReportStore defines the interface for cached report storage.
type ReportStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Clear() error
	Close() error
}

// RunStore defines the interface for tracking analysis runs.
type RunStore interface {
	// BeginRun creates a new analysis run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the analysis run with completion data
	EndRun(runID int64, endTime time.Time, totalCommits int) error

	// GetStatus returns status information about the run store
	GetStatus() (schema.RunStatus, error)

	// GetAllRuns retrieves every recorded analysis run
	GetAllRuns() ([]schema.RunRecord, error)

	// Close closes the underlying connection
	Close() error
}

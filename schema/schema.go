// Package schema has configs, models and global variables for all parts of gitpulse.
package schema

// AnalysisReport is the aggregate result of one repository analysis.
// It owns one instance of each aspect result and is assembled exactly once
// by the orchestrator; callers serialize it as a whole.
type AnalysisReport struct {
	RepositoryInfo         RepositoryInfo          `json:"repository_info"`
	CommitHistory          CommitHistory           `json:"commit_history"`
	BranchAnalysis         BranchAnalysis          `json:"branch_analysis"`
	ContributorInsights    []ContributorInsight    `json:"contributor_insights"`
	CodeChurn              CodeChurn               `json:"code_churn"`
	DevelopmentPatterns    DevelopmentPatterns     `json:"development_patterns"`
	ArchitecturalDecisions []ArchitecturalDecision `json:"architectural_decisions"`
	ReleasePatterns        ReleasePatterns         `json:"release_patterns"`
}

// RepositoryInfo holds coarse repository-level facts.
type RepositoryInfo struct {
	Path              string `json:"path"`                 // Path given to the analyzer
	RemoteURL         string `json:"remote_url,omitempty"` // Origin URL; empty when no remote is configured
	DefaultBranch     string `json:"default_branch"`       // Currently checked-out branch name
	TotalCommits      int    `json:"total_commits"`        // Commit count reachable from HEAD
	FirstCommitDate   string `json:"first_commit_date"`    // Raw git timestamp, offset preserved
	LastCommitDate    string `json:"last_commit_date"`     // Raw git timestamp, offset preserved
	RepositoryAgeDays int    `json:"repository_age_days"`  // last - first, truncated to whole days
}

// CommitHistory holds windowed commit activity and derived counts.
type CommitHistory struct {
	RecentCommits         []CommitInfo   `json:"recent_commits"`           // Most recent 50 commits, newest first
	CommitsByMonth        map[string]int `json:"commits_by_month"`         // YYYY-MM -> count
	CommitsByDay          map[string]int `json:"commits_by_day"`           // YYYY-MM-DD -> count
	AverageCommitsPerWeek float64        `json:"average_commits_per_week"` // Window count over max(days/7, 1)
}

// CommitInfo is one parsed commit plus its summed numstat lines.
type CommitInfo struct {
	Hash         string `json:"hash"`
	Author       string `json:"author"`
	Email        string `json:"email"`
	Date         string `json:"date"` // Raw git timestamp, offset preserved
	Message      string `json:"message"`
	FilesChanged int    `json:"files_changed"`
	Insertions   int    `json:"insertions"`
	Deletions    int    `json:"deletions"`
}

// BranchAnalysis splits branches into active and stale sets.
type BranchAnalysis struct {
	TotalBranches       int          `json:"total_branches"`
	ActiveBranches      []BranchInfo `json:"active_branches"`
	StaleBranches       []BranchInfo `json:"stale_branches"`
	MergedBranchesCount int          `json:"merged_branches_count"`
}

// BranchInfo is one branch-listing record.
type BranchInfo struct {
	Name           string `json:"name"`
	LastCommitDate string `json:"last_commit_date"`
	CommitsAhead   int    `json:"commits_ahead"`
	CommitsBehind  int    `json:"commits_behind"`
	IsMerged       bool   `json:"is_merged"`
}

// ContributorInsight aggregates the activity of one contributor, keyed by email.
// Two display names sharing an email collapse into one record.
type ContributorInsight struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	TotalCommits    int     `json:"total_commits"`
	FirstCommitDate string  `json:"first_commit_date"`
	LastCommitDate  string  `json:"last_commit_date"`
	LinesAdded      int     `json:"lines_added"`
	LinesDeleted    int     `json:"lines_deleted"`
	FilesModified   int     `json:"files_modified"`
	ImpactScore     float64 `json:"impact_score"` // Heuristic weighting, see ImpactScore
}

// CodeChurn ranks files by how often they changed within the window.
type CodeChurn struct {
	MostChangedFiles      []FileChurn `json:"most_changed_files"` // Top 20 by times changed
	TotalFilesEverChanged int         `json:"total_files_ever_changed"`
	Hotspots              []string    `json:"hotspots"` // Paths with times changed > HotspotThreshold
}

// FileChurn is the per-path churn accumulation.
type FileChurn struct {
	Path            string `json:"path"`
	TimesChanged    int    `json:"times_changed"`
	TotalInsertions int    `json:"total_insertions"`
	TotalDeletions  int    `json:"total_deletions"`
}

// DevelopmentPatterns is derived purely from CommitHistory's recent commits.
type DevelopmentPatterns struct {
	CommitFrequency      CommitFrequency `json:"commit_frequency"`
	PeakDevelopmentHours []int           `json:"peak_development_hours"` // Top 5 hours of day
	PeakDevelopmentDays  []string        `json:"peak_development_days"`  // Top 3 weekday names
	AverageCommitSize    float64         `json:"average_commit_size"`    // Lines changed per commit
	MedianCommitSize     int             `json:"median_commit_size"`
}

// ArchitecturalDecision is one keyword-matched commit. A commit matching
// several keywords yields one record per keyword; that duplication is the
// documented contract, not a bug.
type ArchitecturalDecision struct {
	CommitHash   string       `json:"commit_hash"`
	Date         string       `json:"date"`
	Author       string       `json:"author"`
	Message      string       `json:"message"`
	DecisionType string       `json:"decision_type"` // The matched keyword
	Impact       DecisionTier `json:"impact"`
}

// ReleasePatterns summarizes tagging cadence.
type ReleasePatterns struct {
	TotalTags                  int              `json:"total_tags"`
	RecentTags                 []TagInfo        `json:"recent_tags"` // Detail for the 10 newest tags
	AverageDaysBetweenReleases float64          `json:"average_days_between_releases"`
	ReleaseFrequency           ReleaseFrequency `json:"release_frequency"`
}

// TagInfo is one per-tag detail record.
type TagInfo struct {
	Name       string `json:"name"`
	Date       string `json:"date"`
	CommitHash string `json:"commit_hash"`
	Message    string `json:"message"`
}

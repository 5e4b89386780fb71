package outwriter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *schema.AnalysisReport {
	return &schema.AnalysisReport{
		RepositoryInfo: schema.RepositoryInfo{
			Path:              "/tmp/repo",
			RemoteURL:         "git@github.com:acme/widgets.git",
			DefaultBranch:     "main",
			TotalCommits:      1234,
			FirstCommitDate:   "2020-01-01 00:00:00 +0000",
			LastCommitDate:    "2024-03-15 00:00:00 +0000",
			RepositoryAgeDays: 1535,
		},
		CommitHistory: schema.CommitHistory{
			RecentCommits: []schema.CommitInfo{
				{Hash: "abcdef0123456789", Author: "Alice", Email: "alice@example.com", Date: "2024-03-14 10:00:00 +0000", Message: "Fix parser", FilesChanged: 2, Insertions: 10, Deletions: 3},
			},
			CommitsByMonth:        map[string]int{"2024-03": 1},
			CommitsByDay:          map[string]int{"2024-03-14": 1},
			AverageCommitsPerWeek: 4.5,
		},
		BranchAnalysis: schema.BranchAnalysis{
			TotalBranches:       3,
			ActiveBranches:      []schema.BranchInfo{{Name: "main", LastCommitDate: "2024-03-14 10:00:00 +0000", IsMerged: true}},
			StaleBranches:       []schema.BranchInfo{{Name: "old-feature", LastCommitDate: "2023-01-01 10:00:00 +0000"}},
			MergedBranchesCount: 1,
		},
		ContributorInsights: sampleContributors(),
		CodeChurn:           sampleChurn(),
		DevelopmentPatterns: schema.DevelopmentPatterns{
			CommitFrequency:      schema.ActiveFrequency,
			PeakDevelopmentHours: []int{9, 14},
			PeakDevelopmentDays:  []string{"Monday", "Tuesday"},
			AverageCommitSize:    24.5,
			MedianCommitSize:     13,
		},
		ArchitecturalDecisions: []schema.ArchitecturalDecision{
			{CommitHash: "abcdef0123456789", Date: "2024-03-10 09:00:00 +0000", Author: "Alice", Message: "refactor storage layer", DecisionType: "refactor", Impact: schema.MediumImpact},
		},
		ReleasePatterns: sampleReleases(),
	}
}

func TestWriteReportText(t *testing.T) {
	cfg := &contract.Config{Precision: 1, Workers: 4, CacheBackend: schema.SQLiteBackend}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeReportText(sampleReport(), cfg, fmtFloat, 2*time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	for _, section := range []string{
		"Repository",
		"Commit History",
		"Branches",
		"Contributors",
		"Code Churn",
		"Development Patterns",
		"Architectural Decisions",
		"Releases",
	} {
		assert.Contains(t, out, section)
	}

	assert.Contains(t, out, "Remote: git@github.com:acme/widgets.git")
	assert.Contains(t, out, "Total commits: 1234")
	assert.Contains(t, out, "Age: 1535 days")
	assert.Contains(t, out, "Average commits per week: 4.5")
	assert.Contains(t, out, "Total: 3, active: 1, stale: 1, merged: 1")
	assert.Contains(t, out, "Peak hours: 09:00, 14:00")
	assert.Contains(t, out, "Peak days: Monday, Tuesday")
	assert.Contains(t, out, "Commit size: avg 24.5 lines, median 13 lines")
	assert.Contains(t, out, "refactor storage layer")
	assert.Contains(t, out, "Total tags: 12")
	assert.Contains(t, out, "Analysis completed")
}

func TestWriteReportText_NoRemoteAndNoDecisions(t *testing.T) {
	report := sampleReport()
	report.RepositoryInfo.RemoteURL = ""
	report.ArchitecturalDecisions = nil

	cfg := &contract.Config{Precision: 1, Workers: 4}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeReportText(report, cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "Remote:")
	assert.Contains(t, out, "No keyword-matched commits in window")
}

func TestWriteCSVReport(t *testing.T) {
	cfg := &contract.Config{Precision: 1}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVReport(w, sampleReport(), fmtFloat)
	require.NoError(t, err)
	w.Flush()

	reader := csv.NewReader(bytes.NewReader(buf.Bytes()))
	records, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"section", "metric", "value"}, records[0])

	metrics := make(map[string]string)
	for _, rec := range records[1:] {
		require.Len(t, rec, 3)
		metrics[rec[0]+"/"+rec[1]] = rec[2]
	}
	assert.Equal(t, "1234", metrics["repository/total_commits"])
	assert.Equal(t, "4.5", metrics["commit_history/average_commits_per_week"])
	assert.Equal(t, "3", metrics["branches/total_branches"])
	assert.Equal(t, "2", metrics["contributors/total_contributors"])
	assert.Equal(t, string(schema.ActiveFrequency), metrics["patterns/commit_frequency"])
	assert.Equal(t, "1", metrics["decisions/total_decisions"])
	assert.Equal(t, string(schema.MonthlyRelease), metrics["releases/release_frequency"])
}

func TestPrintAnalysisReport_ParquetWritesBothDatasets(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "report")
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: prefix, Precision: 1}

	err := PrintAnalysisReport(sampleReport(), cfg, time.Second)
	require.NoError(t, err)

	for _, suffix := range []string{".code_churn.parquet", ".contributors.parquet"} {
		info, err := os.Stat(prefix + suffix)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestPrintAnalysisReport_ParquetRequiresOutputFile(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, Precision: 1}

	err := PrintAnalysisReport(sampleReport(), cfg, time.Second)
	assert.Error(t, err)
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "n/a", formatHours(nil))
	assert.Equal(t, "09:00", formatHours([]int{9}))
	assert.Equal(t, "00:00, 14:00, 23:00", formatHours([]int{0, 14, 23}))
}

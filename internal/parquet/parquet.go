// Package parquet provides data structures and functions for exporting git
// analysis data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/gitpulse/schema"
	"github.com/parquet-go/parquet-go"
)

// AnalysisRun represents a single analysis run with metadata.
// This struct maps to the gitpulse_analysis_runs database table.
type AnalysisRun struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the analysis began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the analysis completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the analysis run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// TotalCommits is the number of commits in the analyzed repository (nullable)
	TotalCommits *int `parquet:"total_commits,optional,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// FileChurnRow represents the churn accumulation for a single file.
type FileChurnRow struct {
	// Path is the relative path to the file in the repository
	Path string `parquet:"path,snappy"`

	// TimesChanged is how many commits touched this file in the window
	TimesChanged int32 `parquet:"times_changed,snappy"`

	// TotalInsertions is the number of lines added across those commits
	TotalInsertions int32 `parquet:"total_insertions,snappy"`

	// TotalDeletions is the number of lines deleted across those commits
	TotalDeletions int32 `parquet:"total_deletions,snappy"`
}

// ContributorRow represents the aggregated activity of one contributor.
type ContributorRow struct {
	// Name is the display name first seen for this email
	Name string `parquet:"name,snappy"`

	// Email is the aggregation key for the contributor
	Email string `parquet:"email,snappy"`

	// TotalCommits is the commit count within the window
	TotalCommits int32 `parquet:"total_commits,snappy"`

	// FirstCommitDate is the raw timestamp of the oldest windowed commit
	FirstCommitDate string `parquet:"first_commit_date,snappy"`

	// LastCommitDate is the raw timestamp of the newest windowed commit
	LastCommitDate string `parquet:"last_commit_date,snappy"`

	// LinesAdded is total insertions across the window
	LinesAdded int32 `parquet:"lines_added,snappy"`

	// LinesDeleted is total deletions across the window
	LinesDeleted int32 `parquet:"lines_deleted,snappy"`

	// FilesModified is total file touches across the window
	FilesModified int32 `parquet:"files_modified,snappy"`

	// ImpactScore is the weighted activity heuristic
	ImpactScore float64 `parquet:"impact_score,snappy"`
}

// WriteAnalysisRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteAnalysisRunsParquet(data []AnalysisRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteFileChurnParquet writes a slice of FileChurnRow structs to a Parquet file.
func WriteFileChurnParquet(data []FileChurnRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteContributorsParquet writes a slice of ContributorRow structs to a Parquet file.
func WriteContributorsParquet(data []ContributorRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes any row slice to a Parquet file using struct schema inference.
func writeParquet[T any](data []T, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the row struct tags
	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to AnalysisRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		result[i] = AnalysisRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalCommits:  record.TotalCommits,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertFileChurn converts schema.FileChurn to FileChurnRow for Parquet export.
func ConvertFileChurn(files []schema.FileChurn) []FileChurnRow {
	result := make([]FileChurnRow, len(files))
	for i, f := range files {
		result[i] = FileChurnRow{
			Path:            f.Path,
			TimesChanged:    int32(f.TimesChanged),
			TotalInsertions: int32(f.TotalInsertions),
			TotalDeletions:  int32(f.TotalDeletions),
		}
	}
	return result
}

// ConvertContributors converts schema.ContributorInsight to ContributorRow for Parquet export.
func ConvertContributors(insights []schema.ContributorInsight) []ContributorRow {
	result := make([]ContributorRow, len(insights))
	for i, c := range insights {
		result[i] = ContributorRow{
			Name:            c.Name,
			Email:           c.Email,
			TotalCommits:    int32(c.TotalCommits),
			FirstCommitDate: c.FirstCommitDate,
			LastCommitDate:  c.LastCommitDate,
			LinesAdded:      int32(c.LinesAdded),
			LinesDeleted:    int32(c.LinesDeleted),
			FilesModified:   int32(c.FilesModified),
			ImpactScore:     c.ImpactScore,
		}
	}
	return result
}

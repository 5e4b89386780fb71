package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/internal/parquet"
	"github.com/huangsam/gitpulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintAnalysisReport outputs the aggregate report, dispatching based on the output format configured.
func PrintAnalysisReport(report *schema.AnalysisReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVReport(csvWriter, report, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetReport(report, cfg)
	default:
		// Default to human-readable report
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(report, cfg, fmtFloat, duration, w)
		}, "Wrote report")
	}
}

// writeParquetReport exports the tabular report aspects as Parquet files.
// The output file acts as a prefix since two datasets are written.
func writeParquetReport(report *schema.AnalysisReport, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}

	churnFile := cfg.OutputFile + ".code_churn.parquet"
	churnRows := parquet.ConvertFileChurn(report.CodeChurn.MostChangedFiles)
	if err := parquet.WriteFileChurnParquet(churnRows, churnFile); err != nil {
		return fmt.Errorf("failed to write code churn: %w", err)
	}
	fmt.Printf("Exported %d churn records to: %s\n", len(churnRows), churnFile)

	contribFile := cfg.OutputFile + ".contributors.parquet"
	contribRows := parquet.ConvertContributors(report.ContributorInsights)
	if err := parquet.WriteContributorsParquet(contribRows, contribFile); err != nil {
		return fmt.Errorf("failed to write contributors: %w", err)
	}
	fmt.Printf("Exported %d contributor records to: %s\n", len(contribRows), contribFile)

	return nil
}

// writeReportText renders the full report as sectioned human-readable text.
func writeReportText(report *schema.AnalysisReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, w io.Writer) error {
	if err := writeRepositorySection(report, w); err != nil {
		return err
	}
	if err := writeHistorySection(report, fmtFloat, w); err != nil {
		return err
	}
	if err := writeBranchSection(report, w); err != nil {
		return err
	}
	if err := writeContributorSection(report, cfg, fmtFloat, w); err != nil {
		return err
	}
	if err := writeChurnSection(report, cfg, w); err != nil {
		return err
	}
	if err := writePatternsSection(report, fmtFloat, w); err != nil {
		return err
	}
	if err := writeDecisionSection(report, cfg, w); err != nil {
		return err
	}
	if err := writeReleaseSection(report, fmtFloat, w); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend)
	return err
}

// sectionHeader prints a report section title with an underline.
func sectionHeader(w io.Writer, title string) error {
	if _, err := fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("=", len(title))); err != nil {
		return err
	}
	return nil
}

func writeRepositorySection(report *schema.AnalysisReport, w io.Writer) error {
	if err := sectionHeader(w, "📁 Repository"); err != nil {
		return err
	}
	info := report.RepositoryInfo
	if _, err := fmt.Fprintf(w, "Path: %s\n", info.Path); err != nil {
		return err
	}
	if info.RemoteURL != "" {
		if _, err := fmt.Fprintf(w, "Remote: %s\n", info.RemoteURL); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Branch: %s\n", info.DefaultBranch); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total commits: %d\n", info.TotalCommits); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Age: %d days (%s .. %s)\n", info.RepositoryAgeDays, info.FirstCommitDate, info.LastCommitDate)
	return err
}

func writeHistorySection(report *schema.AnalysisReport, fmtFloat func(float64) string, w io.Writer) error {
	if err := sectionHeader(w, "🕒 Commit History"); err != nil {
		return err
	}
	hist := report.CommitHistory
	if _, err := fmt.Fprintf(w, "Recent commits: %d\n", len(hist.RecentCommits)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Active days: %d, active months: %d\n", len(hist.CommitsByDay), len(hist.CommitsByMonth)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Average commits per week: %s\n", fmtFloat(hist.AverageCommitsPerWeek))
	return err
}

func writeBranchSection(report *schema.AnalysisReport, w io.Writer) error {
	if err := sectionHeader(w, "🌿 Branches"); err != nil {
		return err
	}
	ba := report.BranchAnalysis
	_, err := fmt.Fprintf(w, "Total: %d, active: %d, stale: %d, merged: %d\n",
		ba.TotalBranches, len(ba.ActiveBranches), len(ba.StaleBranches), ba.MergedBranchesCount)
	return err
}

func writeContributorSection(report *schema.AnalysisReport, cfg *contract.Config, fmtFloat func(float64) string, w io.Writer) error {
	if err := sectionHeader(w, "👥 Contributors"); err != nil {
		return err
	}
	return writeContributorTable(report.ContributorInsights, cfg, fmtFloat, 0, w)
}

func writeChurnSection(report *schema.AnalysisReport, cfg *contract.Config, w io.Writer) error {
	if err := sectionHeader(w, "🔥 Code Churn"); err != nil {
		return err
	}
	return writeChurnTable(report.CodeChurn, cfg, 0, w)
}

func writePatternsSection(report *schema.AnalysisReport, fmtFloat func(float64) string, w io.Writer) error {
	if err := sectionHeader(w, "📈 Development Patterns"); err != nil {
		return err
	}
	p := report.DevelopmentPatterns
	if _, err := fmt.Fprintf(w, "Commit frequency: %s\n", p.CommitFrequency); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Peak hours: %s\n", formatHours(p.PeakDevelopmentHours)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Peak days: %s\n", strings.Join(p.PeakDevelopmentDays, ", ")); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Commit size: avg %s lines, median %d lines\n", fmtFloat(p.AverageCommitSize), p.MedianCommitSize)
	return err
}

func writeDecisionSection(report *schema.AnalysisReport, cfg *contract.Config, w io.Writer) error {
	if err := sectionHeader(w, "🏛️  Architectural Decisions"); err != nil {
		return err
	}
	if len(report.ArchitecturalDecisions) == 0 {
		_, err := fmt.Fprintln(w, "No keyword-matched commits in window")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Commit", "Date", "Author", "Type", "Impact", "Message"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, d := range report.ArchitecturalDecisions {
		label := contract.GetPlainTierLabel(d.Impact)
		if cfg.UseColors {
			label = contract.GetColorTierLabel(d.Impact)
		}
		data = append(data, []string{
			shortHash(d.CommitHash),
			d.Date,
			d.Author,
			d.DecisionType,
			label,
			d.Message,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeReleaseSection(report *schema.AnalysisReport, fmtFloat func(float64) string, w io.Writer) error {
	if err := sectionHeader(w, "🏷️  Releases"); err != nil {
		return err
	}
	rp := report.ReleasePatterns
	if _, err := fmt.Fprintf(w, "Total tags: %d, frequency: %s, avg gap: %s days\n",
		rp.TotalTags, rp.ReleaseFrequency, fmtFloat(rp.AverageDaysBetweenReleases)); err != nil {
		return err
	}
	for _, t := range rp.RecentTags {
		if _, err := fmt.Fprintf(w, "  %s (%s) %s\n", t.Name, t.Date, t.Message); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVReport flattens the aggregate report into section/metric/value rows.
// Tabular aspects have their own CSV commands; this covers the scalar facts.
func writeCSVReport(w *csv.Writer, report *schema.AnalysisReport, fmtFloat func(float64) string) error {
	header := []string{"section", "metric", "value"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	info := report.RepositoryInfo
	hist := report.CommitHistory
	ba := report.BranchAnalysis
	p := report.DevelopmentPatterns
	rp := report.ReleasePatterns

	rows := [][]string{
		{"repository", "path", info.Path},
		{"repository", "remote_url", info.RemoteURL},
		{"repository", "default_branch", info.DefaultBranch},
		{"repository", "total_commits", strconv.Itoa(info.TotalCommits)},
		{"repository", "repository_age_days", strconv.Itoa(info.RepositoryAgeDays)},
		{"commit_history", "recent_commits", strconv.Itoa(len(hist.RecentCommits))},
		{"commit_history", "average_commits_per_week", fmtFloat(hist.AverageCommitsPerWeek)},
		{"branches", "total_branches", strconv.Itoa(ba.TotalBranches)},
		{"branches", "active_branches", strconv.Itoa(len(ba.ActiveBranches))},
		{"branches", "stale_branches", strconv.Itoa(len(ba.StaleBranches))},
		{"branches", "merged_branches_count", strconv.Itoa(ba.MergedBranchesCount)},
		{"contributors", "total_contributors", strconv.Itoa(len(report.ContributorInsights))},
		{"code_churn", "total_files_ever_changed", strconv.Itoa(report.CodeChurn.TotalFilesEverChanged)},
		{"code_churn", "hotspots", strconv.Itoa(len(report.CodeChurn.Hotspots))},
		{"patterns", "commit_frequency", string(p.CommitFrequency)},
		{"patterns", "average_commit_size", fmtFloat(p.AverageCommitSize)},
		{"patterns", "median_commit_size", strconv.Itoa(p.MedianCommitSize)},
		{"decisions", "total_decisions", strconv.Itoa(len(report.ArchitecturalDecisions))},
		{"releases", "total_tags", strconv.Itoa(rp.TotalTags)},
		{"releases", "release_frequency", string(rp.ReleaseFrequency)},
		{"releases", "average_days_between_releases", fmtFloat(rp.AverageDaysBetweenReleases)},
	}

	for _, rec := range rows {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}

// formatHours formats hour-of-day values as readable clock labels.
func formatHours(hours []int) string {
	if len(hours) == 0 {
		return "n/a"
	}
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = fmt.Sprintf("%02d:00", h)
	}
	return strings.Join(parts, ", ")
}

package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/internal/parquet"
	"github.com/huangsam/gitpulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintContributorResults outputs contributor insights, dispatching based on the output format configured.
func PrintContributorResults(insights []schema.ContributorInsight, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, insights)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVContributors(csvWriter, insights, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		rows := parquet.ConvertContributors(insights)
		if err := parquet.WriteContributorsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		return nil
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeContributorTable(insights, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeContributorTable generates and writes the human-readable contributor table.
func writeContributorTable(insights []schema.ContributorInsight, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Name", "Email", "Commits", "Added", "Deleted", "Files", "Impact"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, c := range insights {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			c.Name,
			c.Email,
			strconv.Itoa(c.TotalCommits),
			strconv.Itoa(c.LinesAdded),
			strconv.Itoa(c.LinesDeleted),
			strconv.Itoa(c.FilesModified),
			fmtFloat(c.ImpactScore),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalCommits := 0
	for _, c := range insights {
		totalCommits += c.TotalCommits
	}
	if _, err := fmt.Fprintf(writer, "Showing %d contributors (total commits: %d)\n", len(insights), totalCommits); err != nil {
		return err
	}
	// Embedded report sections pass a zero duration and skip the footer
	if duration > 0 {
		if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVContributors writes contributor insights in CSV format.
func writeCSVContributors(w *csv.Writer, insights []schema.ContributorInsight, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"name",
		"email",
		"total_commits",
		"first_commit",
		"last_commit",
		"lines_added",
		"lines_deleted",
		"files_modified",
		"impact_score",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, c := range insights {
		rec := []string{
			strconv.Itoa(i + 1),
			c.Name,
			c.Email,
			strconv.Itoa(c.TotalCommits),
			c.FirstCommitDate,
			c.LastCommitDate,
			strconv.Itoa(c.LinesAdded),
			strconv.Itoa(c.LinesDeleted),
			strconv.Itoa(c.FilesModified),
			fmtFloat(c.ImpactScore),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}

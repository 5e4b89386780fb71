package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"

	"github.com/olekukonko/tablewriter"
)

// PrintReleaseResults outputs release patterns, dispatching based on the output format configured.
func PrintReleaseResults(releases schema.ReleasePatterns, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, releases)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVReleases(csvWriter, releases)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errors.New("parquet output is not supported for release patterns")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReleaseTable(releases, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeReleaseTable generates and writes the human-readable release table.
func writeReleaseTable(releases schema.ReleasePatterns, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Tag", "Date", "Commit", "Message"})

	var data [][]string
	for _, t := range releases.RecentTags {
		data = append(data, []string{
			t.Name,
			t.Date,
			shortHash(t.CommitHash),
			t.Message,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Total tags: %d\n", releases.TotalTags); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Release frequency: %s (avg %s days between releases)\n",
		releases.ReleaseFrequency, fmtFloat(releases.AverageDaysBetweenReleases)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVReleases writes release tag details in CSV format.
func writeCSVReleases(w *csv.Writer, releases schema.ReleasePatterns) error {
	header := []string{"rank", "tag", "date", "commit_hash", "message"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, t := range releases.RecentTags {
		rec := []string{
			strconv.Itoa(i + 1),
			t.Name,
			t.Date,
			t.CommitHash,
			t.Message,
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}

// shortHash abbreviates a commit hash for table display.
func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

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

// PrintChurnResults outputs code churn results, dispatching based on the output format configured.
func PrintChurnResults(churn schema.CodeChurn, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, churn)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVChurn(csvWriter, churn)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return errors.New("--output-file is required for parquet output")
		}
		rows := parquet.ConvertFileChurn(churn.MostChangedFiles)
		if err := parquet.WriteFileChurnParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		return nil
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChurnTable(churn, cfg, duration, w)
		}, "Wrote table")
	}
}

// writeChurnTable generates and writes the human-readable churn table.
func writeChurnTable(churn schema.CodeChurn, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Path", "Changes", "Insertions", "Deletions"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, f := range churn.MostChangedFiles {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(f.Path, getMaxTablePathWidth(cfg)),
			strconv.Itoa(f.TimesChanged),
			strconv.Itoa(f.TotalInsertions),
			strconv.Itoa(f.TotalDeletions),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Files changed in window: %d\n", churn.TotalFilesEverChanged); err != nil {
		return err
	}
	if len(churn.Hotspots) > 0 {
		if _, err := fmt.Fprintf(writer, "Hotspots: %s\n", strings.Join(churn.Hotspots, ", ")); err != nil {
			return err
		}
	}
	// Embedded report sections pass a zero duration and skip the footer
	if duration > 0 {
		if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVChurn writes code churn results in CSV format.
func writeCSVChurn(w *csv.Writer, churn schema.CodeChurn) error {
	header := []string{"rank", "path", "times_changed", "total_insertions", "total_deletions", "is_hotspot"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	hotspots := make(map[string]struct{}, len(churn.Hotspots))
	for _, h := range churn.Hotspots {
		hotspots[h] = struct{}{}
	}

	for i, f := range churn.MostChangedFiles {
		_, isHotspot := hotspots[f.Path]
		rec := []string{
			strconv.Itoa(i + 1),
			f.Path,
			strconv.Itoa(f.TimesChanged),
			strconv.Itoa(f.TotalInsertions),
			strconv.Itoa(f.TotalDeletions),
			strconv.FormatBool(isHotspot),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}

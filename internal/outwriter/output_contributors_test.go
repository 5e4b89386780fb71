package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleContributors() []schema.ContributorInsight {
	return []schema.ContributorInsight{
		{
			Name:            "Alice",
			Email:           "alice@example.com",
			TotalCommits:    12,
			FirstCommitDate: "2024-01-02 09:00:00 +0000",
			LastCommitDate:  "2024-03-10 17:30:00 +0000",
			LinesAdded:      340,
			LinesDeleted:    120,
			FilesModified:   28,
			ImpactScore:     168.0,
		},
		{
			Name:            "Bob",
			Email:           "bob@example.com",
			TotalCommits:    3,
			FirstCommitDate: "2024-02-01 08:00:00 +0000",
			LastCommitDate:  "2024-02-20 10:00:00 +0000",
			LinesAdded:      40,
			LinesDeleted:    10,
			FilesModified:   5,
			ImpactScore:     36.5,
		},
	}
}

func TestWriteCSVContributors(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVContributors(w, sampleContributors(), fmtFloat)
	require.NoError(t, err)
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "impact_score")
	assert.Contains(t, lines[0], "first_commit")
	assert.Contains(t, lines[1], "alice@example.com")
	assert.Contains(t, lines[1], "168.0")
	assert.Contains(t, lines[2], "bob@example.com")
	assert.Contains(t, lines[2], "36.5")
}

func TestWriteContributorTable(t *testing.T) {
	cfg := &contract.Config{Precision: 1, Workers: 2, CacheBackend: schema.SQLiteBackend}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeContributorTable(sampleContributors(), cfg, fmtFloat, time.Second, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "Showing 2 contributors (total commits: 15)")
	assert.Contains(t, out, "Analysis completed")
}

func TestWriteContributorTable_ZeroDurationSkipsFooter(t *testing.T) {
	cfg := &contract.Config{Precision: 1}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeContributorTable(sampleContributors(), cfg, fmtFloat, 0, &buf)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "Analysis completed")
}

func TestPrintContributorResults_JSONToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "contributors.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: outPath, Precision: 1}

	err := PrintContributorResults(sampleContributors(), cfg, time.Second)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var decoded []schema.ContributorInsight
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sampleContributors(), decoded)
}

func TestPrintContributorResults_ParquetRequiresOutputFile(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, Precision: 1}

	err := PrintContributorResults(sampleContributors(), cfg, time.Second)
	assert.Error(t, err)
}

func TestPrintContributorResults_ParquetToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "contributors.parquet")
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: outPath, Precision: 1}

	err := PrintContributorResults(sampleContributors(), cfg, time.Second)
	require.NoError(t, err)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

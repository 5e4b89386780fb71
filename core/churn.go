package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// getCodeChurn accumulates per-path change counts from one window-scoped
// numstat-only log, ranks descending by times changed (path ascending on
// ties, so ranking is deterministic), keeps the top 20 and flags hotspots.
func getCodeChurn(ctx context.Context, client contract.GitClient, repoPath string, days int, now time.Time) (schema.CodeChurn, error) {
	since := now.AddDate(0, 0, -days)
	out, err := client.GetChurnLog(ctx, repoPath, since)
	if err != nil {
		return schema.CodeChurn{}, fmt.Errorf("cannot read churn log: %w", err)
	}

	type churnAgg struct {
		times, insertions, deletions int
	}
	byPath := make(map[string]*churnAgg)
	for _, line := range strings.Split(string(out), "\n") {
		ins, del, path, ok := contract.ParseStatLine(line)
		if !ok {
			continue
		}
		agg := byPath[path]
		if agg == nil {
			agg = &churnAgg{}
			byPath[path] = agg
		}
		agg.times++
		agg.insertions += ins
		agg.deletions += del
	}

	ranked := make([]schema.FileChurn, 0, len(byPath))
	for path, agg := range byPath {
		ranked = append(ranked, schema.FileChurn{
			Path:            path,
			TimesChanged:    agg.times,
			TotalInsertions: agg.insertions,
			TotalDeletions:  agg.deletions,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TimesChanged != ranked[j].TimesChanged {
			return ranked[i].TimesChanged > ranked[j].TimesChanged
		}
		return ranked[i].Path < ranked[j].Path
	})

	churn := schema.CodeChurn{TotalFilesEverChanged: len(ranked)}
	if len(ranked) > 20 {
		ranked = ranked[:20]
	}
	churn.MostChangedFiles = ranked
	for _, f := range ranked {
		if f.TimesChanged > schema.HotspotThreshold {
			churn.Hotspots = append(churn.Hotspots, f.Path)
		}
	}
	return churn, nil
}

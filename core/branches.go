package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// getBranchAnalysis lists branches and splits them by the 30-day activity
// threshold. Merge state comes from a separate ancestry listing; that query
// is advisory, so its failure degrades to zero merged branches instead of
// failing the aspect.
func getBranchAnalysis(ctx context.Context, client contract.GitClient, repoPath string, now time.Time) (schema.BranchAnalysis, error) {
	out, err := client.GetBranchList(ctx, repoPath)
	if err != nil {
		return schema.BranchAnalysis{}, fmt.Errorf("cannot list branches: %w", err)
	}
	branches := contract.ParseBranchList(out)

	merged := make(map[string]struct{})
	if mergedOut, err := client.GetMergedBranches(ctx, repoPath); err == nil {
		for _, name := range contract.SplitNonEmptyLines(mergedOut) {
			merged[name] = struct{}{}
		}
	}

	analysis := schema.BranchAnalysis{TotalBranches: len(branches)}
	for _, b := range branches {
		if _, ok := merged[b.Name]; ok {
			b.IsMerged = true
			analysis.MergedBranchesCount++
		}
		if isBranchActive(b.LastCommitDate, now) {
			analysis.ActiveBranches = append(analysis.ActiveBranches, b)
		} else {
			analysis.StaleBranches = append(analysis.StaleBranches, b)
		}
	}
	return analysis, nil
}

// isBranchActive reports whether the branch was committed to within the
// activity threshold. An unparseable timestamp counts as stale.
func isBranchActive(lastCommitDate string, now time.Time) bool {
	t, _, err := contract.ParseGitTime(lastCommitDate)
	if err != nil {
		return false
	}
	return now.Sub(t).Hours()/24 <= schema.BranchActivityDays
}

package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// findArchitecturalDecisions issues one case-insensitive subject-grep query
// per keyword and tags every match with that keyword. A commit whose subject
// matches several keywords yields one record per keyword; the duplication is
// the documented contract.
func findArchitecturalDecisions(ctx context.Context, client contract.GitClient, repoPath string, days int, now time.Time) ([]schema.ArchitecturalDecision, error) {
	since := now.AddDate(0, 0, -days)
	var decisions []schema.ArchitecturalDecision
	for _, keyword := range schema.DecisionKeywords {
		out, err := client.GetDecisionLog(ctx, repoPath, keyword, since)
		if err != nil {
			return nil, fmt.Errorf("decision scan for %q failed: %w", keyword, err)
		}
		decisions = append(decisions, contract.ParseDecisionLog(out, keyword)...)
	}
	return decisions, nil
}

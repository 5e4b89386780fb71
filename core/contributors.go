package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// getContributorInsights aggregates per-contributor activity in two passes.
// Pass 1 counts commits per email from a lightweight name+email log; email is
// the identity key, so differing display names with one email collapse into
// one contributor. Pass 2 fans the per-contributor detail queries across the
// worker pool; a contributor whose detail query fails is dropped from the
// result set rather than failing the aspect.
func getContributorInsights(ctx context.Context, client contract.GitClient, repoPath string, days, workers int, now time.Time) ([]schema.ContributorInsight, error) {
	since := now.AddDate(0, 0, -days)
	out, err := client.GetAuthorSummaryLog(ctx, repoPath, since)
	if err != nil {
		return nil, fmt.Errorf("cannot read author log: %w", err)
	}

	counts := make(map[string]int)
	names := make(map[string]string)
	var order []string
	for _, line := range contract.SplitNonEmptyLines(out) {
		parts := strings.SplitN(line, "|", 2)
		if len(parts) < 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		email := strings.TrimSpace(parts[1])
		if email == "" {
			continue
		}
		if _, seen := counts[email]; !seen {
			order = append(order, email)
			names[email] = name
		}
		counts[email]++
	}

	if len(order) == 0 {
		return []schema.ContributorInsight{}, nil
	}

	emailCh := make(chan string, len(order))
	resultCh := make(chan schema.ContributorInsight, len(order))
	var wg sync.WaitGroup

	if workers <= 0 {
		workers = 1
	}
	for range workers {
		wg.Go(func() {
			for email := range emailCh {
				insight, ok := analyzeContributor(ctx, client, repoPath, names[email], email, counts[email], since)
				if !ok {
					continue // detail query failed; drop silently
				}
				resultCh <- insight
			}
		})
	}
	for _, email := range order {
		emailCh <- email
	}
	close(emailCh)
	wg.Wait()
	close(resultCh)

	insights := make([]schema.ContributorInsight, 0, len(order))
	for insight := range resultCh {
		insights = append(insights, insight)
	}

	// The pool drains in arbitrary order; rank by impact for stable output.
	sort.SliceStable(insights, func(i, j int) bool {
		if insights[i].ImpactScore != insights[j].ImpactScore {
			return insights[i].ImpactScore > insights[j].ImpactScore
		}
		return insights[i].Email < insights[j].Email
	})
	return insights, nil
}

// analyzeContributor runs the per-contributor detail query and accumulates
// line and file totals plus the first/last activity timestamps.
func analyzeContributor(ctx context.Context, client contract.GitClient, repoPath, name, email string, commits int, since time.Time) (schema.ContributorInsight, bool) {
	out, err := client.GetAuthorActivityLog(ctx, repoPath, email, since)
	if err != nil {
		return schema.ContributorInsight{}, false
	}

	added, deleted, files, firstDate, lastDate := contract.ParseAuthorActivity(out)

	return schema.ContributorInsight{
		Name:            name,
		Email:           email,
		TotalCommits:    commits,
		FirstCommitDate: firstDate,
		LastCommitDate:  lastDate,
		LinesAdded:      added,
		LinesDeleted:    deleted,
		FilesModified:   files,
		ImpactScore:     schema.ImpactScore(commits, added, files),
	}, true
}

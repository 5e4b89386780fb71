package core

import (
	"context"
	"fmt"
	"math"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// analyzeReleasePatterns lists all tags newest first, fetches detail for the
// most recent ones (one query per tag, capped at RecentTagLimit), classifies
// frequency from the total tag count, and computes the mean absolute day gap
// between consecutive fetched tags. A tag whose detail query or record fails
// is skipped; fewer than two detail records mean a gap of zero.
func analyzeReleasePatterns(ctx context.Context, client contract.GitClient, repoPath string) (schema.ReleasePatterns, error) {
	out, err := client.GetTagList(ctx, repoPath)
	if err != nil {
		return schema.ReleasePatterns{}, fmt.Errorf("cannot list tags: %w", err)
	}
	names := contract.SplitNonEmptyLines(out)

	patterns := schema.ReleasePatterns{
		TotalTags:        len(names),
		ReleaseFrequency: schema.ReleaseFrequencyFor(len(names)),
	}

	detailCount := min(len(names), schema.RecentTagLimit)
	for _, name := range names[:detailCount] {
		infoOut, err := client.GetTagInfo(ctx, repoPath, name)
		if err != nil {
			continue
		}
		if tag, ok := contract.ParseTagInfo(infoOut, name); ok {
			patterns.RecentTags = append(patterns.RecentTags, tag)
		}
	}

	patterns.AverageDaysBetweenReleases = averageReleaseGap(patterns.RecentTags)
	return patterns, nil
}

// averageReleaseGap computes the mean absolute whole-day gap between
// consecutive tags, counting only pairs whose timestamps both parse.
func averageReleaseGap(tags []schema.TagInfo) float64 {
	var totalDays int64
	var pairs int
	for i := 0; i+1 < len(tags); i++ {
		newer, _, errNewer := contract.ParseGitTime(tags[i].Date)
		older, _, errOlder := contract.ParseGitTime(tags[i+1].Date)
		if errNewer != nil || errOlder != nil {
			continue
		}
		totalDays += int64(math.Abs(newer.Sub(older).Hours()) / 24)
		pairs++
	}
	if pairs == 0 {
		return 0
	}
	return float64(totalDays) / float64(pairs)
}

package core

import (
	"sort"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// analyzeDevelopmentPatterns derives cadence, peak hours/days and commit-size
// statistics from the already-parsed recent commits of Commit History. It
// issues no queries of its own; the cross-aspect dependency stays visible as
// an explicit argument.
//
// Equally-frequent histogram buckets tie-break deterministically: lower hour
// number first, earlier weekday (Sunday..Saturday) first.
func analyzeDevelopmentPatterns(hist schema.CommitHistory) schema.DevelopmentPatterns {
	var hourCounts [24]int
	var dayCounts [7]int
	var totalSize int
	sizes := make([]int, 0, len(hist.RecentCommits))

	for _, c := range hist.RecentCommits {
		if t, _, err := contract.ParseGitTime(c.Date); err == nil {
			hourCounts[t.Hour()]++
			dayCounts[int(t.Weekday())]++
		}
		size := c.Insertions + c.Deletions
		totalSize += size
		sizes = append(sizes, size)
	}

	patterns := schema.DevelopmentPatterns{
		CommitFrequency:      schema.CommitFrequencyFor(hist.AverageCommitsPerWeek),
		PeakDevelopmentHours: topBuckets(hourCounts[:], 5),
		MedianCommitSize:     medianSize(sizes),
	}

	for _, day := range topBuckets(dayCounts[:], 3) {
		patterns.PeakDevelopmentDays = append(patterns.PeakDevelopmentDays, time.Weekday(day).String())
	}

	if len(hist.RecentCommits) > 0 {
		patterns.AverageCommitSize = float64(totalSize) / float64(len(hist.RecentCommits))
	}
	return patterns
}

// topBuckets returns the indices of the n most frequent non-empty buckets,
// ordered by count descending then index ascending.
func topBuckets(counts []int, n int) []int {
	var present []int
	for i, c := range counts {
		if c > 0 {
			present = append(present, i)
		}
	}
	sort.SliceStable(present, func(i, j int) bool {
		if counts[present[i]] != counts[present[j]] {
			return counts[present[i]] > counts[present[j]]
		}
		return present[i] < present[j]
	})
	if len(present) > n {
		present = present[:n]
	}
	return present
}

// medianSize picks the upper-middle element of the sorted sizes, 0 when empty.
func medianSize(sizes []int) int {
	if len(sizes) == 0 {
		return 0
	}
	sorted := make([]int, len(sizes))
	copy(sorted, sizes)
	sort.Ints(sorted)
	return sorted[len(sorted)/2]
}

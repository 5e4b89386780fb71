package core

import (
	"testing"

	"github.com/huangsam/gitpulse/schema"
	"github.com/stretchr/testify/assert"
)

func commitAt(date string, size int) schema.CommitInfo {
	return schema.CommitInfo{Date: date, Insertions: size}
}

func TestAnalyzeDevelopmentPatterns_PeaksAndSizes(t *testing.T) {
	hist := schema.CommitHistory{
		// 2024-03-11 is a Monday, 2024-03-12 a Tuesday.
		RecentCommits: []schema.CommitInfo{
			commitAt("2024-03-11 09:30:00 +0000", 10),
			commitAt("2024-03-11 09:45:00 +0000", 20),
			commitAt("2024-03-12 14:00:00 +0000", 30),
		},
		AverageCommitsPerWeek: 12,
	}

	patterns := analyzeDevelopmentPatterns(hist)

	assert.Equal(t, schema.ActiveFrequency, patterns.CommitFrequency)
	assert.Equal(t, []int{9, 14}, patterns.PeakDevelopmentHours)
	assert.Equal(t, []string{"Monday", "Tuesday"}, patterns.PeakDevelopmentDays)
	assert.InDelta(t, 20.0, patterns.AverageCommitSize, 0.001)
	assert.Equal(t, 20, patterns.MedianCommitSize)
}

func TestAnalyzeDevelopmentPatterns_TieBreaks(t *testing.T) {
	hist := schema.CommitHistory{
		RecentCommits: []schema.CommitInfo{
			commitAt("2024-03-11 22:00:00 +0000", 1),
			commitAt("2024-03-11 03:00:00 +0000", 1),
		},
	}

	patterns := analyzeDevelopmentPatterns(hist)

	assert.Equal(t, []int{3, 22}, patterns.PeakDevelopmentHours, "equal counts order by hour")
}

func TestAnalyzeDevelopmentPatterns_UnparseableDatesSkipHistograms(t *testing.T) {
	hist := schema.CommitHistory{
		RecentCommits: []schema.CommitInfo{
			{Date: "garbage", Insertions: 40},
			commitAt("2024-03-11 09:00:00 +0000", 10),
		},
	}

	patterns := analyzeDevelopmentPatterns(hist)

	assert.Equal(t, []int{9}, patterns.PeakDevelopmentHours)
	assert.InDelta(t, 25.0, patterns.AverageCommitSize, 0.001, "sizes still count even when the date does not parse")
}

func TestAnalyzeDevelopmentPatterns_Empty(t *testing.T) {
	patterns := analyzeDevelopmentPatterns(schema.CommitHistory{})

	assert.Equal(t, schema.LowFrequency, patterns.CommitFrequency)
	assert.Empty(t, patterns.PeakDevelopmentHours)
	assert.Empty(t, patterns.PeakDevelopmentDays)
	assert.Zero(t, patterns.AverageCommitSize)
	assert.Zero(t, patterns.MedianCommitSize)
}

func TestTopBuckets(t *testing.T) {
	counts := []int{0, 5, 5, 0, 9, 1}

	assert.Equal(t, []int{4, 1, 2}, topBuckets(counts, 3))
	assert.Equal(t, []int{4, 1}, topBuckets(counts, 2))
	assert.Empty(t, topBuckets([]int{0, 0}, 3), "empty buckets never appear")
}

func TestMedianSize(t *testing.T) {
	assert.Equal(t, 0, medianSize(nil))
	assert.Equal(t, 7, medianSize([]int{7}))
	assert.Equal(t, 5, medianSize([]int{1, 5, 9}))
	assert.Equal(t, 9, medianSize([]int{1, 5, 9, 20}), "even lengths pick the upper middle")
}

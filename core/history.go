package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// getCommitHistory runs the window-scoped commit log with per-commit numstat,
// buckets counts by calendar month and date, and keeps the most recent
// commits verbatim for downstream pattern detection.
func getCommitHistory(ctx context.Context, client contract.GitClient, repoPath string, days int, now time.Time) (schema.CommitHistory, error) {
	since := now.AddDate(0, 0, -days)
	out, err := client.GetCommitLog(ctx, repoPath, since)
	if err != nil {
		return schema.CommitHistory{}, fmt.Errorf("cannot read commit log: %w", err)
	}

	commits := contract.ParseCommitLog(out)

	byMonth := make(map[string]int)
	byDay := make(map[string]int)
	for _, c := range commits {
		if day, ok := dateKey(c.Date); ok {
			byDay[day]++
			byMonth[day[:7]]++
		}
	}

	// The divisor floor keeps very short windows from inflating the average.
	weeks := float64(days) / 7.0
	if weeks < 1 {
		weeks = 1
	}
	avgPerWeek := float64(len(commits)) / weeks

	recent := commits
	if len(recent) > schema.RecentCommitLimit {
		recent = recent[:schema.RecentCommitLimit]
	}

	return schema.CommitHistory{
		RecentCommits:         recent,
		CommitsByMonth:        byMonth,
		CommitsByDay:          byDay,
		AverageCommitsPerWeek: avgPerWeek,
	}, nil
}

// dateKey extracts the YYYY-MM-DD portion of a raw git timestamp.
func dateKey(date string) (string, bool) {
	fields := strings.Fields(date)
	if len(fields) == 0 || len(fields[0]) < 10 {
		return "", false
	}
	return fields[0][:10], true
}

package schema

import "strings"

// Impact score weights. A deliberately simple, tunable weighting used to rank
// contributor significance; not a calibrated metric.
const (
	impactCommitWeight = 10.0
	impactLineWeight   = 0.1
	impactFileWeight   = 0.5
)

// ImpactScore computes the heuristic contributor weighting from commit count,
// lines added and files touched. The result is never negative.
func ImpactScore(commits, linesAdded, filesModified int) float64 {
	score := float64(commits)*impactCommitWeight +
		float64(linesAdded)*impactLineWeight +
		float64(filesModified)*impactFileWeight
	return ClampScore(score)
}

// ClampScore floors a score at zero.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	return score
}

// ClampPercent confines a percentage to [0, 100].
func ClampPercent(pct float64) float64 {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

// CommitFrequencyFor classifies an average-commits-per-week figure.
func CommitFrequencyFor(avgPerWeek float64) CommitFrequency {
	switch {
	case avgPerWeek > 20:
		return VeryActiveFrequency
	case avgPerWeek > 10:
		return ActiveFrequency
	case avgPerWeek > 5:
		return ModerateFrequency
	default:
		return LowFrequency
	}
}

// ReleaseFrequencyFor classifies a total tag count.
func ReleaseFrequencyFor(totalTags int) ReleaseFrequency {
	switch {
	case totalTags > 50:
		return WeeklyRelease
	case totalTags > 20:
		return MonthlyRelease
	case totalTags > 5:
		return QuarterlyRelease
	default:
		return IrregularRelease
	}
}

// DecisionTierFor grades a commit subject. "breaking" or "major" outweigh
// "minor" or "fix"; everything else lands in the middle.
func DecisionTierFor(message string) DecisionTier {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "breaking") || strings.Contains(lower, "major"):
		return HighImpact
	case strings.Contains(lower, "minor") || strings.Contains(lower, "fix"):
		return LowImpact
	default:
		return MediumImpact
	}
}

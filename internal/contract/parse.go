package contract

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/gitpulse/schema"
)

// GitTimeFormat matches the date+time portion of git's %ai output. The
// trailing timezone offset is captured as a string and never parsed.
const GitTimeFormat = "2006-01-02 15:04:05"

// The parsers in this file are pure and total: malformed records are dropped
// or defaulted, never raised, and empty input yields an empty collection.
// Scalar parses (ParseGitTime, ParseCount) are the strict counterpart and
// fail hard; callers decide which contract an aspect needs.

// ParseCommitLog turns pipe-delimited commit headers interleaved with numstat
// lines into CommitInfo records. A line is a header when it contains a pipe
// and does not start with a digit. Stat lines preceding any header are
// discarded; binary markers ("-" insertion/deletion fields) are skipped
// without incrementing files changed.
func ParseCommitLog(out []byte) []schema.CommitInfo {
	var commits []schema.CommitInfo
	var current *schema.CommitInfo

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if isCommitHeader(line) {
			if current != nil {
				commits = append(commits, *current)
			}
			current = parseCommitHeader(line)
			continue
		}
		if current == nil {
			continue
		}
		if ins, del, ok := parseStatCounts(line); ok {
			current.Insertions += ins
			current.Deletions += del
			current.FilesChanged++
		}
	}
	if current != nil {
		commits = append(commits, *current)
	}
	return commits
}

// isCommitHeader reports whether a log line frames a new commit record.
func isCommitHeader(line string) bool {
	if !strings.Contains(line, "|") {
		return false
	}
	return line[0] < '0' || line[0] > '9'
}

// parseCommitHeader splits hash|author|email|date|subject. The subject may
// itself contain pipes and is rejoined rather than truncated. Headers with
// fewer than five fields are dropped silently.
func parseCommitHeader(line string) *schema.CommitInfo {
	parts := strings.Split(line, "|")
	if len(parts) < 5 {
		return nil
	}
	return &schema.CommitInfo{
		Hash:    parts[0],
		Author:  parts[1],
		Email:   parts[2],
		Date:    parts[3],
		Message: strings.Join(parts[4:], "|"),
	}
}

// parseStatCounts reads one numstat line (insertions deletions path).
// Non-numeric count fields mark binary files and report false.
func parseStatCounts(line string) (int, int, bool) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return 0, 0, false
	}
	ins, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	del, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return ins, del, true
}

// ParseStatLine reads one bare numstat line into insertions, deletions and
// path. Binary markers and short lines report false.
func ParseStatLine(line string) (int, int, string, bool) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return 0, 0, "", false
	}
	ins, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, "", false
	}
	del, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, "", false
	}
	return ins, del, parts[2], true
}

// ParseAuthorActivity consumes a per-author activity log of %ai timestamp
// lines interleaved with numstat lines. The log arrives newest first, so the
// first timestamp seen is the latest activity and the final one the first.
func ParseAuthorActivity(out []byte) (linesAdded, linesDeleted, filesModified int, firstDate, lastDate string) {
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, _, err := ParseGitTime(line); err == nil {
			if lastDate == "" {
				lastDate = line
			}
			firstDate = line
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		ins, insErr := strconv.Atoi(parts[0])
		del, delErr := strconv.Atoi(parts[1])
		if insErr != nil || delErr != nil {
			continue
		}
		linesAdded += ins
		linesDeleted += del
		filesModified++
	}
	return linesAdded, linesDeleted, filesModified, firstDate, lastDate
}

// ParseBranchList turns name|iso-date|ahead-behind lines into BranchInfo
// records. The ahead/behind pair splits on the first whitespace; unparseable
// counts default to zero rather than failing the line.
func ParseBranchList(out []byte) []schema.BranchInfo {
	var branches []schema.BranchInfo
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}
		ahead, behind := parseAheadBehind(parts[2])
		branches = append(branches, schema.BranchInfo{
			Name:           strings.TrimSpace(parts[0]),
			LastCommitDate: strings.TrimSpace(parts[1]),
			CommitsAhead:   ahead,
			CommitsBehind:  behind,
		})
	}
	return branches
}

func parseAheadBehind(s string) (int, int) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, 0
	}
	ahead, _ := strconv.Atoi(fields[0])
	behind, _ := strconv.Atoi(fields[1])
	return ahead, behind
}

// ParseDecisionLog turns hash|iso-date|author|subject lines into decision
// records tagged with the keyword that matched them. Records with fewer than
// four fields are dropped.
func ParseDecisionLog(out []byte, keyword string) []schema.ArchitecturalDecision {
	var decisions []schema.ArchitecturalDecision
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 4 {
			continue
		}
		message := strings.Join(parts[3:], "|")
		decisions = append(decisions, schema.ArchitecturalDecision{
			CommitHash:   parts[0],
			Date:         parts[1],
			Author:       parts[2],
			Message:      message,
			DecisionType: keyword,
			Impact:       schema.DecisionTierFor(message),
		})
	}
	return decisions
}

// ParseTagInfo reads the single-line hash|iso-date|subject record produced by
// a per-tag detail query. The second return is false when no usable record
// was present.
func ParseTagInfo(out []byte, name string) (schema.TagInfo, bool) {
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			return schema.TagInfo{}, false
		}
		return schema.TagInfo{
			Name:       name,
			CommitHash: parts[0],
			Date:       parts[1],
			Message:    strings.Join(parts[2:], "|"),
		}, true
	}
	return schema.TagInfo{}, false
}

// ParseGitTime parses the date+time portion of a git %ai timestamp strictly.
// The timezone offset, when present, is returned verbatim as the second
// value. This is the hard-failure counterpart to the lenient bulk parsers.
func ParseGitTime(s string) (time.Time, string, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return time.Time{}, "", fmt.Errorf("timestamp %q does not match %q", s, GitTimeFormat)
	}
	t, err := time.Parse(GitTimeFormat, fields[0]+" "+fields[1])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	offset := ""
	if len(fields) > 2 {
		offset = fields[2]
	}
	return t, offset, nil
}

// ParseCount parses a single integer scalar strictly.
func ParseCount(out []byte) (int, error) {
	s := strings.TrimSpace(string(out))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("expected integer count, got %q: %w", s, err)
	}
	return n, nil
}

// SplitNonEmptyLines trims the input and returns its non-empty lines.
func SplitNonEmptyLines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/huangsam/gitpulse/schema"
)

// Impact label colors for console output.
var (
	HighColor   = color.New(color.FgRed, color.Bold) // structural or breaking change
	MediumColor = color.New(color.FgYellow)          // standard caution
	LowColor    = color.New(color.FgCyan)            // informational
)

// GetPlainTierLabel returns the plain text form of a decision tier. This is
// the logic shared by CSV, JSON, and table printing.
func GetPlainTierLabel(tier schema.DecisionTier) string {
	return string(tier)
}

// GetColorTierLabel returns a colored tier label for console tables.
func GetColorTierLabel(tier schema.DecisionTier) string {
	text := GetPlainTierLabel(tier)
	switch tier {
	case schema.HighImpact:
		return HighColor.Sprint(text)
	case schema.MediumImpact:
		return MediumColor.Sprint(text)
	default:
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath shortens a path for table display, keeping the trailing
// segment which is usually the most distinctive.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for report cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitpulse_cache.db"
	}
	return filepath.Join(homeDir, ".gitpulse_cache.db")
}

// GetRunDBFilePath returns the path to the SQLite DB file for run tracking.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitpulse_runs.db"
	}
	return filepath.Join(homeDir, ".gitpulse_runs.db")
}

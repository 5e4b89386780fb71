package contract

import (
	"fmt"
	"os"
	"path/filepath"
)

// CommandError reports a git invocation that could not start or exited
// non-zero. Stderr carries the tool's own message when one was produced.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %v failed: %s", e.Args, e.Stderr)
	}
	return fmt.Sprintf("git %v failed: %v", e.Args, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ValidateRepoPath checks that the path exists and carries git control
// metadata. It runs before any subprocess is spawned; a failure here aborts
// the whole analysis.
func ValidateRepoPath(repoPath string) error {
	info, err := os.Stat(repoPath)
	if err != nil {
		return fmt.Errorf("repository path %q does not exist: %w", repoPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("repository path %q is not a directory", repoPath)
	}
	if _, err := os.Stat(filepath.Join(repoPath, ".git")); err != nil {
		return fmt.Errorf("%q is not a Git repository (no .git directory). Verify the path or run 'git init'", repoPath)
	}
	return nil
}

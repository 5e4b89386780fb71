package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultCommandTimeout bounds each git invocation. A hung external tool
// fails that one query instead of stalling the whole analysis.
const DefaultCommandTimeout = 30 * time.Second

// SinceDateFormat is the day-granular format used for --since filters.
const SinceDateFormat = "2006-01-02"

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct {
	Timeout time.Duration
}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{Timeout: DefaultCommandTimeout}
}

// Run executes a git command scoped to repoPath and returns its stdout,
// lossily decoded as UTF-8. Non-zero exits surface stderr through
// CommandError; they never panic or truncate prior output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(runCtx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, &CommandError{Args: args, Stderr: strings.TrimSpace(string(exitErr.Stderr)), Err: err}
	} else if err != nil {
		return nil, &CommandError{Args: args, Err: fmt.Errorf("%w. Ensure Git is installed and available on your PATH", err)}
	}
	return sanitizeUTF8(out), nil
}

// sanitizeUTF8 replaces invalid byte sequences instead of failing; git
// output is treated as text but is not guaranteed to be clean UTF-8.
func sanitizeUTF8(out []byte) []byte {
	if utf8.Valid(out) {
		return out
	}
	return []byte(strings.ToValidUTF8(string(out), string(utf8.RuneError)))
}

// GetCurrentBranch implements the GitClient interface.
func (c *LocalGitClient) GetCurrentBranch(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetRemoteURL implements the GitClient interface.
func (c *LocalGitClient) GetRemoteURL(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "config", "--get", "remote.origin.url")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetCommitCount implements the GitClient interface.
func (c *LocalGitClient) GetCommitCount(ctx context.Context, repoPath string) ([]byte, error) {
	return c.Run(ctx, repoPath, "rev-list", "--count", "HEAD")
}

// GetBoundaryCommitDate implements the GitClient interface.
func (c *LocalGitClient) GetBoundaryCommitDate(ctx context.Context, repoPath string, oldest bool) ([]byte, error) {
	if oldest {
		return c.Run(ctx, repoPath, "log", "--reverse", "--format=%ai", "--max-count=1")
	}
	return c.Run(ctx, repoPath, "log", "-1", "--format=%ai")
}

// GetRepoHash implements the GitClient interface.
func (c *LocalGitClient) GetRepoHash(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetCommitLog implements the GitClient interface. Fields stay pipe-delimited
// in this exact order because the parsers are positional.
func (c *LocalGitClient) GetCommitLog(ctx context.Context, repoPath string, since time.Time) ([]byte, error) {
	return c.Run(ctx, repoPath,
		"log",
		"--since="+since.Format(SinceDateFormat),
		"--format=%H|%an|%ae|%ai|%s",
		"--numstat",
	)
}

// GetAuthorSummaryLog implements the GitClient interface.
func (c *LocalGitClient) GetAuthorSummaryLog(ctx context.Context, repoPath string, since time.Time) ([]byte, error) {
	return c.Run(ctx, repoPath,
		"log",
		"--since="+since.Format(SinceDateFormat),
		"--format=%aN|%aE",
	)
}

// GetAuthorActivityLog implements the GitClient interface.
func (c *LocalGitClient) GetAuthorActivityLog(ctx context.Context, repoPath string, email string, since time.Time) ([]byte, error) {
	return c.Run(ctx, repoPath,
		"log",
		"--author="+email,
		"--since="+since.Format(SinceDateFormat),
		"--numstat",
		"--format=%ai",
	)
}

// GetChurnLog implements the GitClient interface.
func (c *LocalGitClient) GetChurnLog(ctx context.Context, repoPath string, since time.Time) ([]byte, error) {
	return c.Run(ctx, repoPath,
		"log",
		"--since="+since.Format(SinceDateFormat),
		"--numstat",
		"--format=",
	)
}

// GetDecisionLog implements the GitClient interface.
func (c *LocalGitClient) GetDecisionLog(ctx context.Context, repoPath string, keyword string, since time.Time) ([]byte, error) {
	return c.Run(ctx, repoPath,
		"log",
		"--since="+since.Format(SinceDateFormat),
		"--grep="+keyword,
		"-i",
		"--format=%H|%ai|%an|%s",
	)
}

// GetBranchList implements the GitClient interface.
func (c *LocalGitClient) GetBranchList(ctx context.Context, repoPath string) ([]byte, error) {
	return c.Run(ctx, repoPath,
		"branch", "-a",
		"--format=%(refname:short)|%(committerdate:iso)|%(ahead-behind:HEAD)",
	)
}

// GetMergedBranches implements the GitClient interface.
func (c *LocalGitClient) GetMergedBranches(ctx context.Context, repoPath string) ([]byte, error) {
	return c.Run(ctx, repoPath,
		"branch", "--merged", "HEAD",
		"--format=%(refname:short)",
	)
}

// GetTagList implements the GitClient interface.
func (c *LocalGitClient) GetTagList(ctx context.Context, repoPath string) ([]byte, error) {
	return c.Run(ctx, repoPath, "tag", "-l", "--sort=-creatordate")
}

// GetTagInfo implements the GitClient interface. This is one subprocess per
// tag; acceptable because callers cap detail queries at RecentTagLimit.
func (c *LocalGitClient) GetTagInfo(ctx context.Context, repoPath string, tag string) ([]byte, error) {
	return c.Run(ctx, repoPath, "show", tag, "--format=%H|%ai|%s", "--no-patch")
}

package contract

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestValidateRepoPath(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		assert.Error(t, ValidateRepoPath(filepath.Join(t.TempDir(), "nope")))
	})

	t.Run("file not directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.txt")
		assert.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		assert.Error(t, ValidateRepoPath(path))
	})

	t.Run("directory without git metadata", func(t *testing.T) {
		assert.Error(t, ValidateRepoPath(t.TempDir()))
	})

	t.Run("directory with git metadata", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
		assert.NoError(t, ValidateRepoPath(dir))
	})
}

func TestCommandError(t *testing.T) {
	withStderr := &CommandError{Args: []string{"log"}, Stderr: "fatal: bad revision"}
	assert.Contains(t, withStderr.Error(), "fatal: bad revision")

	underlying := os.ErrNotExist
	withoutStderr := &CommandError{Args: []string{"log"}, Err: underlying}
	assert.Contains(t, withoutStderr.Error(), "failed")
	assert.ErrorIs(t, withoutStderr, underlying)
}

func TestSanitizeUTF8(t *testing.T) {
	clean := []byte("hello")
	assert.Equal(t, clean, sanitizeUTF8(clean))

	dirty := []byte{'h', 'i', 0xff, '!'}
	got := sanitizeUTF8(dirty)
	assert.True(t, len(got) > 0)
	assert.Contains(t, string(got), "hi")
}

func TestMockGitClient(t *testing.T) {
	client := new(MockGitClient)
	ctx := context.Background()
	since := time.Now().AddDate(0, 0, -30)

	client.On("GetCurrentBranch", ctx, "/repo").Return("main", nil)
	client.On("GetCommitLog", ctx, "/repo", since).Return([]byte("log"), nil)

	branch, err := client.GetCurrentBranch(ctx, "/repo")
	assert.NoError(t, err)
	assert.Equal(t, "main", branch)

	out, err := client.GetCommitLog(ctx, "/repo", since)
	assert.NoError(t, err)
	assert.Equal(t, []byte("log"), out)

	client.AssertExpectations(t)
}

func TestMockGitClient_Errors(t *testing.T) {
	client := new(MockGitClient)
	client.On("GetRepoHash", mock.Anything, mock.Anything).Return("", assert.AnError)

	_, err := client.GetRepoHash(context.Background(), "/repo")
	assert.Error(t, err)
}

// newTestRepo creates a throwaway repository with one commit. Tests that
// need a real git binary skip when it is unavailable.
func newTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary is not available")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=Test Author",
			"GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=Test Author",
			"GIT_COMMITTER_EMAIL=test@example.com",
		)
		out, err := cmd.CombinedOutput()
		assert.NoError(t, err, "git %v: %s", args, out)
	}

	run("init")
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0o644))
	run("add", "README.md")
	run("commit", "-m", "Initial commit")
	return dir
}

func TestLocalGitClient_BasicQueries(t *testing.T) {
	dir := newTestRepo(t)
	client := NewLocalGitClient()
	ctx := context.Background()

	branch, err := client.GetCurrentBranch(ctx, dir)
	assert.NoError(t, err)
	assert.NotEmpty(t, branch)

	hash, err := client.GetRepoHash(ctx, dir)
	assert.NoError(t, err)
	assert.Len(t, hash, 40)

	out, err := client.GetCommitCount(ctx, dir)
	assert.NoError(t, err)
	count, err := ParseCount(out)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLocalGitClient_CommitLogRoundTrip(t *testing.T) {
	dir := newTestRepo(t)
	client := NewLocalGitClient()

	out, err := client.GetCommitLog(context.Background(), dir, time.Now().AddDate(0, 0, -1))
	assert.NoError(t, err)

	commits := ParseCommitLog(out)
	assert.Len(t, commits, 1)
	assert.Equal(t, "Test Author", commits[0].Author)
	assert.Equal(t, "Initial commit", commits[0].Message)
	assert.Equal(t, 1, commits[0].FilesChanged)
}

func TestLocalGitClient_BadRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary is not available")
	}

	client := NewLocalGitClient()
	_, err := client.GetCommitCount(context.Background(), t.TempDir())
	assert.Error(t, err)

	var cmdErr *CommandError
	assert.ErrorAs(t, err, &cmdErr)
}

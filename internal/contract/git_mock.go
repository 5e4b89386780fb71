package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []any{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetCurrentBranch implements the GitClient interface.
func (m *MockGitClient) GetCurrentBranch(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	s, _ := ret.Get(0).(string)
	return s, ret.Error(1)
}

// GetRemoteURL implements the GitClient interface.
func (m *MockGitClient) GetRemoteURL(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	s, _ := ret.Get(0).(string)
	return s, ret.Error(1)
}

// GetCommitCount implements the GitClient interface.
func (m *MockGitClient) GetCommitCount(ctx context.Context, repoPath string) ([]byte, error) {
	ret := m.Called(ctx, repoPath)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetBoundaryCommitDate implements the GitClient interface.
func (m *MockGitClient) GetBoundaryCommitDate(ctx context.Context, repoPath string, oldest bool) ([]byte, error) {
	ret := m.Called(ctx, repoPath, oldest)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetRepoHash implements the GitClient interface.
func (m *MockGitClient) GetRepoHash(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	s, _ := ret.Get(0).(string)
	return s, ret.Error(1)
}

// GetCommitLog implements the GitClient interface.
func (m *MockGitClient) GetCommitLog(ctx context.Context, repoPath string, since time.Time) ([]byte, error) {
	ret := m.Called(ctx, repoPath, since)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetAuthorSummaryLog implements the GitClient interface.
func (m *MockGitClient) GetAuthorSummaryLog(ctx context.Context, repoPath string, since time.Time) ([]byte, error) {
	ret := m.Called(ctx, repoPath, since)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetAuthorActivityLog implements the GitClient interface.
func (m *MockGitClient) GetAuthorActivityLog(ctx context.Context, repoPath string, email string, since time.Time) ([]byte, error) {
	ret := m.Called(ctx, repoPath, email, since)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetChurnLog implements the GitClient interface.
func (m *MockGitClient) GetChurnLog(ctx context.Context, repoPath string, since time.Time) ([]byte, error) {
	ret := m.Called(ctx, repoPath, since)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetDecisionLog implements the GitClient interface.
func (m *MockGitClient) GetDecisionLog(ctx context.Context, repoPath string, keyword string, since time.Time) ([]byte, error) {
	ret := m.Called(ctx, repoPath, keyword, since)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetBranchList implements the GitClient interface.
func (m *MockGitClient) GetBranchList(ctx context.Context, repoPath string) ([]byte, error) {
	ret := m.Called(ctx, repoPath)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetMergedBranches implements the GitClient interface.
func (m *MockGitClient) GetMergedBranches(ctx context.Context, repoPath string) ([]byte, error) {
	ret := m.Called(ctx, repoPath)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetTagList implements the GitClient interface.
func (m *MockGitClient) GetTagList(ctx context.Context, repoPath string) ([]byte, error) {
	ret := m.Called(ctx, repoPath)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetTagInfo implements the GitClient interface.
func (m *MockGitClient) GetTagInfo(ctx context.Context, repoPath string, tag string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, tag)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

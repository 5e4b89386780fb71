package core

import (
	"context"
	"testing"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestGetBranchAnalysis_ActiveStaleSplit(t *testing.T) {
	client := new(contract.MockGitClient)
	ctx := context.Background()

	// testNow is 2024-03-15; main committed 5 days before, old-feature 90.
	list := []byte(`main|2024-03-10 10:00:00 +0000|0 0
old-feature|2023-12-16 10:00:00 +0000|2 40
`)
	client.On("GetBranchList", ctx, "/repo").Return(list, nil)
	client.On("GetMergedBranches", ctx, "/repo").Return([]byte("main\nold-feature\n"), nil)

	analysis, err := getBranchAnalysis(ctx, client, "/repo", testNow)

	assert.NoError(t, err)
	assert.Equal(t, 2, analysis.TotalBranches)
	assert.Len(t, analysis.ActiveBranches, 1)
	assert.Equal(t, "main", analysis.ActiveBranches[0].Name)
	assert.True(t, analysis.ActiveBranches[0].IsMerged)
	assert.Len(t, analysis.StaleBranches, 1)
	assert.Equal(t, "old-feature", analysis.StaleBranches[0].Name)
	assert.Equal(t, 2, analysis.MergedBranchesCount)
	client.AssertExpectations(t)
}

func TestGetBranchAnalysis_MergedQueryFailureDegrades(t *testing.T) {
	client := new(contract.MockGitClient)
	ctx := context.Background()

	list := []byte("main|2024-03-10 10:00:00 +0000|0 0\n")
	client.On("GetBranchList", ctx, "/repo").Return(list, nil)
	client.On("GetMergedBranches", ctx, "/repo").Return(nil, assert.AnError)

	analysis, err := getBranchAnalysis(ctx, client, "/repo", testNow)

	assert.NoError(t, err, "the merged listing is advisory")
	assert.Zero(t, analysis.MergedBranchesCount)
	assert.False(t, analysis.ActiveBranches[0].IsMerged)
}

func TestGetBranchAnalysis_ListFailure(t *testing.T) {
	client := new(contract.MockGitClient)
	ctx := context.Background()

	client.On("GetBranchList", ctx, "/repo").Return(nil, assert.AnError)

	_, err := getBranchAnalysis(ctx, client, "/repo", testNow)
	assert.Error(t, err)
}

func TestIsBranchActive(t *testing.T) {
	assert.True(t, isBranchActive("2024-03-10 10:00:00 +0000", testNow))
	assert.False(t, isBranchActive("2023-09-01 10:00:00 +0000", testNow))
	assert.False(t, isBranchActive("not a date", testNow), "unparseable dates count as stale")
	assert.False(t, isBranchActive("", testNow))
}

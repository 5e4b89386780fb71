package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// getRepositoryInfo resolves repository-level facts: current branch, remote
// URL, total commit count and the first/last commit boundary. The remote
// lookup is the one query whose failure is not an error; a repository
// without a remote is a normal state.
func getRepositoryInfo(ctx context.Context, client contract.GitClient, repoPath string) (schema.RepositoryInfo, error) {
	branch, err := client.GetCurrentBranch(ctx, repoPath)
	if err != nil {
		return schema.RepositoryInfo{}, fmt.Errorf("cannot resolve current branch: %w", err)
	}

	remoteURL, err := client.GetRemoteURL(ctx, repoPath)
	if err != nil {
		remoteURL = "" // Absence of a remote is not an error
	}

	countOut, err := client.GetCommitCount(ctx, repoPath)
	if err != nil {
		return schema.RepositoryInfo{}, fmt.Errorf("cannot count commits: %w", err)
	}
	totalCommits, err := contract.ParseCount(countOut)
	if err != nil {
		return schema.RepositoryInfo{}, fmt.Errorf("cannot parse commit count: %w", err)
	}

	firstOut, err := client.GetBoundaryCommitDate(ctx, repoPath, true)
	if err != nil {
		return schema.RepositoryInfo{}, fmt.Errorf("cannot read first commit date: %w", err)
	}
	lastOut, err := client.GetBoundaryCommitDate(ctx, repoPath, false)
	if err != nil {
		return schema.RepositoryInfo{}, fmt.Errorf("cannot read last commit date: %w", err)
	}

	firstDate := strings.TrimSpace(string(firstOut))
	lastDate := strings.TrimSpace(string(lastOut))

	// Boundary timestamps are structural scalars: a parse failure here fails
	// the aspect, unlike the lenient per-record parses in bulk listings.
	firstTime, _, err := contract.ParseGitTime(firstDate)
	if err != nil {
		return schema.RepositoryInfo{}, fmt.Errorf("cannot parse first commit date: %w", err)
	}
	lastTime, _, err := contract.ParseGitTime(lastDate)
	if err != nil {
		return schema.RepositoryInfo{}, fmt.Errorf("cannot parse last commit date: %w", err)
	}

	ageDays := int(lastTime.Sub(firstTime).Hours() / 24)

	return schema.RepositoryInfo{
		Path:              repoPath,
		RemoteURL:         remoteURL,
		DefaultBranch:     branch,
		TotalCommits:      totalCommits,
		FirstCommitDate:   firstDate,
		LastCommitDate:    lastDate,
		RepositoryAgeDays: ageDays,
	}, nil
}

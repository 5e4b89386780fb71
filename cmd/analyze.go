package cmd

import (
	"github.com/huangsam/gitpulse/core"
	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd runs the full analysis and prints the combined report.
var reportCmd = &cobra.Command{
	Use:   "report [repo-path]",
	Short: "Run the full repository analysis",
	Long: `Runs every analysis aspect concurrently and prints a combined report:
repository info, commit history, branches, contributors, code churn,
development patterns, architectural decisions, and release patterns.

Results are cached per HEAD commit, so repeat runs against an unchanged
repository return instantly.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Analysis failed", err)
		}
	},
}

// churnCmd analyzes file change frequency only.
var churnCmd = &cobra.Command{
	Use:   "churn [repo-path]",
	Short: "Analyze file change frequency and hotspots",
	Long: `Analyzes which files change most often in the lookback window, with
insertion and deletion counts, and flags the top movers as hotspots.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChurn(rootCtx, cfg); err != nil {
			contract.LogFatal("Churn analysis failed", err)
		}
	},
}

// contributorsCmd analyzes contributor activity only.
var contributorsCmd = &cobra.Command{
	Use:   "contributors [repo-path]",
	Short: "Analyze contributor activity and impact",
	Long: `Aggregates per-author commit counts, line changes, files touched, and an
impact score over the lookback window. Authors are merged by email.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteContributors(rootCtx, cfg); err != nil {
			contract.LogFatal("Contributor analysis failed", err)
		}
	},
}

// releasesCmd analyzes tag and release cadence only.
var releasesCmd = &cobra.Command{
	Use:   "releases [repo-path]",
	Short: "Analyze tag history and release cadence",
	Long: `Lists tags with their dates and messages, and classifies the overall
release frequency from the average gap between consecutive tags.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReleases(rootCtx, cfg); err != nil {
			contract.LogFatal("Release analysis failed", err)
		}
	},
}

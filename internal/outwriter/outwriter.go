// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints the aggregate analysis report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.AnalysisReport, cfg *contract.Config, duration time.Duration) error {
	return PrintAnalysisReport(report, cfg, duration)
}

// WriteChurn prints code churn results using the configured output format.
func (ow *OutWriter) WriteChurn(churn schema.CodeChurn, cfg *contract.Config, duration time.Duration) error {
	return PrintChurnResults(churn, cfg, duration)
}

// WriteContributors prints contributor insights using the configured output format.
func (ow *OutWriter) WriteContributors(insights []schema.ContributorInsight, cfg *contract.Config, duration time.Duration) error {
	return PrintContributorResults(insights, cfg, duration)
}

// WriteReleases prints release patterns using the configured output format.
func (ow *OutWriter) WriteReleases(releases schema.ReleasePatterns, cfg *contract.Config, duration time.Duration) error {
	return PrintReleaseResults(releases, cfg, duration)
}

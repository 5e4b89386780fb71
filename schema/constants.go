package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string

	// CommitFrequency labels overall commit cadence.
	CommitFrequency string

	// ReleaseFrequency labels tagging cadence.
	ReleaseFrequency string

	// DecisionTier labels the impact of an architectural-decision commit.
	DecisionTier string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Commit cadence bands, from average commits per week.
const (
	VeryActiveFrequency CommitFrequency = "Very active" // > 20/wk
	ActiveFrequency     CommitFrequency = "Active"      // > 10/wk
	ModerateFrequency   CommitFrequency = "Moderate"    // > 5/wk
	LowFrequency        CommitFrequency = "Low"
)

// Release cadence bands, from total tag count.
const (
	WeeklyRelease    ReleaseFrequency = "Weekly"    // > 50 tags
	MonthlyRelease   ReleaseFrequency = "Monthly"   // > 20 tags
	QuarterlyRelease ReleaseFrequency = "Quarterly" // > 5 tags
	IrregularRelease ReleaseFrequency = "Irregular"
)

// Decision impact tiers.
const (
	HighImpact   DecisionTier = "high"
	MediumImpact DecisionTier = "medium"
	LowImpact    DecisionTier = "low"
)

// DecisionKeywords is the fixed keyword set scanned for architectural
// decision commits. One subject-grep query is issued per keyword.
var DecisionKeywords = []string{"refactor", "migrate", "architecture", "deprecate", "breaking", "redesign"}

// HotspotThreshold is the times-changed count above which a file counts as a hotspot.
const HotspotThreshold = 5

// RecentCommitLimit caps how many parsed commits are retained verbatim for
// downstream pattern detection.
const RecentCommitLimit = 50

// RecentTagLimit caps how many tags get a per-tag detail query.
const RecentTagLimit = 10

// BranchActivityDays is the staleness threshold for branch classification.
const BranchActivityDays = 30

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

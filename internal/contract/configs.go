package contract

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/huangsam/gitpulse/schema"
)

// Default values for configuration.
const (
	DefaultLookbackDays = 90
	MaxLookbackDays     = 3650
	DefaultPrecision    = 1
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath   string        // Absolute path to the Git repository
	Days       int           // Lookback window in days for time-scoped queries
	Workers    int           // Number of concurrent workers for analysis
	GitTimeout time.Duration // Per-invocation deadline for git subprocesses
	Precision  int           // Decimal precision for numeric columns
	Width      int           // Table width override; 0 means auto-detect
	Output     schema.OutputMode
	OutputFile string

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	RunBackend   schema.DatabaseBackend
	RunDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// Clone returns a copy of the config for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Since returns the inclusive start of the lookback window: now minus Days.
func (c *Config) Since(now time.Time) time.Time {
	return now.AddDate(0, 0, -c.Days)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Days           int    `mapstructure:"days"`
	Workers        int    `mapstructure:"workers"`
	GitTimeout     string `mapstructure:"git-timeout"`
	Precision      int    `mapstructure:"precision"`
	Width          int    `mapstructure:"width"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	RunBackend     string `mapstructure:"run-backend"`
	RunDBConnect   string `mapstructure:"run-db-connect"`
	Color          string `mapstructure:"color"`
}

// ProcessAndValidate performs all complex parsing and validation on the raw
// inputs and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Repository Path ---
	repoPath, err := filepath.Abs(input.RepoPathStr)
	if err != nil {
		return fmt.Errorf("cannot resolve repository path %q: %w", input.RepoPathStr, err)
	}
	cfg.RepoPath = repoPath

	// --- 2. Lookback Window ---
	// Non-positive day counts clamp to 1 rather than erroring; errors are
	// reserved for unparseable input.
	days := input.Days
	if days <= 0 {
		days = 1
	}
	if days > MaxLookbackDays {
		return fmt.Errorf("days cannot exceed %d (received %d)", MaxLookbackDays, input.Days)
	}
	cfg.Days = days

	// --- 3. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 4. Git Timeout ---
	cfg.GitTimeout = DefaultCommandTimeout
	if input.GitTimeout != "" {
		d, err := time.ParseDuration(input.GitTimeout)
		if err != nil {
			return fmt.Errorf("invalid git-timeout %q. must be a duration like 30s or 2m: %w", input.GitTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("git-timeout must be positive (received %s)", d)
		}
		cfg.GitTimeout = d
	}

	// --- 5. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 6. Persistence Backends ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	if input.RunBackend != "" {
		cfg.RunBackend = schema.DatabaseBackend(strings.ToLower(input.RunBackend))
		if _, ok := schema.ValidCacheBackends[cfg.RunBackend]; !ok {
			return fmt.Errorf("invalid run backend '%s'. must be sqlite, mysql, postgresql, none", input.RunBackend)
		}
		cfg.RunDBConnect = input.RunDBConnect
		if err := ValidateDatabaseConnectionString(cfg.RunBackend, cfg.RunDBConnect); err != nil {
			return err
		}
	}

	// --- 7. Colors ---
	cfg.UseColors = parseBoolFlag(input.Color, true)

	return nil
}

// ValidateDatabaseConnectionString checks that network backends carry a
// connection string; sqlite falls back to its default file path.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("mysql backend requires a connection string (user:password@tcp(host:port)/dbname)")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("postgresql backend requires a connection string (host=... port=... user=... dbname=...)")
		}
	}
	return nil
}

// parseBoolFlag interprets yes/no style string flags.
func parseBoolFlag(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}

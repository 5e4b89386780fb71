package cmd

import (
	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Initialize Viper config handling
	cobra.OnInitialize(initConfig)

	// Register all subcommands
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(churnCmd)
	rootCmd.AddCommand(contributorsCmd)
	rootCmd.AddCommand(releasesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(mcpCmd)

	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)

	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Persistent flags shared by every command
	pf := rootCmd.PersistentFlags()
	pf.Int("days", contract.DefaultLookbackDays, "Number of days of history to analyze")
	pf.Int("workers", contract.DefaultWorkers, "Number of concurrent workers for analysis")
	pf.String("git-timeout", "", "Timeout for individual git commands (e.g. 30s, 2m)")
	pf.Int("precision", contract.DefaultPrecision, "Decimal precision for floating-point output")
	pf.Int("width", 0, "Terminal width override for table output (0 = auto-detect)")
	pf.String("output", "text", "Output format: text, json, csv, or parquet")
	pf.String("output-file", "", "Write output to a file instead of stdout")
	pf.String("cache-backend", "sqlite", "Report cache backend: sqlite, mysql, postgres, or none")
	pf.String("cache-db-connect", "", "Connection string for the report cache database")
	pf.String("run-backend", "", "Run tracking backend: sqlite, mysql, postgres, or none")
	pf.String("run-db-connect", "", "Connection string for the run tracking database")
	pf.String("color", "yes", "Colorize output: yes or no")
	pf.String("config", "", "Path to config file (default .gitpulse.yaml)")
	pf.String("profile", "", "Enable profiling with the given file prefix")

	if err := viper.BindPFlags(pf); err != nil {
		contract.LogFatal("Failed to bind flags", err)
	}

	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 latest, 0 rolls back everything)")
	if err := viper.BindPFlag("target-version", runsMigrateCmd.Flags().Lookup("target-version")); err != nil {
		contract.LogFatal("Failed to bind migrate flags", err)
	}
}

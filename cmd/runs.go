package cmd

import (
	"fmt"
	"strings"

	"github.com/huangsam/gitpulse/internal/contract"
	"github.com/huangsam/gitpulse/internal/iocache"
	"github.com/huangsam/gitpulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsSetup initializes only the run tracking store.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	rawBackend := viper.GetString("run-backend")
	if rawBackend == "" {
		return fmt.Errorf("run tracking is not configured. set --run-backend (sqlite, mysql, postgresql)")
	}
	backend := schema.DatabaseBackend(strings.ToLower(rawBackend))
	if _, ok := schema.ValidCacheBackends[backend]; !ok {
		return fmt.Errorf("invalid run backend '%s'. must be sqlite, mysql, postgresql, none", rawBackend)
	}
	connStr := viper.GetString("run-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	if err := iocache.InitStores("", "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}

	cfg.RunBackend = backend
	cfg.RunDBConnect = connStr
	return nil
}

// runsSetupWrapper adapts runsSetup to Cobra's PreRunE signature.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// runsCmd groups run tracking subcommands.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage recorded analysis runs",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// runsStatusCmd shows run tracking statistics.
var runsStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show analysis run history status",
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iocache.Manager.GetRunStore()
		if store == nil {
			contract.LogFatal("Run tracking unavailable", fmt.Errorf("run backend is not configured"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to read run status", err)
		}
		iocache.PrintRunStatus(status)
	},
}

// runsClearCmd removes all recorded runs.
var runsClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Clear all recorded analysis runs",
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearRuns(cfg.RunBackend, contract.GetRunDBFilePath(), cfg.RunDBConnect); err != nil {
			contract.LogFatal("Failed to clear runs", err)
		}
		fmt.Println("Analysis run history cleared.")
	},
}

// runsExportCmd exports recorded runs to a Parquet file.
var runsExportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export recorded runs to Parquet",
	Long:    `Exports all recorded analysis runs to a Parquet file for downstream analytics. Requires --output-file as the destination prefix.`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteRunExport(viper.GetString("output-file")); err != nil {
			contract.LogFatal("Failed to export runs", err)
		}
	},
}

// runsMigrateCmd applies schema migrations to the run tracking database.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the run tracking database schema",
	Long: `Applies schema migrations to the run tracking database. With no flags it
migrates to the latest version. Use --target-version to migrate to a
specific version, or 0 to roll everything back.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := loadConfigFile(); err != nil {
			return err
		}
		rawBackend := viper.GetString("run-backend")
		if rawBackend == "" {
			return fmt.Errorf("run tracking is not configured. set --run-backend (sqlite, mysql, postgresql)")
		}
		backend := schema.DatabaseBackend(strings.ToLower(rawBackend))
		if _, ok := schema.ValidCacheBackends[backend]; !ok {
			return fmt.Errorf("invalid run backend '%s'. must be sqlite, mysql, postgresql, none", rawBackend)
		}
		connStr := viper.GetString("run-db-connect")
		if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
			return err
		}
		return iocache.MigrateRuns(backend, connStr, viper.GetInt("target-version"))
	},
}

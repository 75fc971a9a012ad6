package cmd

import (
	"fmt"

	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/internal/iocache"
	"github.com/facetkit/facet/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// decisionsSetup loads minimal configuration needed for decision history operations.
// This is used by commands that need history access without full shared setup.
func decisionsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get decision-related config values
	backendStr := viper.GetString("decisions-backend")
	connStr := viper.GetString("decisions-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config (no dataset caching for decision commands)
	if err := iocache.InitCaching(schema.NoneBackend, "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize decision history: %w", err)
	}

	cfg.DecisionsBackend = backend
	cfg.DecisionsDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// decisionsSetupWrapper wraps decisionsSetup to provide PreRunE for decision commands.
func decisionsSetupWrapper(_ *cobra.Command, _ []string) error {
	return decisionsSetup()
}

// decisionsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func decisionsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get decision-related config values
	backendStr := viper.GetString("decisions-backend")
	connStr := viper.GetString("decisions-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetDecisionsDBFilePath()
	}

	cfg.DecisionsBackend = backend
	cfg.DecisionsDBConnect = connStr

	return nil
}

// decisionsMigrateSetupWrapper wraps decisionsMigrateSetup to provide PreRunE for migrate command.
func decisionsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return decisionsMigrateSetup()
}

// decisionsCmd focused on decision history management.
//
// Note: Decision subcommands use minimal initialization (decisionsSetup)
// instead of the full sharedSetup used by analysis commands. This avoids
// data file validation and complex config processing for simple history
// operations.
var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Manage historical decision tracking and exports",
	Long: `Manage historical decision data used for trend tracking and reporting.

When enabled with --track, Facet records every analysis run, storing:
- Run metadata (timestamp, configuration, duration)
- Per-dataset decisions (kind, complexity, chart type, confidence)
- Dataset shape metrics (points, fields, category counts)

This enables longitudinal analysis, drift detection, and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show decision tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  facet decisions status

  # Export for analysis in pandas/DuckDB
  facet decisions export --output-file decision-data.parquet`,
}

// decisionsClearCmd clears the decision history.
var decisionsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical decision tracking data",
	Long: `Delete all stored decision runs and per-dataset decision history.

This removes:
- All decision run metadata
- Historical decisions for every dataset
- Dataset shape metrics captured per run

WARNING: This action cannot be undone. Consider exporting data first.

Use this when:
- Resetting drift tracking
- Database storage is full
- Starting fresh decision history

Examples:
  # Export before clearing
  facet decisions export --output-file backup.parquet
  facet decisions clear

  # Clear and start fresh
  facet decisions clear`,
	PreRunE: decisionsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearDecisions(cfg.DecisionsBackend, contract.GetDecisionsDBFilePath(), cfg.DecisionsDBConnect); err != nil {
			contract.LogFatal("Failed to clear decision history", err)
		}
		fmt.Println("Decision history cleared successfully.")
	},
}

// decisionsStatusCmd shows decision tracking status.
var decisionsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display decision tracking statistics and connection details",
	Long: `Show detailed information about historical decision tracking.

Displays:
- Backend type and connection status
- Total number of decision runs stored
- Last and oldest decision run timestamps
- Total datasets decided across all runs
- Database table sizes

Use this to:
- Verify decision tracking is enabled and working
- Monitor data accumulation over time
- Check database connection health
- Estimate storage requirements

Examples:
  # Check decision tracking status
  facet decisions status`,
	PreRunE: decisionsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetDecisionStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get decision status", err)
		}
		iocache.PrintDecisionStatus(status)
	},
}

// decisionsExportCmd exports decision history to Parquet files.
var decisionsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export historical data to Parquet for BI tools and analytics",
	Long: `Export all stored decision data to Parquet format for use with analytics tools.

Exports two datasets:
- Decision runs - metadata about each tracked analysis execution
- Dataset decisions - detailed decisions and shape metrics per dataset

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Use cases:
- Drift analysis across multiple runs
- Custom dashboards over presentation choices
- Executive reporting on report stability

Examples:
  # Export all data
  facet decisions export --output-file facet-data.parquet

  # Use with DuckDB for analysis
  facet decisions export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.decision_runs.parquet') LIMIT 10"`,
	PreRunE: decisionsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteDecisionExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export decision history", err)
		}
	},
}

// decisionsMigrateCmd runs database migrations for the decision store.
var decisionsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the decision tracking store.

Migrations allow:
- Upgrading to new schema versions when Facet is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed
- Testing new features on specific schema versions

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  facet decisions migrate

  # Migrate to specific version
  facet decisions migrate --target-version 2

  # Rollback to previous version
  facet decisions migrate --target-version 0`,
	PreRunE: decisionsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateDecisions(cfg.DecisionsBackend, cfg.DecisionsDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

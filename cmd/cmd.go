// Package cmd defines the command-line interface for facet.
package cmd

import (
	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(heuristicsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(decisionsCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the decisions subcommands to the parent decisions command
	decisionsCmd.AddCommand(decisionsClearCmd)
	decisionsCmd.AddCommand(decisionsStatusCmd)
	decisionsCmd.AddCommand(decisionsExportCmd)
	decisionsCmd.AddCommand(decisionsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-dataset metadata (kind, source, category counts)")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated list of dataset name patterns to ignore")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("decisions-backend", "", "Decision history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("decisions-db-connect", "", "Database connection string for decision history (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("fields", "", "Comma-separated field names to order (skips dataset field discovery)")
	rootCmd.PersistentFlags().String("hints", "", "Path to a YAML hints file with field ordering rules")
	rootCmd.PersistentFlags().String("trait", "", "Active trait for trait-specific ordering overrides")
	rootCmd.PersistentFlags().Float64("min-confidence", 0.0, "Lowest decision confidence accepted by check (0.0-1.0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of analyzeCmd to Viper
	analyzeCmd.Flags().Bool("explain", false, "Print per-dataset signal breakdown behind each decision")
	analyzeCmd.Flags().Bool("no-cache", false, "Bypass the dataset cache and re-read the data file")
	analyzeCmd.Flags().Bool("track", false, "Record this run's decisions to the history store")
	if err := viper.BindPFlags(analyzeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding analyze flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("listen", contract.DefaultListenAddr, "Address for the HTTP API to listen on")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of decisionsMigrateCmd to Viper
	decisionsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(decisionsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding decisions migrate flags", err)
	}
}

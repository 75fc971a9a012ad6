package contract

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/facetkit/facet/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
	DefaultListenAddr  = ":8080"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a facet invocation.
// This struct remains the "final, validated" config.
type Config struct {
	DataPath    string
	ResultLimit int
	Workers     int
	Excludes    []string
	Detail      bool
	Explain     bool
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	NoCache     bool
	Track       bool

	HintsPath string
	Trait     schema.Trait
	Fields    []string

	CompareMode bool
	BasePath    string
	TargetPath  string

	MinConfidence float64

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	DecisionsBackend   schema.DatabaseBackend
	DecisionsDBConnect string // Please use env var as this is plaintext

	ListenAddr string

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tags
	DataPathStr   string
	BasePathStr   string
	TargetPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile         string `mapstructure:"output-file"`
	Limit              int    `mapstructure:"limit"`
	Workers            int    `mapstructure:"workers"`
	Exclude            string `mapstructure:"exclude"`
	Precision          int    `mapstructure:"precision"`
	Output             string `mapstructure:"output"`
	Detail             bool   `mapstructure:"detail"`
	Width              int    `mapstructure:"width"`
	CacheBackend       string `mapstructure:"cache-backend"`
	CacheDBConnect     string `mapstructure:"cache-db-connect"`
	DecisionsBackend   string `mapstructure:"decisions-backend"`
	DecisionsDBConnect string `mapstructure:"decisions-db-connect"`
	Emoji              string `mapstructure:"emoji"`
	Color              string `mapstructure:"color"`

	// --- Fields from analyzeCmd.Flags() ---
	Explain bool `mapstructure:"explain"`
	NoCache bool `mapstructure:"no-cache"`
	Track   bool `mapstructure:"track"`

	// --- Field-order fields, also from rootCmd.PersistentFlags() ---
	FieldsStr     string  `mapstructure:"fields"`
	HintsPath     string  `mapstructure:"hints"`
	TraitStr      string  `mapstructure:"trait"`
	MinConfidence float64 `mapstructure:"min-confidence"`

	// --- Fields from serveCmd.Flags() ---
	Listen string `mapstructure:"listen"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Excludes != nil {
		clone.Excludes = slices.Clone(c.Excludes)
	}
	if c.Fields != nil {
		clone.Fields = slices.Clone(c.Fields)
	}
	return &clone
}

// TrackingParams returns the configuration values worth recording alongside a
// decision run, for later inspection of what produced the stored decisions.
func (c *Config) TrackingParams() map[string]any {
	params := map[string]any{
		"data_path": c.DataPath,
		"limit":     c.ResultLimit,
		"no_cache":  c.NoCache,
	}
	if c.HintsPath != "" {
		params["hints"] = c.HintsPath
	}
	if c.Trait != "" {
		params["trait"] = string(c.Trait)
	}
	if len(c.Excludes) > 0 {
		params["exclude"] = strings.Join(c.Excludes, ",")
	}
	return params
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client DataClient, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processFieldInputs(cfg, input); err != nil {
		return err
	}
	if err := processCompareMode(cfg, input); err != nil {
		return err
	}
	if err := resolveDataPaths(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and decisions backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- Decisions Backend Validation ---
	cfg.DecisionsBackend = schema.DatabaseBackend(strings.ToLower(input.DecisionsBackend))
	if cfg.DecisionsBackend != "" {
		if _, ok := schema.ValidDatabaseBackends[cfg.DecisionsBackend]; !ok {
			return fmt.Errorf("invalid decisions backend '%s'. must be sqlite, mysql, postgresql, none", input.DecisionsBackend)
		}
		cfg.DecisionsDBConnect = input.DecisionsDBConnect
		if err := ValidateDatabaseConnectionString(cfg.DecisionsBackend, cfg.DecisionsDBConnect); err != nil {
			return err
		}

		// Validate that cache and decision history use different databases
		if cfg.CacheBackend == cfg.DecisionsBackend && cfg.CacheBackend != schema.NoneBackend {
			// For SQLite, resolve to actual file paths to catch default path conflicts
			if cfg.CacheBackend == schema.SQLiteBackend {
				cacheDBPath := cfg.CacheDBConnect
				if cacheDBPath == "" {
					cacheDBPath = GetCacheDBFilePath()
				}
				decisionsDBPath := cfg.DecisionsDBConnect
				if decisionsDBPath == "" {
					decisionsDBPath = GetDecisionsDBFilePath()
				}
				if cacheDBPath == decisionsDBPath {
					return fmt.Errorf("cache and decision storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
				}
			}
		}
	}

	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Width = input.Width
	cfg.NoCache = input.NoCache
	cfg.Track = input.Track

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	// --- 4. Backend Validation ---
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	// --- 5. Excludes Processing ---
	cfg.Excludes = nil
	if input.Exclude != "" {
		parts := strings.Split(input.Exclude, ",")
		for _, p := range parts {
			trimmedP := strings.TrimSpace(p)
			if trimmedP != "" {
				cfg.Excludes = append(cfg.Excludes, trimmedP)
			}
		}
	}

	// --- 6. Listen Address ---
	cfg.ListenAddr = strings.TrimSpace(input.Listen)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}

	return nil
}

// processFieldInputs handles the field-order inputs: the inline field list,
// the hints file location, the active trait and the confidence floor.
func processFieldInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Fields = nil
	if input.FieldsStr != "" {
		for _, p := range strings.Split(input.FieldsStr, ",") {
			trimmedP := strings.TrimSpace(p)
			if trimmedP != "" {
				cfg.Fields = append(cfg.Fields, trimmedP)
			}
		}
	}

	cfg.HintsPath = strings.TrimSpace(input.HintsPath)
	cfg.Trait = schema.Trait(strings.TrimSpace(input.TraitStr))

	if input.MinConfidence < 0.0 || input.MinConfidence > 1.0 {
		return fmt.Errorf("min-confidence must be between 0.0 and 1.0 (received %.2f)", input.MinConfidence)
	}
	cfg.MinConfidence = input.MinConfidence

	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// processCompareMode handles the comparison data file pair.
func processCompareMode(cfg *Config, input *ConfigRawInput) error {
	base := strings.TrimSpace(input.BasePathStr)
	target := strings.TrimSpace(input.TargetPathStr)

	if base == "" && target == "" {
		cfg.CompareMode = false
		return nil
	}
	cfg.CompareMode = true

	if base == "" || target == "" {
		return fmt.Errorf("must specify both a base and a target data file when running the compare command")
	}
	cfg.BasePath = base
	cfg.TargetPath = target

	return nil
}

// resolveDataPaths resolves relative data file paths to absolute ones and
// confirms each file is reachable before any loading starts.
func resolveDataPaths(ctx context.Context, cfg *Config, client DataClient, input *ConfigRawInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	resolve := func(path string) (string, error) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		absPath = filepath.Clean(absPath)
		if _, err := client.Fingerprint(absPath); err != nil {
			return "", fmt.Errorf("cannot access data file: %w", err)
		}
		return absPath, nil
	}

	if cfg.CompareMode {
		basePath, err := resolve(cfg.BasePath)
		if err != nil {
			return err
		}
		targetPath, err := resolve(cfg.TargetPath)
		if err != nil {
			return err
		}
		cfg.BasePath = basePath
		cfg.TargetPath = targetPath
		return nil
	}

	if input.DataPathStr == "" {
		cfg.DataPath = ""
		return nil
	}

	dataPath, err := resolve(input.DataPathStr)
	if err != nil {
		return err
	}
	cfg.DataPath = dataPath

	return nil
}

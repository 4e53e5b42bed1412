// Package config provides configuration management for meigen.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Corpus: file, transcript_file, delimiter
//   - Ledger: file
//   - Schedule: file, frequency, recent_issues
//   - Export: dir, format
//   - Metrics: file
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - ProcessAll (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use MEIGEN_ prefix with underscores for nesting:
//
//	MEIGEN_CORPUS_FILE=meigen_db_20250916.txt
//	MEIGEN_SCHEDULE_FREQUENCY=weekly
//	MEIGEN_LOG_LEVEL=info
package config

// Config represents the complete meigen configuration.
type Config struct {
	// Corpus describes the source text of quotes.
	Corpus CorpusConfig `mapstructure:"corpus" yaml:"corpus"`

	// Ledger keeps incremental parsing and publication state.
	Ledger LedgerConfig `mapstructure:"ledger" yaml:"ledger"`

	// Schedule keeps planned and published issues.
	Schedule ScheduleConfig `mapstructure:"schedule" yaml:"schedule"`

	Export ExportConfig `mapstructure:"export" yaml:"export"`

	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// ProcessAll makes parsing return every record instead of only the
	// ones above the last processed id.
	ProcessAll bool

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// CorpusConfig points to the corpus text files.
type CorpusConfig struct {
	// File is the corpus of numbered quotes. Relative paths are resolved
	// against the working directory.
	File string `mapstructure:"file" yaml:"file"`

	// TranscriptFile is the legacy list of quotes without ids. It is
	// optional.
	TranscriptFile string `mapstructure:"transcript_file" yaml:"transcript_file"`

	// Delimiter separates records, 50 dashes by default.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// LedgerConfig locates the ledger file.
type LedgerConfig struct {
	// File is the JSON ledger. Relative paths are resolved against the
	// data directory.
	File string `mapstructure:"file" yaml:"file"`
}

// ScheduleConfig contains schedule file location and planning settings.
type ScheduleConfig struct {
	// File is the JSON schedule. Relative paths are resolved against the
	// data directory.
	File string `mapstructure:"file" yaml:"file"`

	// Frequency of planned issues: weekly, biweekly or monthly.
	Frequency string `mapstructure:"frequency" yaml:"frequency"`

	// RecentIssues is how many of the last published issues are looked at
	// to avoid repeating a category in random selection.
	RecentIssues int `mapstructure:"recent_issues" yaml:"recent_issues"`
}

// ExportConfig contains audit export settings.
type ExportConfig struct {
	// Dir receives export files with generated names. Relative paths are
	// resolved against the data directory.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Format is json, yaml or sqlite.
	Format string `mapstructure:"format" yaml:"format"`
}

// MetricsConfig contains Prometheus textfile settings.
type MetricsConfig struct {
	// File is where metrics are written after each command. Empty
	// disables metrics.
	File string `mapstructure:"file" yaml:"file"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Corpus: CorpusConfig{
			File:           "meigen_db.txt",
			TranscriptFile: "transcript_quotes.txt",
			Delimiter:      DefaultDelimiter,
		},
		Ledger: LedgerConfig{
			File: "meigen_meta.json",
		},
		Schedule: ScheduleConfig{
			File:         "newsletter_schedule.json",
			Frequency:    "weekly",
			RecentIssues: 3,
		},
		Export: ExportConfig{
			Dir:    "exports",
			Format: "json",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

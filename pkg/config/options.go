package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptCorpusFile sets the path to the corpus of numbered quotes.
func OptCorpusFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Corpus File", s) {
			c.Corpus.File = s
		}
	}
}

// OptCorpusTranscriptFile sets the path to the legacy transcript list.
func OptCorpusTranscriptFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Transcript File", s) {
			c.Corpus.TranscriptFile = s
		}
	}
}

// OptCorpusDelimiter sets the record separator. It is not trimmed
// because whitespace may be a part of it.
func OptCorpusDelimiter(s string) Option {
	return func(c *Config) {
		if isValidString("Corpus Delimiter", strings.TrimSpace(s)) {
			c.Corpus.Delimiter = s
		}
	}
}

// OptLedgerFile sets the ledger file location.
func OptLedgerFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Ledger File", s) {
			c.Ledger.File = s
		}
	}
}

// OptScheduleFile sets the schedule file location.
func OptScheduleFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Schedule File", s) {
			c.Schedule.File = s
		}
	}
}

// OptScheduleFrequency sets the planning frequency.
// Valid values: "weekly", "biweekly", "monthly".
func OptScheduleFrequency(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Schedule.Frequency", s) {
			c.Schedule.Frequency = s
		}
	}
}

// OptScheduleRecentIssues sets how many recent issues are checked for
// repeated categories.
func OptScheduleRecentIssues(i int) Option {
	return func(c *Config) {
		if isValidInt("Recent Issues", i) {
			c.Schedule.RecentIssues = i
		}
	}
}

// OptExportDir sets the directory for generated export files.
func OptExportDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Export Dir", s) {
			c.Export.Dir = s
		}
	}
}

// OptExportFormat sets the export format.
// Valid values: "json", "yaml", "sqlite".
func OptExportFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Export.Format", s) {
			c.Export.Format = s
		}
	}
}

// OptMetricsFile sets the Prometheus textfile location.
func OptMetricsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Metrics File", s) {
			c.Metrics.File = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptProcessAll makes parsing return all records.
// Runtime-only field - not in ToOptions().
func OptProcessAll(b bool) Option {
	return func(c *Config) {
		c.ProcessAll = b
	}
}

// OptHomeDir sets the home directory for config, data, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

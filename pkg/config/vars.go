package config

import (
	"path/filepath"
	"strings"
)

var (
	// AppName is used in generating file system paths.
	AppName = "meigen"

	// DefaultDelimiter separates records in corpus files.
	DefaultDelimiter = strings.Repeat("-", 50)
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/meigen by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for the ledger, the schedule and
// exports.
// Returns ~/.local/share/meigen by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/meigen/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/meigen/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// LedgerPath returns the absolute location of the ledger file.
func (c *Config) LedgerPath() string {
	return c.dataPath(c.Ledger.File)
}

// SchedulePath returns the absolute location of the schedule file.
func (c *Config) SchedulePath() string {
	return c.dataPath(c.Schedule.File)
}

// ExportDir returns the absolute location of the export directory.
func (c *Config) ExportDir() string {
	return c.dataPath(c.Export.Dir)
}

func (c *Config) dataPath(p string) string {
	if filepath.IsAbs(p) || c.HomeDir == "" {
		return p
	}
	return filepath.Join(DataDir(c.HomeDir), p)
}

// Package iologger sets up the global slog logger of meigen.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	meigen "github.com/ichinichi/meigen/pkg"
	"github.com/ichinichi/meigen/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "meigen.log"

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Init replaces the default slog logger according to cfg.Log. With the
// "file" destination records go to LogFile in the log directory of
// cfg.HomeDir; the file is truncated unless appendLog is set. Every record
// carries the meigen version.
//
// The returned function closes the log file, it is a no-op for other
// destinations.
func Init(cfg *config.Config, appendLog bool) (func() error, error) {
	closeFn := func() error { return nil }

	var w io.Writer
	switch cfg.Log.Destination {
	case "stdout":
		w = os.Stdout
	case "file":
		path := filepath.Join(config.LogDir(cfg.HomeDir), LogFile)
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if appendLog {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		f, err := os.OpenFile(path, flags, 0644)
		if err != nil {
			return closeFn, CreateLogFileError(path, err)
		}
		w = f
		closeFn = f.Close
	default:
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: levelOf(cfg.Log.Level)}
	var handler slog.Handler
	if cfg.Log.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler).With("version", meigen.Version))
	return closeFn, nil
}

// levelOf falls back to info for unknown levels.
func levelOf(level string) slog.Level {
	if res, ok := levels[level]; ok {
		return res
	}
	return slog.LevelInfo
}

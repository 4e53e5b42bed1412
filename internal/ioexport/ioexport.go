// Package ioexport writes audit copies of the record set as JSON, YAML or
// SQLite files and reads them back.
package ioexport

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/ichinichi/meigen/internal/iofs"
	"github.com/ichinichi/meigen/pkg/config"
	"github.com/ichinichi/meigen/pkg/quote"
	"gopkg.in/yaml.v3"
)

// Format of an export file.
type Format string

const (
	JSON   Format = "json"
	YAML   Format = "yaml"
	SQLite Format = "sqlite"
)

// Ext returns the file extension used for generated file names.
func (f Format) Ext() string {
	return "." + string(f)
}

// Export is the content of an export file.
type Export struct {
	// ExportID is a random UUID, unique per export.
	ExportID   string        `json:"export_id"   yaml:"export_id"`
	ExportDate time.Time     `json:"export_date" yaml:"export_date"`
	TotalCount int           `json:"total_count" yaml:"total_count"`
	Quotes     []quote.Quote `json:"quotes"      yaml:"quotes"`
}

// Exporter writes the record set to a file.
type Exporter interface {
	// Export writes qs to path and returns the path used. An empty path
	// creates quotes_export_YYYYMMDD_HHMMSS.<ext> in the export directory.
	// The format follows the extension of path, or the configured format
	// when the extension is unknown.
	Export(qs []quote.Quote, path string) (string, error)
}

type exporter struct {
	dir      string
	format   Format
	progress bool
}

// New creates an Exporter from configuration. With progress set, SQLite
// exports show a progress bar on STDERR.
func New(cfg *config.Config, progress bool) Exporter {
	return &exporter{
		dir:      cfg.ExportDir(),
		format:   Format(cfg.Export.Format),
		progress: progress,
	}
}

func (e *exporter) Export(qs []quote.Quote, path string) (string, error) {
	now := time.Now().Round(0)
	format := e.format
	if path == "" {
		name := "quotes_export_" + now.Format("20060102_150405") + format.Ext()
		path = filepath.Join(e.dir, name)
	} else if f, ok := formatByExt(path); ok {
		format = f
	}

	if qs == nil {
		qs = []quote.Quote{}
	}
	exp := Export{
		ExportID:   uuid.New().String(),
		ExportDate: now,
		TotalCount: len(qs),
		Quotes:     qs,
	}

	var err error
	switch format {
	case JSON:
		err = writeJSON(path, exp)
	case YAML:
		err = writeYAML(path, exp)
	case SQLite:
		err = writeSQLite(path, exp, e.progress)
	default:
		return "", ExportFormatError(string(format))
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// Read loads an export file. The format is taken from the file extension.
func Read(path string) (Export, error) {
	var res Export
	format, ok := formatByExt(path)
	if !ok {
		return res, ExportFormatError(filepath.Ext(path))
	}

	if format == SQLite {
		exp, err := readSQLite(path)
		if err != nil {
			return res, ExportReadError(path, err)
		}
		return exp, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, ExportReadError(path, err)
	}
	if format == JSON {
		err = gnfmt.GNjson{}.Decode(data, &res)
	} else {
		err = yaml.Unmarshal(data, &res)
	}
	if err != nil {
		return res, ExportReadError(path, err)
	}
	if res.Quotes == nil {
		res.Quotes = []quote.Quote{}
	}
	return res, nil
}

func formatByExt(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, true
	case ".yaml", ".yml":
		return YAML, true
	case ".sqlite", ".db":
		return SQLite, true
	}
	return "", false
}

func writeJSON(path string, exp Export) error {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(exp)
	if err != nil {
		return ExportWriteError(path, err)
	}
	if err = iofs.WriteAtomic(path, data); err != nil {
		return ExportWriteError(path, err)
	}
	return nil
}

func writeYAML(path string, exp Export) error {
	data, err := yaml.Marshal(exp)
	if err != nil {
		return ExportWriteError(path, err)
	}
	if err = iofs.WriteAtomic(path, data); err != nil {
		return ExportWriteError(path, err)
	}
	return nil
}

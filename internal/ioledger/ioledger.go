// Package ioledger persists the corpus ledger as a JSON file.
package ioledger

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gnames/gnfmt"
	"github.com/ichinichi/meigen/internal/iofs"
	"github.com/ichinichi/meigen/pkg/corpus"
)

// Load reads the ledger at path. An absent or unreadable ledger gives the
// zero state; corruption is logged, never returned.
func Load(path string) corpus.State {
	var res corpus.State
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Ledger not found, starting fresh", "path", path)
		return res
	}
	if err != nil {
		slog.Warn("Cannot read ledger, starting fresh",
			"error", LedgerCorruptError(path, err), "path", path)
		return res
	}

	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &res); err != nil {
		slog.Warn("Ledger is corrupt, starting fresh",
			"error", LedgerCorruptError(path, err), "path", path)
		return corpus.State{}
	}
	if res.LastProcessedID < 0 || res.PublishedCount < 0 {
		slog.Warn("Ledger has negative counters, starting fresh", "path", path)
		return corpus.State{}
	}
	return res
}

// Save overwrites the ledger at path atomically.
func Save(path string, state corpus.State) error {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(state)
	if err != nil {
		return LedgerSaveError(path, err)
	}
	if err = iofs.WriteAtomic(path, data); err != nil {
		return LedgerSaveError(path, err)
	}
	return nil
}

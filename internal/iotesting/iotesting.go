// Package iotesting provides shared helpers for tests of io packages.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ichinichi/meigen/pkg/config"
	"github.com/ichinichi/meigen/pkg/quote"
)

// CorpusName is the corpus file name inside the temporary directory.
const CorpusName = "meigen_db.txt"

// Config returns a configuration that keeps every file inside a temporary
// directory. Options are applied after the defaults. The corpus file is
// not created, use WriteCorpus.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.Config(t)
//	    iotesting.WriteCorpus(t, cfg.Corpus.File, sections...)
//	    // ...
//	}
func Config(t *testing.T, opts ...config.Option) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(dir),
		config.OptCorpusFile(filepath.Join(dir, CorpusName)),
		config.OptCorpusTranscriptFile(filepath.Join(dir, "transcript.txt")),
	})
	cfg.Update(opts)
	return cfg
}

// WriteCorpus joins sections with the default delimiter and writes them
// to path.
func WriteCorpus(t *testing.T, path string, sections ...string) {
	t.Helper()
	text := strings.Join(sections, quote.DefaultDelimiter)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("cannot write corpus %s: %v", path, err)
	}
}

// Package iofeature picks the quote of the day for the newsletter.
package iofeature

import (
	"errors"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/ichinichi/meigen/pkg/config"
	"github.com/ichinichi/meigen/pkg/corpus"
	"github.com/ichinichi/meigen/pkg/newsletter"
	"github.com/ichinichi/meigen/pkg/quote"
	"github.com/ichinichi/meigen/pkg/rotation"
	"github.com/ichinichi/meigen/pkg/schedule"
)

type feature struct {
	corpus     corpus.Corpus
	ledger     schedule.Ledger
	transcript []quote.Featured
	recent     int
	rnd        *rand.Rand
}

// New creates a QuoteSource. The transcript file is optional, a missing
// file gives an empty transcript list. rnd may be nil.
func New(
	cfg *config.Config,
	c corpus.Corpus,
	l schedule.Ledger,
	rnd *rand.Rand,
) (newsletter.QuoteSource, error) {
	res := &feature{
		corpus: c,
		ledger: l,
		recent: cfg.Schedule.RecentIssues,
		rnd:    rnd,
	}

	path := cfg.Corpus.TranscriptFile
	if path == "" {
		return res, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Transcript file not found", "path", path)
		return res, nil
	}
	if err != nil {
		return nil, TranscriptReadError(path, err)
	}
	res.transcript = quote.ParseTranscript(string(data), cfg.Corpus.Delimiter)
	slog.Info("Loaded transcript quotes",
		"path", path, "count", len(res.transcript))
	return res, nil
}

func (f *feature) RandomQuote(
	category string,
	useCorpus bool,
) (quote.Featured, bool) {
	if useCorpus {
		return f.randomCorpus(category)
	}
	return f.randomTranscript(category)
}

func (f *feature) randomCorpus(category string) (quote.Featured, bool) {
	var recent *rotation.History
	if category == "" && f.recent > 0 {
		recent = rotation.NewHistory(f.recent)
		for _, v := range f.ledger.RecentCategories(f.recent) {
			recent.Push(v)
		}
	}

	q, ok := rotation.Random(f.corpus.Unpublished(), category, recent, f.rnd)
	if !ok {
		if category != "" {
			slog.Warn("No unpublished quotes in category", "category", category)
		} else {
			slog.Warn("No unpublished quotes left")
		}
		return quote.Featured{}, false
	}
	return quote.Normalize(q), true
}

func (f *feature) randomTranscript(category string) (quote.Featured, bool) {
	cands := f.transcript
	if category != "" {
		cands = nil
		for _, v := range f.transcript {
			if v.Category == category {
				cands = append(cands, v)
			}
		}
	}
	if len(cands) == 0 {
		return quote.Featured{}, false
	}

	var idx int
	if f.rnd == nil {
		idx = rand.IntN(len(cands))
	} else {
		idx = f.rnd.IntN(len(cands))
	}
	return cands[idx], true
}

func (f *feature) MarkPublished(id, issueNumber int) error {
	return f.ledger.PublishQuote(id, issueNumber)
}

func (f *feature) Publish(q quote.Featured, issueNumber int) error {
	id := q.ID
	if id == 0 {
		rec, ok := f.corpus.FindByText(q.Quote)
		if !ok {
			slog.Debug("Featured quote is not in the corpus", "quote", q.Quote)
			return nil
		}
		id = rec.ID
	}
	return f.MarkPublished(id, issueNumber)
}

func (f *feature) Categories() []string {
	res := f.corpus.Categories()
	for _, v := range f.transcript {
		if !slices.Contains(res, v.Category) {
			res = append(res, v.Category)
		}
	}
	slices.Sort(res)
	return res
}

func (f *feature) Count() int {
	return len(f.transcript) + len(f.corpus.Quotes())
}

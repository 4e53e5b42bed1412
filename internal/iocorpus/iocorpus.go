// Package iocorpus implements the Corpus interface on top of the corpus
// text file and the JSON ledger.
package iocorpus

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/ichinichi/meigen/internal/ioledger"
	"github.com/ichinichi/meigen/pkg/config"
	"github.com/ichinichi/meigen/pkg/corpus"
	"github.com/ichinichi/meigen/pkg/newsletter"
	"github.com/ichinichi/meigen/pkg/quote"
)

// DateLayout is the layout of publish dates.
const DateLayout = "2006-01-02"

type corpusio struct {
	cfg   *config.Config
	state corpus.State

	// quotes are kept in corpus order, index maps ids to positions.
	quotes []quote.Quote
	index  map[int]int
	texts  map[string]int
}

// New creates a Corpus and loads its ledger. Records appear after the
// first call to Parse.
func New(cfg *config.Config) corpus.Corpus {
	res := &corpusio{
		cfg:   cfg,
		state: ioledger.Load(cfg.LedgerPath()),
		index: make(map[int]int),
		texts: make(map[string]int),
	}
	return res
}

// Parse reads the corpus file and merges it into the record set.
func (c *corpusio) Parse(processAll bool) ([]quote.Quote, error) {
	path := c.cfg.Corpus.File
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, CorpusFileNotFoundError(path, err)
	}
	if err != nil {
		return nil, CorpusReadError(path, err)
	}

	qs, rep := quote.Parse(string(data), c.cfg.Corpus.Delimiter)
	c.logReport(rep)

	threshold := c.state.LastProcessedID
	if processAll {
		threshold = 0
	}

	c.merge(qs)

	var maxID int
	res := make([]quote.Quote, 0, len(qs))
	for _, q := range qs {
		maxID = max(maxID, q.ID)
		if q.ID > threshold {
			res = append(res, c.quotes[c.index[q.ID]])
		}
	}

	now := time.Now()
	c.state.LastProcessedID = max(c.state.LastProcessedID, maxID)
	c.state.TotalQuotes = c.state.LastProcessedID
	c.state.LastUpdate = &now

	slog.Info("Parsed corpus",
		"file", path,
		"records", len(qs),
		"returned", len(res),
		"last_processed_id", c.state.LastProcessedID,
	)

	if err = ioledger.Save(c.cfg.LedgerPath(), c.state); err != nil {
		return nil, err
	}
	return res, nil
}

// merge adds new records to the set. Records that are already known keep
// their state. Publications from the ledger are applied to new records.
func (c *corpusio) merge(qs []quote.Quote) {
	for _, q := range qs {
		if _, ok := c.index[q.ID]; ok {
			continue
		}
		if p, ok := c.state.Publication(q.ID); ok {
			corpus.ApplyPublication(&q, p)
		}
		c.index[q.ID] = len(c.quotes)
		c.quotes = append(c.quotes, q)

		fp := quote.Fingerprint(q.Quote)
		if _, ok := c.texts[fp]; !ok {
			c.texts[fp] = q.ID
		}
	}
}

func (c *corpusio) logReport(rep quote.Report) {
	if rep.Malformed > 0 {
		slog.Debug("Skipped malformed sections", "count", rep.Malformed)
	}
	for _, id := range rep.DuplicateIDs {
		slog.Warn("Duplicate quote id, keeping the first one", "id", id)
	}
	for _, v := range rep.Repeats {
		slog.Info("Quote text repeats an earlier record",
			"id", v.ID, "first_id", v.FirstID)
	}
}

func (c *corpusio) Quotes() []quote.Quote {
	return corpus.Filter(c.quotes, func(quote.Quote) bool { return true })
}

func (c *corpusio) Unpublished() []quote.Quote {
	return corpus.Unpublished(c.quotes)
}

func (c *corpusio) ByCategory(category string) []quote.Quote {
	return corpus.ByCategory(c.quotes, category)
}

func (c *corpusio) ByPriority(p quote.Priority) []quote.Quote {
	return corpus.ByPriority(c.quotes, p)
}

func (c *corpusio) Categories() []string {
	return corpus.Categories(c.quotes)
}

func (c *corpusio) Find(id int) (quote.Quote, bool) {
	idx, ok := c.index[id]
	if !ok {
		return quote.Quote{}, false
	}
	return c.quotes[idx], true
}

func (c *corpusio) FindByText(text string) (quote.Quote, bool) {
	id, ok := c.texts[quote.Fingerprint(text)]
	if !ok {
		return quote.Quote{}, false
	}
	return c.Find(id)
}

func (c *corpusio) MarkPublished(id, newsletterNumber int) error {
	return c.RecordPublication(corpus.Publication{
		ID:               id,
		PublishDate:      newsletter.Today().Format(DateLayout),
		NewsletterNumber: newsletterNumber,
	})
}

func (c *corpusio) RecordPublication(p corpus.Publication) error {
	idx, ok := c.index[p.ID]
	if !ok {
		slog.Debug("Cannot mark unknown quote as published", "id", p.ID)
		return nil
	}
	if c.quotes[idx].Published {
		slog.Debug("Quote is already published", "id", p.ID)
		return nil
	}

	prevQuote := c.quotes[idx]
	prevState := c.state.Copy()

	corpus.ApplyPublication(&c.quotes[idx], p)
	c.state.Publications = append(c.state.Publications, p)
	c.state.PublishedCount++

	if err := ioledger.Save(c.cfg.LedgerPath(), c.state); err != nil {
		c.quotes[idx] = prevQuote
		c.state = prevState
		return err
	}
	slog.Info("Marked quote as published",
		"id", p.ID, "newsletter_number", p.NewsletterNumber)
	return nil
}

func (c *corpusio) State() corpus.State {
	return c.state.Copy()
}

// Package ioschedule implements the schedule Ledger on top of a JSON file
// and a Corpus.
package ioschedule

import (
	"log/slog"
	"slices"
	"time"

	"github.com/ichinichi/meigen/pkg/config"
	"github.com/ichinichi/meigen/pkg/corpus"
	"github.com/ichinichi/meigen/pkg/newsletter"
	"github.com/ichinichi/meigen/pkg/quote"
	"github.com/ichinichi/meigen/pkg/rotation"
	"github.com/ichinichi/meigen/pkg/schedule"
)

type schedio struct {
	path   string
	corpus corpus.Corpus
	state  schedule.State
}

// New loads the schedule from the configured file. A frequency from the
// configuration replaces the stored one.
func New(cfg *config.Config, c corpus.Corpus) schedule.Ledger {
	res := &schedio{
		path:   cfg.SchedulePath(),
		corpus: c,
		state:  Load(cfg.SchedulePath()),
	}
	if f := schedule.Frequency(cfg.Schedule.Frequency); f.Valid() {
		res.state.Settings.Frequency = f
	}
	return res
}

func (s *schedio) ScheduleQuote(
	q quote.Quote,
	publishDate string,
) (schedule.Entry, error) {
	var res schedule.Entry
	if publishDate == "" {
		publishDate = newsletter.Today().Format(schedule.DateLayout)
	}
	if _, err := time.Parse(schedule.DateLayout, publishDate); err != nil {
		return res, ScheduleDateError(publishDate, err)
	}

	res = schedule.Entry{
		NewsletterNumber: s.state.NextNewsletterNumber,
		QuoteID:          q.ID,
		PublishDate:      publishDate,
		Status:           schedule.StatusScheduled,
		CreatedAt:        time.Now(),
	}

	prev := s.snapshot()
	s.state.Schedule = append(s.state.Schedule, res)
	s.state.NextNewsletterNumber++
	if err := Save(s.path, s.state); err != nil {
		s.state = prev
		return schedule.Entry{}, err
	}

	slog.Info("Scheduled quote",
		"quote_id", q.ID,
		"newsletter_number", res.NewsletterNumber,
		"publish_date", publishDate,
	)
	return res, nil
}

func (s *schedio) PublishQuote(quoteID, newsletterNumber int) error {
	if _, ok := s.corpus.Find(quoteID); !ok {
		slog.Debug("Cannot publish unknown quote", "quote_id", quoteID)
		return nil
	}

	// the corpus goes first, a failure there leaves the schedule alone
	if err := s.corpus.MarkPublished(quoteID, newsletterNumber); err != nil {
		return err
	}

	q, _ := s.corpus.Find(quoteID)
	publishDate := newsletter.Today().Format(schedule.DateLayout)
	if q.PublishDate != nil {
		publishDate = *q.PublishDate
	}

	prev := s.snapshot()
	now := time.Now()
	if !s.inHistory(quoteID) {
		s.state.PublishedHistory = append(s.state.PublishedHistory,
			schedule.HistoryEntry{
				NewsletterNumber: newsletterNumber,
				QuoteID:          quoteID,
				PublishDate:      publishDate,
				PublishedAt:      now,
			})
	}
	s.flipEntries(quoteID, now)

	if err := Save(s.path, s.state); err != nil {
		s.state = prev
		return err
	}
	return nil
}

func (s *schedio) Scheduled() []schedule.Entry {
	var res []schedule.Entry
	for _, v := range s.state.Schedule {
		if v.Status == schedule.StatusScheduled {
			res = append(res, v)
		}
	}
	return res
}

func (s *schedio) History() []schedule.HistoryEntry {
	return slices.Clone(s.state.PublishedHistory)
}

func (s *schedio) RecentCategories(n int) []string {
	h := rotation.NewHistory(n)
	for _, v := range s.state.PublishedHistory {
		if q, ok := s.corpus.Find(v.QuoteID); ok {
			h.Push(q.Category)
		}
	}
	return h.Items()
}

func (s *schedio) GenerateWeeklySchedule(weeks int) ([]schedule.Entry, error) {
	var res []schedule.Entry
	planned := make(map[int]struct{})
	for _, v := range s.Scheduled() {
		planned[v.QuoteID] = struct{}{}
	}
	pool := corpus.Filter(s.corpus.Unpublished(), func(q quote.Quote) bool {
		_, ok := planned[q.ID]
		return !ok
	})

	freq := s.state.Settings.Frequency
	preferred := s.state.Settings.PreferredCategories
	date := newsletter.Today()
	for range weeks {
		q, ok := rotation.PickPreferred(pool, preferred)
		if !ok {
			break
		}
		entry, err := s.ScheduleQuote(q, date.Format(schedule.DateLayout))
		if err != nil {
			return res, err
		}
		res = append(res, entry)
		pool = corpus.Filter(pool, func(v quote.Quote) bool {
			return v.ID != q.ID
		})
		date = freq.Step(date)
	}
	return res, nil
}

func (s *schedio) Statistics() schedule.Statistics {
	return schedule.NewStatistics(
		s.corpus.Quotes(),
		s.state.NextNewsletterNumber,
		time.Now(),
	)
}

func (s *schedio) Reconcile() (schedule.Report, error) {
	var res schedule.Report
	for _, v := range s.state.PublishedHistory {
		q, ok := s.corpus.Find(v.QuoteID)
		if !ok || q.Published {
			continue
		}
		err := s.corpus.RecordPublication(corpus.Publication{
			ID:               v.QuoteID,
			PublishDate:      v.PublishDate,
			NewsletterNumber: v.NewsletterNumber,
		})
		if err != nil {
			return res, err
		}
		res.MarkedInCorpus = append(res.MarkedInCorpus, v.QuoteID)
	}

	prev := s.snapshot()
	now := time.Now()
	for _, q := range s.corpus.Quotes() {
		if !q.Published || s.inHistory(q.ID) {
			continue
		}
		entry := schedule.HistoryEntry{
			QuoteID:     q.ID,
			PublishedAt: now,
		}
		if q.NewsletterNumber != nil {
			entry.NewsletterNumber = *q.NewsletterNumber
		}
		if q.PublishDate != nil {
			entry.PublishDate = *q.PublishDate
		}
		s.state.PublishedHistory = append(s.state.PublishedHistory, entry)
		res.AddedToHistory = append(res.AddedToHistory, q.ID)
	}

	// a published quote is never published again, its pending entries are
	// stale whatever issue they were planned for
	for _, v := range s.Scheduled() {
		q, ok := s.corpus.Find(v.QuoteID)
		if !ok || !q.Published {
			continue
		}
		if s.flipEntries(q.ID, now) > 0 {
			res.ClosedEntries = append(res.ClosedEntries, q.ID)
		}
	}

	if len(res.AddedToHistory) > 0 || len(res.ClosedEntries) > 0 {
		if err := Save(s.path, s.state); err != nil {
			s.state = prev
			return res, err
		}
	}
	if !res.Empty() {
		slog.Info("Reconciled corpus and schedule",
			"marked_in_corpus", len(res.MarkedInCorpus),
			"added_to_history", len(res.AddedToHistory),
			"closed_entries", len(res.ClosedEntries),
		)
	}
	return res, nil
}

func (s *schedio) State() schedule.State {
	return s.snapshot()
}

func (s *schedio) inHistory(quoteID int) bool {
	return slices.ContainsFunc(s.state.PublishedHistory,
		func(v schedule.HistoryEntry) bool { return v.QuoteID == quoteID })
}

// flipEntries marks every pending entry of the quote as published and
// returns how many were changed.
func (s *schedio) flipEntries(quoteID int, at time.Time) int {
	var res int
	for i := range s.state.Schedule {
		e := &s.state.Schedule[i]
		if e.QuoteID != quoteID || e.Status != schedule.StatusScheduled {
			continue
		}
		e.Status = schedule.StatusPublished
		e.PublishedAt = &at
		res++
	}
	return res
}

func (s *schedio) snapshot() schedule.State {
	res := s.state
	res.Schedule = slices.Clone(s.state.Schedule)
	res.PublishedHistory = slices.Clone(s.state.PublishedHistory)
	res.Settings.PreferredCategories = slices.Clone(s.state.Settings.PreferredCategories)
	return res
}

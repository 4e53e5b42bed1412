// Package schedule keeps the association between newsletter issues and the
// quotes they feature.
package schedule

import (
	"time"

	"github.com/ichinichi/meigen/pkg/quote"
)

// DateLayout is the layout of publish dates.
const DateLayout = "2006-01-02"

// Status of a schedule entry.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
)

// Frequency of newsletter issues used for schedule planning.
type Frequency string

const (
	Weekly   Frequency = "weekly"
	Biweekly Frequency = "biweekly"
	Monthly  Frequency = "monthly"
)

// Step returns the date of the slot that follows t.
func (f Frequency) Step(t time.Time) time.Time {
	switch f {
	case Biweekly:
		return t.AddDate(0, 0, 14)
	case Monthly:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 7)
	}
}

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	switch f {
	case Weekly, Biweekly, Monthly:
		return true
	default:
		return false
	}
}

// Entry is a planned issue. Entries are never deleted.
type Entry struct {
	NewsletterNumber int        `json:"newsletter_number"`
	QuoteID          int        `json:"quote_id"`
	PublishDate      string     `json:"publish_date"`
	Status           Status     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
}

// HistoryEntry is a publication record.
type HistoryEntry struct {
	NewsletterNumber int       `json:"newsletter_number"`
	QuoteID          int       `json:"quote_id"`
	PublishDate      string    `json:"publish_date"`
	PublishedAt      time.Time `json:"published_at"`
}

// Settings control schedule planning.
type Settings struct {
	Frequency           Frequency `json:"frequency"`
	PreferredCategories []string  `json:"preferred_categories"`
	MaxQuotesPerIssue   int       `json:"max_quotes_per_issue"`
}

// DefaultSettings returns weekly planning with the high priority categories
// preferred.
func DefaultSettings() Settings {
	return Settings{
		Frequency:           Weekly,
		PreferredCategories: quote.HighPriorityCategories(),
		MaxQuotesPerIssue:   1,
	}
}

// State is the persisted schedule.
type State struct {
	NextNewsletterNumber int            `json:"next_newsletter_number"`
	Schedule             []Entry        `json:"schedule"`
	PublishedHistory     []HistoryEntry `json:"published_history"`
	Settings             Settings       `json:"settings"`
}

// NewState returns the state of a schedule that was never saved.
func NewState() State {
	return State{
		NextNewsletterNumber: 1,
		Schedule:             []Entry{},
		PublishedHistory:     []HistoryEntry{},
		Settings:             DefaultSettings(),
	}
}

// CategoryStats counts records of one category.
type CategoryStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
}

// Statistics summarises the corpus and the schedule.
type Statistics struct {
	TotalQuotes          int                      `json:"total_quotes"`
	PublishedCount       int                      `json:"published_count"`
	UnpublishedCount     int                      `json:"unpublished_count"`
	NextNewsletterNumber int                      `json:"next_newsletter_number"`
	Categories           map[string]CategoryStats `json:"category_statistics"`
	LastUpdate           time.Time                `json:"last_update"`
}

// NewStatistics counts records of qs.
func NewStatistics(qs []quote.Quote, nextNumber int, now time.Time) Statistics {
	res := Statistics{
		TotalQuotes:          len(qs),
		NextNewsletterNumber: nextNumber,
		Categories:           make(map[string]CategoryStats),
		LastUpdate:           now,
	}
	for _, q := range qs {
		cs := res.Categories[q.Category]
		cs.Total++
		if q.Published {
			cs.Published++
			res.PublishedCount++
		}
		res.Categories[q.Category] = cs
	}
	res.UnpublishedCount = res.TotalQuotes - res.PublishedCount
	return res
}

// Report describes what a reconciliation changed.
type Report struct {
	// MarkedInCorpus lists quote ids that were published according to the
	// history but not in the corpus.
	MarkedInCorpus []int

	// AddedToHistory lists quote ids that were published in the corpus but
	// missing from the history.
	AddedToHistory []int

	// ClosedEntries lists quote ids of published quotes whose schedule
	// entries were still pending.
	ClosedEntries []int
}

// Empty is true when nothing had to be changed.
func (r Report) Empty() bool {
	return len(r.MarkedInCorpus) == 0 &&
		len(r.AddedToHistory) == 0 &&
		len(r.ClosedEntries) == 0
}

// Ledger plans issues and records publications.
type Ledger interface {
	// ScheduleQuote appends an entry with the next newsletter number.
	// An empty publishDate means today. It does not publish the quote.
	ScheduleQuote(q quote.Quote, publishDate string) (Entry, error)

	// PublishQuote marks the quote published in the corpus first, then
	// records the publication in the schedule and closes every pending
	// entry of the quote. Unknown quote ids are ignored.
	PublishQuote(quoteID, newsletterNumber int) error

	// Scheduled returns entries that are not published yet.
	Scheduled() []Entry

	// History returns publication records, oldest first.
	History() []HistoryEntry

	// RecentCategories returns categories of the last n published quotes,
	// oldest first.
	RecentCategories(n int) []string

	// GenerateWeeklySchedule plans up to weeks issues starting today in
	// JST.
	GenerateWeeklySchedule(weeks int) ([]Entry, error)

	// Statistics summarises the corpus and the schedule.
	Statistics() Statistics

	// Reconcile repairs differences between the corpus ledger and the
	// publication history. It is idempotent.
	Reconcile() (Report, error)

	// State returns a copy of the schedule state.
	State() State
}

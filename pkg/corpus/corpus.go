// Package corpus describes the record set of parsed quotes together with
// the persisted ledger that tracks incremental parsing and publication.
package corpus

import (
	"time"

	"github.com/ichinichi/meigen/pkg/quote"
)

// Corpus is the authoritative set of quote records.
type Corpus interface {
	// Parse reads the corpus file and merges its records into the set.
	// With processAll false only records with ids above the last processed
	// id are returned. The set itself always holds every record from the
	// file. A missing corpus file is an error.
	Parse(processAll bool) ([]quote.Quote, error)

	// Quotes returns all records in corpus order.
	Quotes() []quote.Quote

	// Unpublished returns records that were never published.
	Unpublished() []quote.Quote

	// ByCategory returns records with the exact category label.
	ByCategory(category string) []quote.Quote

	// ByPriority returns records with the given priority.
	ByPriority(p quote.Priority) []quote.Quote

	// Find returns the record with the given id.
	Find(id int) (quote.Quote, bool)

	// FindByText returns the record whose text has the same fingerprint.
	FindByText(text string) (quote.Quote, bool)

	// Categories returns the sorted distinct category labels.
	Categories() []string

	// MarkPublished records a publication dated today and persists the
	// ledger. Unknown ids and already published records are left alone.
	MarkPublished(id, newsletterNumber int) error

	// RecordPublication is MarkPublished with an explicit publish date.
	RecordPublication(p Publication) error

	// State returns a copy of the ledger state.
	State() State
}

// State is the persisted ledger.
type State struct {
	// LastProcessedID never decreases.
	LastProcessedID int `json:"last_processed_id"`

	// TotalQuotes mirrors LastProcessedID.
	TotalQuotes int `json:"total_quotes"`

	LastUpdate     *time.Time `json:"last_update"`
	PublishedCount int        `json:"published_count"`

	// Publications keeps the publication status of every published record,
	// so it survives restarts.
	Publications []Publication `json:"publications,omitempty"`
}

// Publication is the publication status of one record.
type Publication struct {
	ID               int    `json:"id"`
	PublishDate      string `json:"publish_date"`
	NewsletterNumber int    `json:"newsletter_number"`
}

// Copy returns a deep copy of the state.
func (s State) Copy() State {
	res := s
	if s.LastUpdate != nil {
		t := *s.LastUpdate
		res.LastUpdate = &t
	}
	if s.Publications != nil {
		res.Publications = append([]Publication(nil), s.Publications...)
	}
	return res
}

// Publication returns the publication status of a record.
func (s State) Publication(id int) (Publication, bool) {
	for _, v := range s.Publications {
		if v.ID == id {
			return v, true
		}
	}
	return Publication{}, false
}

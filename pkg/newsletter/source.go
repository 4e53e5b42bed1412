package newsletter

import "github.com/ichinichi/meigen/pkg/quote"

// QuoteSource supplies the featured quote of an issue.
type QuoteSource interface {
	// RandomQuote picks a quote. With useCorpus it picks among unpublished
	// corpus records, avoiding categories of recent issues when no
	// category is given. Without it, it picks from the legacy transcript
	// list, which is not tracked.
	RandomQuote(category string, useCorpus bool) (quote.Featured, bool)

	// MarkPublished records that the corpus quote appeared in the issue.
	MarkPublished(id, issueNumber int) error

	// Publish marks a featured quote as published. Quotes without an id
	// are looked up in the corpus by their text.
	Publish(q quote.Featured, issueNumber int) error

	// Categories lists categories of both sources.
	Categories() []string

	// Count is the number of quotes in both sources.
	Count() int
}

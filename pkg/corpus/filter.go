package corpus

import (
	"slices"

	"github.com/ichinichi/meigen/pkg/quote"
)

// Unpublished filters out published records.
func Unpublished(qs []quote.Quote) []quote.Quote {
	return Filter(qs, func(q quote.Quote) bool { return !q.Published })
}

// ByCategory keeps records with the exact category label.
func ByCategory(qs []quote.Quote, category string) []quote.Quote {
	return Filter(qs, func(q quote.Quote) bool { return q.Category == category })
}

// ByPriority keeps records with priority p.
func ByPriority(qs []quote.Quote, p quote.Priority) []quote.Quote {
	return Filter(qs, func(q quote.Quote) bool { return q.Priority == p })
}

// Filter returns records for which keep is true, order preserved.
// The result is never nil.
func Filter(qs []quote.Quote, keep func(quote.Quote) bool) []quote.Quote {
	res := make([]quote.Quote, 0, len(qs))
	for _, q := range qs {
		if keep(q) {
			res = append(res, q)
		}
	}
	return res
}

// Categories returns sorted distinct category labels.
func Categories(qs []quote.Quote) []string {
	seen := make(map[string]struct{})
	var res []string
	for _, q := range qs {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		res = append(res, q.Category)
	}
	slices.Sort(res)
	return res
}

// ApplyPublication sets the publication fields of q.
func ApplyPublication(q *quote.Quote, p Publication) {
	date := p.PublishDate
	num := p.NewsletterNumber
	q.Published = true
	q.PublishDate = &date
	q.NewsletterNumber = &num
}

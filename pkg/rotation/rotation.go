// Package rotation picks the next quote to feature. It never picks a
// published record, so every saying appears in the newsletter at most once.
package rotation

import (
	"math/rand/v2"

	"github.com/ichinichi/meigen/pkg/quote"
)

// Next deterministically picks an unpublished quote from pool.
//
// When preferred is not empty and the pool has unpublished records of that
// category, the pick is made among them: high priority first, then the
// smallest id. Otherwise the smallest-id high priority record wins, and
// without any high priority records the smallest id overall.
// It returns false when the pool has no unpublished records.
func Next(pool []quote.Quote, preferred string) (quote.Quote, bool) {
	var res quote.Quote
	cands := unpublished(pool)
	if len(cands) == 0 {
		return res, false
	}

	if preferred != "" {
		if q, ok := best(cands, func(q quote.Quote) bool {
			return q.Category == preferred
		}); ok {
			return q, true
		}
	}

	return best(cands, func(quote.Quote) bool { return true })
}

// Random picks an unpublished quote uniformly at random.
//
// When category is given only records of that category are considered.
// Otherwise, if recent is not nil, records whose category is in the recent
// history are skipped as long as other records remain. rnd may be nil, then
// the global source is used.
func Random(
	pool []quote.Quote,
	category string,
	recent *History,
	rnd *rand.Rand,
) (quote.Quote, bool) {
	var res quote.Quote
	cands := unpublished(pool)
	if category != "" {
		cands = filter(cands, func(q quote.Quote) bool {
			return q.Category == category
		})
	} else if recent.Len() > 0 {
		fresh := filter(cands, func(q quote.Quote) bool {
			return !recent.Contains(q.Category)
		})
		if len(fresh) > 0 {
			cands = fresh
		}
	}

	if len(cands) == 0 {
		return res, false
	}

	var idx int
	if rnd == nil {
		idx = rand.IntN(len(cands))
	} else {
		idx = rnd.IntN(len(cands))
	}
	return cands[idx], true
}

// PickPreferred walks preferred categories in order and returns the
// smallest-id unpublished record of the first category that has one.
// Without a match it falls back to the smallest unpublished id.
func PickPreferred(pool []quote.Quote, preferred []string) (quote.Quote, bool) {
	cands := unpublished(pool)
	for _, c := range preferred {
		if q, ok := smallest(cands, func(q quote.Quote) bool {
			return q.Category == c
		}); ok {
			return q, true
		}
	}
	return smallest(cands, func(quote.Quote) bool { return true })
}

// best returns the matching record with high priority and smallest id,
// or the smallest-id match when none has high priority.
func best(qs []quote.Quote, match func(quote.Quote) bool) (quote.Quote, bool) {
	if q, ok := smallest(qs, func(q quote.Quote) bool {
		return match(q) && q.IsHighPriority()
	}); ok {
		return q, true
	}
	return smallest(qs, match)
}

func smallest(qs []quote.Quote, match func(quote.Quote) bool) (quote.Quote, bool) {
	var res quote.Quote
	var found bool
	for _, q := range qs {
		if !match(q) {
			continue
		}
		if !found || q.ID < res.ID {
			res = q
			found = true
		}
	}
	return res, found
}

func unpublished(qs []quote.Quote) []quote.Quote {
	return filter(qs, func(q quote.Quote) bool { return !q.Published })
}

func filter(qs []quote.Quote, keep func(quote.Quote) bool) []quote.Quote {
	var res []quote.Quote
	for _, q := range qs {
		if keep(q) {
			res = append(res, q)
		}
	}
	return res
}

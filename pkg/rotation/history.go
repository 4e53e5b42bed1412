package rotation

import "slices"

// History is a bounded list of recently used values, oldest first.
// Pushing to a full history drops the oldest value.
type History struct {
	max   int
	items []string
}

// NewHistory creates a history that keeps at most n values. A non-positive
// n creates a history that keeps nothing.
func NewHistory(n int) *History {
	if n < 0 {
		n = 0
	}
	return &History{max: n}
}

// Push appends v and trims the history to its maximum length.
func (h *History) Push(v string) {
	h.items = append(h.items, v)
	if over := len(h.items) - h.max; over > 0 {
		h.items = slices.Clone(h.items[over:])
	}
}

// Contains reports whether v is in the history. A nil history contains
// nothing.
func (h *History) Contains(v string) bool {
	if h == nil {
		return false
	}
	return slices.Contains(h.items, v)
}

// Items returns a copy of the values, oldest first.
func (h *History) Items() []string {
	if h == nil {
		return nil
	}
	return slices.Clone(h.items)
}

// Len returns the number of values kept.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.items)
}

package spacedrep

import (
	"sort"
	"time"
)

// Filter restricts due-set selection to one topic bucket.
// The zero value means mixed practice (no filter).
type Filter struct {
	Topic string
}

// Mixed reports whether the filter selects everything.
func (f Filter) Mixed() bool {
	return f.Topic == ""
}

func (f Filter) matches(it ReviewItem) bool {
	return f.Mixed() || it.Topic == f.Topic
}

// SelectDue returns the keys due for practice on the given date, capped at
// limit, plus the shortfall the caller should fill from fresh content.
// Suspended items are excluded. Ordering is deterministic: ascending next
// review date, then key. No randomization here; variety is a presentation
// concern.
func SelectDue(items []ReviewItem, today time.Time, f Filter, limit int) ([]string, int) {
	today = DateOf(today)

	var due []ReviewItem
	for _, it := range items {
		if !f.matches(it) {
			continue
		}
		if it.Status != StatusActive {
			continue
		}
		if it.IsDue(today) {
			due = append(due, it)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		di, dj := DateOf(due[i].NextReview), DateOf(due[j].NextReview)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return due[i].Key < due[j].Key
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	keys := make([]string, len(due))
	for i, it := range due {
		keys[i] = it.Key
	}

	shortfall := 0
	if limit > 0 && len(keys) < limit {
		shortfall = limit - len(keys)
	}
	return keys, shortfall
}

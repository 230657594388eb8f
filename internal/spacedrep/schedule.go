package spacedrep

import "time"

// Ladder defines the fixed interval schedule in days. A correct review
// advances to the first rung strictly greater than the current interval;
// a wrong review drops back to the first rung.
var Ladder = []int{1, 3, 7, 14, 30, 60}

// TopIntervalDays is the last rung. Items at the top stay there on
// correct reviews.
const TopIntervalDays = 60

// Policy configures when a review item leaves the active pool.
type Policy struct {
	// SuspendAfterTopStreak suspends an item once it has been answered
	// correctly this many times in a row at the top rung. 0 disables
	// suspension entirely.
	SuspendAfterTopStreak int
}

// NewItem enrolls a key into spaced repetition. Enrollment happens on the
// first wrong answer for the key, or through explicit seeding; a key whose
// first-ever answer is correct is not tracked.
func NewItem(key, topic string, kind Namespace, today time.Time) ReviewItem {
	today = DateOf(today)
	return ReviewItem{
		Key:        key,
		Topic:      topic,
		Kind:       kind,
		Status:     StatusActive,
		Interval:   Ladder[0],
		NextReview: today.AddDate(0, 0, Ladder[0]),
	}
}

// Schedule applies one review outcome to an existing item and returns the
// updated item. Not idempotent: each call advances state, so the caller
// owns exactly-once application per real-world outcome.
func Schedule(item ReviewItem, correct bool, today time.Time, pol Policy) ReviewItem {
	today = DateOf(today)

	if correct {
		atTop := item.Interval >= TopIntervalDays
		item.Interval = nextRung(item.Interval)
		if atTop {
			item.TopStreak++
			if pol.SuspendAfterTopStreak > 0 && item.TopStreak >= pol.SuspendAfterTopStreak {
				item.Status = StatusSuspended
			}
		}
	} else {
		item.Interval = Ladder[0]
		item.TopStreak = 0
	}

	item.NextReview = today.AddDate(0, 0, item.Interval)
	return item
}

// nextRung returns the first ladder rung strictly greater than current,
// or the top rung if none is. Lookup by value, not index: an interval
// that is off-ladder (e.g. after a config change) still lands on a rung.
func nextRung(current int) int {
	for _, rung := range Ladder {
		if rung > current {
			return rung
		}
	}
	return TopIntervalDays
}

package spacedrep

import "time"

// Status marks whether a review item participates in due-set selection.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Namespace tags which kind of reviewable unit a key identifies.
// Both namespaces are scheduled identically; the tag exists so callers
// can tell verb drills and grammar-topic drills apart.
type Namespace string

const (
	NamespaceVerb  Namespace = "verb"
	NamespaceTopic Namespace = "topic"
)

// ReviewItem holds the spaced repetition state for a single reviewable unit.
// One record per (learner, key); records are never deleted, only suspended.
type ReviewItem struct {
	Key      string
	Topic    string
	Kind     Namespace
	Status   Status
	Interval int       // current spacing in days
	NextReview time.Time // calendar date the item becomes due
	// TopStreak counts consecutive correct reviews answered while the item
	// sat at the top rung. Feeds the suspension policy.
	TopStreak int
}

// IsDue reports whether the item is due on the given date.
func (it *ReviewItem) IsDue(today time.Time) bool {
	return !DateOf(today).Before(DateOf(it.NextReview))
}

// DateOf truncates a timestamp to its calendar date in UTC. All scheduling
// arithmetic works on dates; time-of-day never matters.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

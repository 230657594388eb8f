package errorpatterns

import "time"

// Status of a recurring-mistake pattern.
type Status string

const (
	// StatusWatching means the pattern has been seen but is not yet
	// confirmed as a real weakness.
	StatusWatching Status = "watching"
	// StatusActive means the pattern recurs often enough that content
	// generation should target it.
	StatusActive Status = "active"
)

// ActivationThreshold is the occurrence count at which a watched pattern
// becomes active.
const ActivationThreshold = 3

// Observation is a single detected mistake reported alongside an exercise
// result. Detection itself belongs to the exercise collaborator; the
// engine only keeps the ledger.
type Observation struct {
	Pattern     string
	Verb        string
	Description string
	Example     string
}

// Pattern is the accumulated ledger entry for one (pattern, verb) pair.
type Pattern struct {
	Pattern     string
	Verb        string
	Description string
	Example     string
	Occurrences int
	Status      Status
	LastSeen    time.Time
}

// New starts a ledger entry from its first observation.
func New(obs Observation, today time.Time) Pattern {
	p := Pattern{
		Pattern:     obs.Pattern,
		Verb:        obs.Verb,
		Description: obs.Description,
		Example:     obs.Example,
		Status:      StatusWatching,
	}
	return p.Observe(today)
}

// Observe folds one more occurrence into the entry, promoting it to
// active once it has recurred ActivationThreshold times.
func (p Pattern) Observe(today time.Time) Pattern {
	p.Occurrences++
	p.LastSeen = dateOf(today)
	if p.Occurrences >= ActivationThreshold {
		p.Status = StatusActive
	}
	return p
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

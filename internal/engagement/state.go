package engagement

import "time"

// XPPerLevel is the XP span of one level. Level is always derived from
// TotalXP, never stored, so the two can never drift apart.
const XPPerLevel = 500

// State is the per-learner engagement record: daily streak, streak freeze
// and lifetime XP. Mutated only through ApplySession and AwardXP, one
// session outcome per call.
type State struct {
	CurrentStreak   int
	LongestStreak   int
	LastPractice    *time.Time // calendar date; nil = never practiced
	FreezeAvailable bool
	FreezeUsed      *time.Time // calendar date the freeze was last consumed
	TotalXP         int
}

// NewState returns the default-initialized record for a learner with no
// history. The weekly freeze starts available.
func NewState() State {
	return State{FreezeAvailable: true}
}

// Level derives the learner level from total XP.
func (s State) Level() int {
	return s.TotalXP/XPPerLevel + 1
}

// AwardXP adds a session's XP delta. TotalXP is monotonically
// non-decreasing; negative deltas are ignored.
func AwardXP(s State, delta int) State {
	if delta > 0 {
		s.TotalXP += delta
	}
	return s
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

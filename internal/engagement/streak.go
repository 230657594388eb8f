package engagement

import "time"

// ApplySession advances the daily streak for one completed practice
// session on the given date. Idempotent for repeat sessions on the same
// day: only the first session of a day moves the streak.
//
// A gap of two or more days consumes the weekly streak freeze, if
// available, and continues the streak; one freeze covers the whole gap.
// Whether a freeze should instead only bridge a single missed day is
// still open with product; this implements the continuation reading.
func ApplySession(s State, today time.Time) State {
	today = dateOf(today)
	s = maybeResetFreeze(s, today)

	switch {
	case s.LastPractice == nil:
		s.CurrentStreak = 1

	case !today.After(dateOf(*s.LastPractice)):
		// Same day (or a clock that went backwards): no-op.
		return s

	case dateOf(*s.LastPractice).AddDate(0, 0, 1).Equal(today):
		s.CurrentStreak++

	default:
		if s.FreezeAvailable {
			s.FreezeAvailable = false
			used := today
			s.FreezeUsed = &used
			s.CurrentStreak++
		} else {
			s.CurrentStreak = 1
		}
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	practiced := today
	s.LastPractice = &practiced
	return s
}

// maybeResetFreeze restores the streak freeze at the start of each new ISO
// week. Checked lazily on every ApplySession call; the engine runs no
// timers.
func maybeResetFreeze(s State, today time.Time) State {
	if s.FreezeAvailable || s.FreezeUsed == nil {
		return s
	}
	uy, uw := s.FreezeUsed.ISOWeek()
	ty, tw := today.ISOWeek()
	if ty > uy || (ty == uy && tw > uw) {
		s.FreezeAvailable = true
	}
	return s
}

package engagement

// XP awards per session.
const (
	XPCorrect      = 10 // per correct exercise
	XPRunBonus     = 5  // per correct exercise inside a run of RunBonusFrom+
	XPPerfectBonus = 50 // flat, for a 100% correct non-empty session
	RunBonusFrom   = 3  // run length at which the bonus kicks in
)

// SessionXP computes the XP delta for one session's ordered results.
// The run counter is session-local and distinct from the daily streak:
// the bonus applies to each correct answer from the third of a run
// onwards, so five straight correct answers earn 5*10 + 3*5 + 50 = 115.
func SessionXP(correct []bool) int {
	xp := 0
	run := 0
	perfect := len(correct) > 0

	for _, c := range correct {
		if !c {
			run = 0
			perfect = false
			continue
		}
		run++
		xp += XPCorrect
		if run >= RunBonusFrom {
			xp += XPRunBonus
		}
	}

	if perfect {
		xp += XPPerfectBonus
	}
	return xp
}

// BestRun returns the longest run of consecutive correct answers, for the
// session history record.
func BestRun(correct []bool) int {
	best, run := 0, 0
	for _, c := range correct {
		if c {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

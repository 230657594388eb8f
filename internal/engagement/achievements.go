package engagement

// AchievementKey identifies an achievement. At most one unlock record
// exists per (learner, key); the storage layer enforces the set semantics.
type AchievementKey string

const (
	AchFirstSession AchievementKey = "first_session"
	AchStreak3      AchievementKey = "streak_3"
	AchPerfect5     AchievementKey = "perfect_5"
)

// SessionShape is what achievement predicates see about the session that
// was just committed.
type SessionShape struct {
	Exercises int
	Correct   int
}

// Candidates returns the achievements whose predicates hold after a
// session has been applied to the state. The caller records them
// idempotently and surfaces only the newly created ones.
func Candidates(s State, shape SessionShape) []AchievementKey {
	// Any completed session satisfies first_session.
	keys := []AchievementKey{AchFirstSession}

	if s.CurrentStreak >= 3 {
		keys = append(keys, AchStreak3)
	}
	// Session-shape-specific: exactly five exercises, all correct.
	if shape.Exercises == 5 && shape.Correct == 5 {
		keys = append(keys, AchPerfect5)
	}
	return keys
}

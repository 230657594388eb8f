package mastery

// Level represents a topic's position in the mastery ladder.
type Level string

const (
	LevelLearning   Level = "LEARNING"
	LevelPracticing Level = "PRACTICING"
	LevelMastered   Level = "MASTERED"
)

// Levels holds the thresholds that derive a mastery level from the
// counters. The numbers are product knobs, not engine constants, so they
// are injected (see config) rather than hardcoded here.
type Levels struct {
	PracticingAttempts int     // attempts to leave LEARNING
	MasteredAttempts   int     // attempts to be eligible for MASTERED
	MasteredAccuracy   float64 // accuracy required for MASTERED
}

// TopicMastery accumulates per-topic attempt counters for a learner.
// Counters only ever grow; correct attempts can never exceed total.
type TopicMastery struct {
	TopicKey        string
	TotalAttempts   int
	CorrectAttempts int
}

// RecordAttempt returns the mastery record with one more attempt folded in.
func (tm TopicMastery) RecordAttempt(correct bool) TopicMastery {
	tm.TotalAttempts++
	if correct {
		tm.CorrectAttempts++
	}
	return tm
}

// Accuracy returns the correct ratio, 0 for an untouched topic.
func (tm TopicMastery) Accuracy() float64 {
	if tm.TotalAttempts == 0 {
		return 0
	}
	return float64(tm.CorrectAttempts) / float64(tm.TotalAttempts)
}

// Level derives the mastery level under the given thresholds. Derivation
// is monotone in the counters, so a topic never moves backwards between
// sessions unless its accuracy drops below the mastered bar.
func (tm TopicMastery) Level(cfg Levels) Level {
	if tm.TotalAttempts >= cfg.MasteredAttempts && tm.Accuracy() >= cfg.MasteredAccuracy {
		return LevelMastered
	}
	if tm.TotalAttempts >= cfg.PracticingAttempts {
		return LevelPracticing
	}
	return LevelLearning
}

// Valid reports whether the counters satisfy the record invariant.
// An invalid record read from storage is corrupted state: the storage
// boundary logs it and resets the record rather than crashing.
func (tm TopicMastery) Valid() bool {
	return tm.TotalAttempts >= 0 &&
		tm.CorrectAttempts >= 0 &&
		tm.CorrectAttempts <= tm.TotalAttempts
}

// Delta reports one session's worth of counter movement for a topic.
type Delta struct {
	TopicKey   string
	Attempts   int
	Correct    int
	LevelAfter Level
}

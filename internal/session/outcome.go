package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/vincentb/aurelie/internal/errorpatterns"
	"github.com/vincentb/aurelie/internal/spacedrep"
)

// ErrIncompleteSession rejects a session outcome that fails the
// completeness precondition. Nothing is persisted; the caller should tell
// the learner the session was not saved.
var ErrIncompleteSession = errors.New("session: incomplete session outcome")

// ExerciseResult is one graded exercise within a session, in the order it
// was answered.
type ExerciseResult struct {
	ItemKey    string
	TopicKey   string
	Kind       spacedrep.Namespace
	Correct    bool
	AnsweredAt time.Time

	// Patterns carries mistake patterns the exercise collaborator
	// detected on this answer; usually empty, and only meaningful on
	// wrong answers.
	Patterns []errorpatterns.Observation
}

// Outcome is the complete, immutable record of one practice session.
// Partial sessions must not be committed: the UI discards them entirely.
type Outcome struct {
	Completed bool
	Results   []ExerciseResult
}

// Validate checks the completeness precondition for commit.
func (o Outcome) Validate() error {
	if !o.Completed {
		return fmt.Errorf("%w: session not completed", ErrIncompleteSession)
	}
	if len(o.Results) == 0 {
		return fmt.Errorf("%w: no exercise results", ErrIncompleteSession)
	}
	for i, r := range o.Results {
		if r.ItemKey == "" {
			return fmt.Errorf("%w: result %d has no item key", ErrIncompleteSession, i)
		}
		if r.TopicKey == "" {
			return fmt.Errorf("%w: result %d has no topic key", ErrIncompleteSession, i)
		}
	}
	return nil
}

// correctFlags projects the per-exercise correctness sequence.
func (o Outcome) correctFlags() []bool {
	flags := make([]bool, len(o.Results))
	for i, r := range o.Results {
		flags[i] = r.Correct
	}
	return flags
}

// correctCount returns how many exercises were answered correctly.
func (o Outcome) correctCount() int {
	n := 0
	for _, r := range o.Results {
		if r.Correct {
			n++
		}
	}
	return n
}

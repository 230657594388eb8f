package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vincentb/aurelie/internal/engagement"
	"github.com/vincentb/aurelie/internal/errorpatterns"
	"github.com/vincentb/aurelie/internal/mastery"
	"github.com/vincentb/aurelie/internal/spacedrep"
	"github.com/vincentb/aurelie/internal/store"
)

// Config tunes the service's injected policies.
type Config struct {
	Policy spacedrep.Policy
	Levels mastery.Levels
	// Clock overrides the wall clock, mainly for tests. Defaults to
	// time.Now.
	Clock func() time.Time
}

// Service is the engine facade the UI collaborator talks to: due-set
// selection and atomic session commit, one learner per call.
//
// The service itself holds no learner state and no locks; callers must
// serialize commits per learner.
type Service struct {
	repo   store.Repo
	log    *logrus.Logger
	policy spacedrep.Policy
	levels mastery.Levels
	now    func() time.Time
}

// NewService wires the aggregator over a repository.
func NewService(repo store.Repo, log *logrus.Logger, cfg Config) *Service {
	if log == nil {
		log = logrus.New()
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		repo:   repo,
		log:    log,
		policy: cfg.Policy,
		levels: cfg.Levels,
		now:    now,
	}
}

// CommitResult reports everything a commit changed, for user-visible
// feedback.
type CommitResult struct {
	SessionID     string
	UpdatedItems  []spacedrep.ReviewItem
	Engagement    engagement.State
	Unlocked      []engagement.AchievementKey
	MasteryDeltas []mastery.Delta
	XPAwarded     int
}

// SelectDue returns the ordered keys due for practice on the given date
// plus the shortfall the caller should fill from fresh content.
func (s *Service) SelectDue(ctx context.Context, learnerID string, today time.Time, f spacedrep.Filter, limit int) ([]string, int, error) {
	items, err := s.repo.ReviewItems(ctx, learnerID)
	if err != nil {
		return nil, 0, fmt.Errorf("select due: %w", err)
	}
	keys, shortfall := spacedrep.SelectDue(items, today, f, limit)
	return keys, shortfall, nil
}

// Commit folds one completed session into scheduling, mastery, engagement
// and achievement state. All reads happen before any write; all writes
// land in a single transaction, so callers observe either every update or
// none.
func (s *Service) Commit(ctx context.Context, learnerID string, outcome Outcome) (*CommitResult, error) {
	if err := outcome.Validate(); err != nil {
		return nil, err
	}

	today := spacedrep.DateOf(s.now())

	// Read phase. A failed read aborts before anything is written.
	eng, err := s.repo.EngagementState(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	items, err := s.loadItems(ctx, learnerID, outcome)
	if err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	masteries, err := s.loadMasteries(ctx, learnerID, outcome)
	if err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	patterns, err := s.loadPatterns(ctx, learnerID, outcome)
	if err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	// Pure fold over the ordered results.
	touched := s.foldItems(items, outcome, today)
	deltas := s.foldMasteries(masteries, outcome)
	obs := foldPatterns(patterns, outcome, today)

	// Engagement applies exactly once per session.
	eng = engagement.ApplySession(eng, today)
	xp := engagement.SessionXP(outcome.correctFlags())
	eng = engagement.AwardXP(eng, xp)

	shape := engagement.SessionShape{
		Exercises: len(outcome.Results),
		Correct:   outcome.correctCount(),
	}
	candidates := engagement.Candidates(eng, shape)

	result := &CommitResult{
		SessionID:     uuid.NewString(),
		UpdatedItems:  touched,
		Engagement:    eng,
		MasteryDeltas: deltas,
		XPAwarded:     xp,
	}

	// Write phase: one transaction, all or nothing.
	err = s.repo.InTx(ctx, func(tx store.Repo) error {
		for _, it := range touched {
			if err := tx.PutReviewItem(ctx, learnerID, it); err != nil {
				return err
			}
		}
		for topic, tm := range masteries {
			if err := tx.PutTopicMastery(ctx, learnerID, *tm); err != nil {
				return fmt.Errorf("topic %s: %w", topic, err)
			}
		}
		if err := tx.PutEngagementState(ctx, learnerID, eng); err != nil {
			return err
		}
		for _, key := range candidates {
			created, err := tx.RecordAchievement(ctx, learnerID, key, s.now())
			if err != nil {
				return err
			}
			if created {
				result.Unlocked = append(result.Unlocked, key)
			}
		}
		for _, p := range obs {
			if err := tx.PutErrorPattern(ctx, learnerID, p); err != nil {
				return err
			}
		}
		return tx.AppendSessionResult(ctx, learnerID, s.sessionRecord(result.SessionID, outcome, today, xp))
	})
	if err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"learner":   learnerID,
		"session":   result.SessionID,
		"exercises": shape.Exercises,
		"correct":   shape.Correct,
		"xp":        xp,
		"streak":    eng.CurrentStreak,
	}).Info("session committed")

	return result, nil
}

// loadItems reads the review item for every distinct key in the outcome.
// Absent keys map to nil: whether a record gets created depends on the
// fold.
func (s *Service) loadItems(ctx context.Context, learnerID string, outcome Outcome) (map[string]*spacedrep.ReviewItem, error) {
	items := make(map[string]*spacedrep.ReviewItem)
	for _, r := range outcome.Results {
		if _, seen := items[r.ItemKey]; seen {
			continue
		}
		it, err := s.repo.ReviewItem(ctx, learnerID, r.ItemKey)
		if err != nil {
			return nil, err
		}
		items[r.ItemKey] = it
	}
	return items, nil
}

func (s *Service) loadMasteries(ctx context.Context, learnerID string, outcome Outcome) (map[string]*mastery.TopicMastery, error) {
	masteries := make(map[string]*mastery.TopicMastery)
	for _, r := range outcome.Results {
		if _, seen := masteries[r.TopicKey]; seen {
			continue
		}
		tm, err := s.repo.TopicMastery(ctx, learnerID, r.TopicKey)
		if err != nil {
			return nil, err
		}
		if tm == nil {
			tm = &mastery.TopicMastery{TopicKey: r.TopicKey}
		}
		masteries[r.TopicKey] = tm
	}
	return masteries, nil
}

func (s *Service) loadPatterns(ctx context.Context, learnerID string, outcome Outcome) (map[[2]string]*errorpatterns.Pattern, error) {
	patterns := make(map[[2]string]*errorpatterns.Pattern)
	for _, r := range outcome.Results {
		for _, o := range r.Patterns {
			k := [2]string{o.Pattern, o.Verb}
			if _, seen := patterns[k]; seen {
				continue
			}
			p, err := s.repo.ErrorPattern(ctx, learnerID, o.Pattern, o.Verb)
			if err != nil {
				return nil, err
			}
			patterns[k] = p
		}
	}
	return patterns, nil
}

// foldItems applies each result to its item in sequence. Within one
// session the same key may be tested more than once; outcomes apply
// chronologically and the last one determines the saved state.
func (s *Service) foldItems(items map[string]*spacedrep.ReviewItem, outcome Outcome, today time.Time) []spacedrep.ReviewItem {
	var order []string
	for _, r := range outcome.Results {
		it := items[r.ItemKey]
		switch {
		case it != nil:
			updated := spacedrep.Schedule(*it, r.Correct, today, s.policy)
			items[r.ItemKey] = &updated
		case r.Correct:
			// First-time correct with no record: not tracked.
			continue
		default:
			// First wrong answer enrolls the key at the bottom rung.
			created := spacedrep.NewItem(r.ItemKey, r.TopicKey, r.Kind, today)
			items[r.ItemKey] = &created
		}
		if !contains(order, r.ItemKey) {
			order = append(order, r.ItemKey)
		}
	}

	touched := make([]spacedrep.ReviewItem, 0, len(order))
	for _, key := range order {
		touched = append(touched, *items[key])
	}
	return touched
}

func (s *Service) foldMasteries(masteries map[string]*mastery.TopicMastery, outcome Outcome) []mastery.Delta {
	deltaAttempts := make(map[string]*mastery.Delta)
	var order []string

	for _, r := range outcome.Results {
		tm := masteries[r.TopicKey]
		*tm = tm.RecordAttempt(r.Correct)

		d, ok := deltaAttempts[r.TopicKey]
		if !ok {
			d = &mastery.Delta{TopicKey: r.TopicKey}
			deltaAttempts[r.TopicKey] = d
			order = append(order, r.TopicKey)
		}
		d.Attempts++
		if r.Correct {
			d.Correct++
		}
	}

	deltas := make([]mastery.Delta, 0, len(order))
	for _, topic := range order {
		d := deltaAttempts[topic]
		d.LevelAfter = masteries[topic].Level(s.levels)
		deltas = append(deltas, *d)
	}
	return deltas
}

func foldPatterns(patterns map[[2]string]*errorpatterns.Pattern, outcome Outcome, today time.Time) []errorpatterns.Pattern {
	var order [][2]string
	for _, r := range outcome.Results {
		for _, o := range r.Patterns {
			k := [2]string{o.Pattern, o.Verb}
			if p := patterns[k]; p != nil {
				updated := p.Observe(today)
				patterns[k] = &updated
			} else {
				created := errorpatterns.New(o, today)
				patterns[k] = &created
			}
			if !containsKey(order, k) {
				order = append(order, k)
			}
		}
	}

	out := make([]errorpatterns.Pattern, 0, len(order))
	for _, k := range order {
		out = append(out, *patterns[k])
	}
	return out
}

func (s *Service) sessionRecord(sessionID string, outcome Outcome, today time.Time, xp int) store.SessionRecord {
	details := make([]store.ExerciseDetail, len(outcome.Results))
	for i, r := range outcome.Results {
		details[i] = store.ExerciseDetail{Key: r.ItemKey, Topic: r.TopicKey, Correct: r.Correct}
	}
	return store.SessionRecord{
		SessionID: sessionID,
		Date:      today,
		Exercises: len(outcome.Results),
		Correct:   outcome.correctCount(),
		BestRun:   engagement.BestRun(outcome.correctFlags()),
		XPAwarded: xp,
		Details:   details,
	}
}

func contains(keys []string, k string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

func containsKey(keys [][2]string, k [2]string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

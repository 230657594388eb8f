package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vincentb/aurelie/internal/engagement"
	"github.com/vincentb/aurelie/internal/errorpatterns"
	"github.com/vincentb/aurelie/internal/mastery"
	"github.com/vincentb/aurelie/internal/spacedrep"
)

// ErrUnavailable tags repository failures so callers can degrade
// gracefully instead of persisting partial state.
// Check with errors.Is(err, store.ErrUnavailable).
var ErrUnavailable = errors.New("store: storage unavailable")

// unavailable wraps a driver error under ErrUnavailable.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
}

// UnlockedAchievement is one recorded achievement unlock.
type UnlockedAchievement struct {
	Key        engagement.AchievementKey
	UnlockedAt time.Time
}

// SessionRecord is one entry of the session history.
type SessionRecord struct {
	SessionID string
	Date      time.Time
	Exercises int
	Correct   int
	BestRun   int
	XPAwarded int
	Details   []ExerciseDetail
}

// ExerciseDetail mirrors one exercise result for the history record.
type ExerciseDetail struct {
	Key     string
	Topic   string
	Correct bool
}

// Repo is the repository boundary the engine consumes. All methods take
// an explicit learner ID; the engine holds no implicit learner. Reads
// return zero-value/absent results for missing records and tag every
// storage failure with ErrUnavailable.
//
// Implementations must make InTx atomic: either every write inside fn is
// applied or none is.
type Repo interface {
	// ReviewItem returns the item for (learner, key), or nil if the key
	// has never been enrolled.
	ReviewItem(ctx context.Context, learnerID, key string) (*spacedrep.ReviewItem, error)
	ReviewItems(ctx context.Context, learnerID string) ([]spacedrep.ReviewItem, error)
	// PutReviewItem creates or replaces the item for (learner, item.Key).
	PutReviewItem(ctx context.Context, learnerID string, item spacedrep.ReviewItem) error

	// EngagementState returns the learner's record, default-initialized
	// if the learner has never practiced.
	EngagementState(ctx context.Context, learnerID string) (engagement.State, error)
	PutEngagementState(ctx context.Context, learnerID string, s engagement.State) error

	// TopicMastery returns nil for a topic with no record.
	TopicMastery(ctx context.Context, learnerID, topicKey string) (*mastery.TopicMastery, error)
	TopicMasteries(ctx context.Context, learnerID string) ([]mastery.TopicMastery, error)
	PutTopicMastery(ctx context.Context, learnerID string, tm mastery.TopicMastery) error

	// RecordAchievement is idempotent; it reports whether a new unlock
	// record was created.
	RecordAchievement(ctx context.Context, learnerID string, key engagement.AchievementKey, at time.Time) (bool, error)
	Achievements(ctx context.Context, learnerID string) ([]UnlockedAchievement, error)

	ErrorPattern(ctx context.Context, learnerID, pattern, verb string) (*errorpatterns.Pattern, error)
	ActiveErrorPatterns(ctx context.Context, learnerID string) ([]errorpatterns.Pattern, error)
	PutErrorPattern(ctx context.Context, learnerID string, p errorpatterns.Pattern) error

	AppendSessionResult(ctx context.Context, learnerID string, rec SessionRecord) error
	SessionResults(ctx context.Context, learnerID string, limit int) ([]SessionRecord, error)

	// ResetLearner deletes every record owned by the learner.
	ResetLearner(ctx context.Context, learnerID string) error

	// InTx runs fn against a transactional view of the repository and
	// commits only if fn returns nil.
	InTx(ctx context.Context, fn func(Repo) error) error
}

package store

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vincentb/aurelie/ent"
	"github.com/vincentb/aurelie/ent/engagementstate"
	"github.com/vincentb/aurelie/internal/engagement"
)

func (r *entRepo) EngagementState(ctx context.Context, learnerID string) (engagement.State, error) {
	row, err := r.client.EngagementState.Query().
		Where(engagementstate.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return engagement.NewState(), nil
		}
		return engagement.State{}, unavailable("query engagement state", err)
	}

	s := engagement.State{
		CurrentStreak:   row.CurrentStreak,
		LongestStreak:   row.LongestStreak,
		LastPractice:    row.LastPractice,
		FreezeAvailable: row.FreezeAvailable,
		FreezeUsed:      row.FreezeUsed,
		TotalXP:         row.TotalXp,
	}
	return r.healEngagement(learnerID, s), nil
}

// healEngagement repairs corrupted records on read instead of letting an
// invariant violation crash the engine deeper in.
func (r *entRepo) healEngagement(learnerID string, s engagement.State) engagement.State {
	if s.CurrentStreak < 0 {
		r.logger().WithFields(logrus.Fields{
			"learner": learnerID,
			"streak":  s.CurrentStreak,
		}).Warn("negative current streak on read, resetting")
		s.CurrentStreak = 0
	}
	if s.LongestStreak < s.CurrentStreak {
		r.logger().WithFields(logrus.Fields{
			"learner": learnerID,
			"current": s.CurrentStreak,
			"longest": s.LongestStreak,
		}).Warn("longest streak below current on read, repairing")
		s.LongestStreak = s.CurrentStreak
	}
	if s.TotalXP < 0 {
		r.logger().WithFields(logrus.Fields{
			"learner": learnerID,
			"xp":      s.TotalXP,
		}).Warn("negative total XP on read, resetting")
		s.TotalXP = 0
	}
	return s
}

func (r *entRepo) PutEngagementState(ctx context.Context, learnerID string, s engagement.State) error {
	existing, err := r.client.EngagementState.Query().
		Where(engagementstate.LearnerID(learnerID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return unavailable("query engagement state for put", err)
	}

	if existing == nil {
		_, err = r.client.EngagementState.Create().
			SetLearnerID(learnerID).
			SetCurrentStreak(s.CurrentStreak).
			SetLongestStreak(s.LongestStreak).
			SetNillableLastPractice(s.LastPractice).
			SetFreezeAvailable(s.FreezeAvailable).
			SetNillableFreezeUsed(s.FreezeUsed).
			SetTotalXp(s.TotalXP).
			Save(ctx)
	} else {
		_, err = r.client.EngagementState.UpdateOne(existing).
			SetCurrentStreak(s.CurrentStreak).
			SetLongestStreak(s.LongestStreak).
			SetNillableLastPractice(s.LastPractice).
			SetFreezeAvailable(s.FreezeAvailable).
			SetNillableFreezeUsed(s.FreezeUsed).
			SetTotalXp(s.TotalXP).
			Save(ctx)
	}
	if err != nil {
		return unavailable("put engagement state", err)
	}
	return nil
}

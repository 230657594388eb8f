package store

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/vincentb/aurelie/ent"
	"github.com/vincentb/aurelie/ent/achievement"
	"github.com/vincentb/aurelie/internal/engagement"
)

func (r *entRepo) RecordAchievement(ctx context.Context, learnerID string, key engagement.AchievementKey, at time.Time) (bool, error) {
	exists, err := r.client.Achievement.Query().
		Where(achievement.LearnerID(learnerID), achievement.Key(string(key))).
		Exist(ctx)
	if err != nil {
		return false, unavailable("query achievement", err)
	}
	if exists {
		// Already unlocked; unlocked_at is immutable.
		return false, nil
	}

	_, err = r.client.Achievement.Create().
		SetLearnerID(learnerID).
		SetKey(string(key)).
		SetUnlockedAt(at).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, unavailable("record achievement", err)
	}
	return true, nil
}

func (r *entRepo) Achievements(ctx context.Context, learnerID string) ([]UnlockedAchievement, error) {
	rows, err := r.client.Achievement.Query().
		Where(achievement.LearnerID(learnerID)).
		Order(ent.Asc(achievement.FieldUnlockedAt)).
		All(ctx)
	if err != nil {
		return nil, unavailable("query achievements", err)
	}
	return lo.Map(rows, func(row *ent.Achievement, _ int) UnlockedAchievement {
		return UnlockedAchievement{
			Key:        engagement.AchievementKey(row.Key),
			UnlockedAt: row.UnlockedAt,
		}
	}), nil
}

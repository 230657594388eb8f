package store

import (
	"context"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vincentb/aurelie/ent"
	"github.com/vincentb/aurelie/ent/topicmastery"
	"github.com/vincentb/aurelie/internal/mastery"
)

func (r *entRepo) TopicMastery(ctx context.Context, learnerID, topicKey string) (*mastery.TopicMastery, error) {
	row, err := r.client.TopicMastery.Query().
		Where(topicmastery.LearnerID(learnerID), topicmastery.TopicKey(topicKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, unavailable("query topic mastery", err)
	}
	tm := r.healMastery(learnerID, toTopicMastery(row))
	return &tm, nil
}

func (r *entRepo) TopicMasteries(ctx context.Context, learnerID string) ([]mastery.TopicMastery, error) {
	rows, err := r.client.TopicMastery.Query().
		Where(topicmastery.LearnerID(learnerID)).
		Order(ent.Asc(topicmastery.FieldTopicKey)).
		All(ctx)
	if err != nil {
		return nil, unavailable("query topic masteries", err)
	}
	return lo.Map(rows, func(row *ent.TopicMastery, _ int) mastery.TopicMastery {
		return r.healMastery(learnerID, toTopicMastery(row))
	}), nil
}

func (r *entRepo) PutTopicMastery(ctx context.Context, learnerID string, tm mastery.TopicMastery) error {
	existing, err := r.client.TopicMastery.Query().
		Where(topicmastery.LearnerID(learnerID), topicmastery.TopicKey(tm.TopicKey)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return unavailable("query topic mastery for put", err)
	}

	if existing == nil {
		_, err = r.client.TopicMastery.Create().
			SetLearnerID(learnerID).
			SetTopicKey(tm.TopicKey).
			SetTotalAttempts(tm.TotalAttempts).
			SetCorrectAttempts(tm.CorrectAttempts).
			Save(ctx)
	} else {
		_, err = r.client.TopicMastery.UpdateOne(existing).
			SetTotalAttempts(tm.TotalAttempts).
			SetCorrectAttempts(tm.CorrectAttempts).
			Save(ctx)
	}
	if err != nil {
		return unavailable("put topic mastery", err)
	}
	return nil
}

func toTopicMastery(row *ent.TopicMastery) mastery.TopicMastery {
	return mastery.TopicMastery{
		TopicKey:        row.TopicKey,
		TotalAttempts:   row.TotalAttempts,
		CorrectAttempts: row.CorrectAttempts,
	}
}

// healMastery resets a corrupted counter record to a safe default. The
// violation is logged as a corrupted-state signal, not propagated.
func (r *entRepo) healMastery(learnerID string, tm mastery.TopicMastery) mastery.TopicMastery {
	if tm.Valid() {
		return tm
	}
	r.logger().WithFields(logrus.Fields{
		"learner": learnerID,
		"topic":   tm.TopicKey,
		"total":   tm.TotalAttempts,
		"correct": tm.CorrectAttempts,
	}).Warn("topic mastery counters violate invariant, resetting record")
	return mastery.TopicMastery{TopicKey: tm.TopicKey}
}

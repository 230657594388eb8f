package store

import (
	"context"

	"github.com/samber/lo"
	"github.com/vincentb/aurelie/ent"
	"github.com/vincentb/aurelie/ent/reviewitem"
	"github.com/vincentb/aurelie/internal/spacedrep"
)

func (r *entRepo) ReviewItem(ctx context.Context, learnerID, key string) (*spacedrep.ReviewItem, error) {
	row, err := r.client.ReviewItem.Query().
		Where(reviewitem.LearnerID(learnerID), reviewitem.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, unavailable("query review item", err)
	}
	item := toReviewItem(row)
	return &item, nil
}

func (r *entRepo) ReviewItems(ctx context.Context, learnerID string) ([]spacedrep.ReviewItem, error) {
	rows, err := r.client.ReviewItem.Query().
		Where(reviewitem.LearnerID(learnerID)).
		Order(ent.Asc(reviewitem.FieldNextReview), ent.Asc(reviewitem.FieldKey)).
		All(ctx)
	if err != nil {
		return nil, unavailable("query review items", err)
	}
	return lo.Map(rows, func(row *ent.ReviewItem, _ int) spacedrep.ReviewItem {
		return toReviewItem(row)
	}), nil
}

func (r *entRepo) PutReviewItem(ctx context.Context, learnerID string, item spacedrep.ReviewItem) error {
	existing, err := r.client.ReviewItem.Query().
		Where(reviewitem.LearnerID(learnerID), reviewitem.Key(item.Key)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return unavailable("query review item for put", err)
	}

	if existing == nil {
		_, err = r.client.ReviewItem.Create().
			SetLearnerID(learnerID).
			SetKey(item.Key).
			SetTopic(item.Topic).
			SetKind(string(item.Kind)).
			SetStatus(string(item.Status)).
			SetIntervalDays(item.Interval).
			SetNextReview(item.NextReview).
			SetTopStreak(item.TopStreak).
			Save(ctx)
	} else {
		_, err = r.client.ReviewItem.UpdateOne(existing).
			SetTopic(item.Topic).
			SetKind(string(item.Kind)).
			SetStatus(string(item.Status)).
			SetIntervalDays(item.Interval).
			SetNextReview(item.NextReview).
			SetTopStreak(item.TopStreak).
			Save(ctx)
	}
	if err != nil {
		return unavailable("put review item", err)
	}
	return nil
}

// toReviewItem validates at the storage boundary: malformed rows are
// healed to a safe shape here so scheduling logic never sees them.
func toReviewItem(row *ent.ReviewItem) spacedrep.ReviewItem {
	item := spacedrep.ReviewItem{
		Key:        row.Key,
		Topic:      row.Topic,
		Kind:       spacedrep.Namespace(row.Kind),
		Status:     spacedrep.Status(row.Status),
		Interval:   row.IntervalDays,
		NextReview: spacedrep.DateOf(row.NextReview),
		TopStreak:  row.TopStreak,
	}
	if item.Status != spacedrep.StatusActive && item.Status != spacedrep.StatusSuspended {
		item.Status = spacedrep.StatusActive
	}
	if item.Interval < 0 {
		item.Interval = 0
	}
	return item
}

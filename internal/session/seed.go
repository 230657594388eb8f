package session

import (
	"context"
	"fmt"

	"github.com/vincentb/aurelie/internal/spacedrep"
	"github.com/vincentb/aurelie/internal/store"
)

// SeedKey names a reviewable unit to enroll ahead of any failure.
type SeedKey struct {
	Key   string              `json:"key"`
	Topic string              `json:"topic"`
	Kind  spacedrep.Namespace `json:"kind"`
}

// Seed enrolls keys into the review pool at the bottom rung. Keys that
// already have a record are left untouched: seeding never resets an
// item's schedule.
func (s *Service) Seed(ctx context.Context, learnerID string, keys []SeedKey) (int, error) {
	today := spacedrep.DateOf(s.now())

	var fresh []spacedrep.ReviewItem
	for _, sk := range keys {
		existing, err := s.repo.ReviewItem(ctx, learnerID, sk.Key)
		if err != nil {
			return 0, fmt.Errorf("seed: %w", err)
		}
		if existing != nil {
			continue
		}
		fresh = append(fresh, spacedrep.NewItem(sk.Key, sk.Topic, sk.Kind, today))
	}

	if len(fresh) == 0 {
		return 0, nil
	}

	err := s.repo.InTx(ctx, func(tx store.Repo) error {
		for _, it := range fresh {
			if err := tx.PutReviewItem(ctx, learnerID, it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return len(fresh), nil
}

package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vincentb/aurelie/ent"
	"github.com/vincentb/aurelie/ent/achievement"
	"github.com/vincentb/aurelie/ent/engagementstate"
	"github.com/vincentb/aurelie/ent/errorpattern"
	"github.com/vincentb/aurelie/ent/reviewitem"
	"github.com/vincentb/aurelie/ent/sessionresult"
	"github.com/vincentb/aurelie/ent/topicmastery"
)

// entRepo implements Repo against an ent client. The same type serves
// both the root client and a transactional client.
type entRepo struct {
	client *ent.Client
	log    *logrus.Logger
	inTx   bool
}

func (r *entRepo) InTx(ctx context.Context, fn func(Repo) error) error {
	if r.inTx {
		// Already transactional; run against the same view.
		return fn(r)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return unavailable("begin tx", err)
	}

	txRepo := &entRepo{client: tx.Client(), log: r.log, inTx: true}
	if err := fn(txRepo); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return unavailable("commit tx", err)
	}
	return nil
}

func (r *entRepo) ResetLearner(ctx context.Context, learnerID string) error {
	return r.InTx(ctx, func(repo Repo) error {
		tr := repo.(*entRepo)

		if _, err := tr.client.ReviewItem.Delete().
			Where(reviewitem.LearnerID(learnerID)).Exec(ctx); err != nil {
			return unavailable("reset review items", err)
		}
		if _, err := tr.client.EngagementState.Delete().
			Where(engagementstate.LearnerID(learnerID)).Exec(ctx); err != nil {
			return unavailable("reset engagement state", err)
		}
		if _, err := tr.client.Achievement.Delete().
			Where(achievement.LearnerID(learnerID)).Exec(ctx); err != nil {
			return unavailable("reset achievements", err)
		}
		if _, err := tr.client.TopicMastery.Delete().
			Where(topicmastery.LearnerID(learnerID)).Exec(ctx); err != nil {
			return unavailable("reset topic mastery", err)
		}
		if _, err := tr.client.ErrorPattern.Delete().
			Where(errorpattern.LearnerID(learnerID)).Exec(ctx); err != nil {
			return unavailable("reset error patterns", err)
		}
		if _, err := tr.client.SessionResult.Delete().
			Where(sessionresult.LearnerID(learnerID)).Exec(ctx); err != nil {
			return unavailable("reset session history", err)
		}
		return nil
	})
}

func (r *entRepo) logger() *logrus.Logger {
	if r.log != nil {
		return r.log
	}
	return logrus.StandardLogger()
}

package store

import (
	"context"

	"github.com/samber/lo"
	"github.com/vincentb/aurelie/ent"
	entschema "github.com/vincentb/aurelie/ent/schema"
	"github.com/vincentb/aurelie/ent/sessionresult"
)

func (r *entRepo) AppendSessionResult(ctx context.Context, learnerID string, rec SessionRecord) error {
	details := lo.Map(rec.Details, func(d ExerciseDetail, _ int) entschema.ExerciseDetail {
		return entschema.ExerciseDetail{Key: d.Key, Topic: d.Topic, Correct: d.Correct}
	})

	builder := r.client.SessionResult.Create().
		SetLearnerID(learnerID).
		SetSessionID(rec.SessionID).
		SetSessionDate(rec.Date).
		SetTotalExercises(rec.Exercises).
		SetCorrect(rec.Correct).
		SetBestRun(rec.BestRun).
		SetXpAwarded(rec.XPAwarded)

	if len(details) > 0 {
		builder = builder.SetDetails(details)
	}

	if _, err := builder.Save(ctx); err != nil {
		return unavailable("append session result", err)
	}
	return nil
}

func (r *entRepo) SessionResults(ctx context.Context, learnerID string, limit int) ([]SessionRecord, error) {
	query := r.client.SessionResult.Query().
		Where(sessionresult.LearnerID(learnerID)).
		Order(ent.Desc(sessionresult.FieldSessionDate))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, unavailable("query session results", err)
	}
	return lo.Map(rows, func(row *ent.SessionResult, _ int) SessionRecord {
		return SessionRecord{
			SessionID: row.SessionID,
			Date:      row.SessionDate,
			Exercises: row.TotalExercises,
			Correct:   row.Correct,
			BestRun:   row.BestRun,
			XPAwarded: row.XpAwarded,
			Details: lo.Map(row.Details, func(d entschema.ExerciseDetail, _ int) ExerciseDetail {
				return ExerciseDetail{Key: d.Key, Topic: d.Topic, Correct: d.Correct}
			}),
		}
	}), nil
}

package store

import (
	"context"

	"github.com/samber/lo"
	"github.com/vincentb/aurelie/ent"
	"github.com/vincentb/aurelie/ent/errorpattern"
	"github.com/vincentb/aurelie/internal/errorpatterns"
)

func (r *entRepo) ErrorPattern(ctx context.Context, learnerID, pattern, verb string) (*errorpatterns.Pattern, error) {
	row, err := r.client.ErrorPattern.Query().
		Where(
			errorpattern.LearnerID(learnerID),
			errorpattern.Pattern(pattern),
			errorpattern.Verb(verb),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, unavailable("query error pattern", err)
	}
	p := toErrorPattern(row)
	return &p, nil
}

func (r *entRepo) ActiveErrorPatterns(ctx context.Context, learnerID string) ([]errorpatterns.Pattern, error) {
	rows, err := r.client.ErrorPattern.Query().
		Where(
			errorpattern.LearnerID(learnerID),
			errorpattern.Status(string(errorpatterns.StatusActive)),
		).
		Order(ent.Desc(errorpattern.FieldOccurrences)).
		All(ctx)
	if err != nil {
		return nil, unavailable("query active error patterns", err)
	}
	return lo.Map(rows, func(row *ent.ErrorPattern, _ int) errorpatterns.Pattern {
		return toErrorPattern(row)
	}), nil
}

func (r *entRepo) PutErrorPattern(ctx context.Context, learnerID string, p errorpatterns.Pattern) error {
	existing, err := r.client.ErrorPattern.Query().
		Where(
			errorpattern.LearnerID(learnerID),
			errorpattern.Pattern(p.Pattern),
			errorpattern.Verb(p.Verb),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return unavailable("query error pattern for put", err)
	}

	if existing == nil {
		_, err = r.client.ErrorPattern.Create().
			SetLearnerID(learnerID).
			SetPattern(p.Pattern).
			SetVerb(p.Verb).
			SetDescription(p.Description).
			SetExample(p.Example).
			SetOccurrences(p.Occurrences).
			SetStatus(string(p.Status)).
			SetLastSeen(p.LastSeen).
			Save(ctx)
	} else {
		_, err = r.client.ErrorPattern.UpdateOne(existing).
			SetOccurrences(p.Occurrences).
			SetStatus(string(p.Status)).
			SetLastSeen(p.LastSeen).
			Save(ctx)
	}
	if err != nil {
		return unavailable("put error pattern", err)
	}
	return nil
}

func toErrorPattern(row *ent.ErrorPattern) errorpatterns.Pattern {
	return errorpatterns.Pattern{
		Pattern:     row.Pattern,
		Verb:        row.Verb,
		Description: row.Description,
		Example:     row.Example,
		Occurrences: row.Occurrences,
		Status:      errorpatterns.Status(row.Status),
		LastSeen:    row.LastSeen,
	}
}

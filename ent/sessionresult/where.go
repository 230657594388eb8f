// Code generated by ent, DO NOT EDIT.

package sessionresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vincentb/aurelie/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldLearnerID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionDate applies equality check predicate on the "session_date" field. It's identical to SessionDateEQ.
func SessionDate(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldSessionDate, v))
}

// TotalExercises applies equality check predicate on the "total_exercises" field. It's identical to TotalExercisesEQ.
func TotalExercises(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldTotalExercises, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldCorrect, v))
}

// BestRun applies equality check predicate on the "best_run" field. It's identical to BestRunEQ.
func BestRun(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldBestRun, v))
}

// XpAwarded applies equality check predicate on the "xp_awarded" field. It's identical to XpAwardedEQ.
func XpAwarded(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldXpAwarded, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldLearnerID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldContainsFold(FieldSessionID, v))
}

// SessionDateEQ applies the EQ predicate on the "session_date" field.
func SessionDateEQ(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldSessionDate, v))
}

// SessionDateNEQ applies the NEQ predicate on the "session_date" field.
func SessionDateNEQ(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldSessionDate, v))
}

// SessionDateIn applies the In predicate on the "session_date" field.
func SessionDateIn(vs ...time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldSessionDate, vs...))
}

// SessionDateNotIn applies the NotIn predicate on the "session_date" field.
func SessionDateNotIn(vs ...time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldSessionDate, vs...))
}

// SessionDateGT applies the GT predicate on the "session_date" field.
func SessionDateGT(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldSessionDate, v))
}

// SessionDateGTE applies the GTE predicate on the "session_date" field.
func SessionDateGTE(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldSessionDate, v))
}

// SessionDateLT applies the LT predicate on the "session_date" field.
func SessionDateLT(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldSessionDate, v))
}

// SessionDateLTE applies the LTE predicate on the "session_date" field.
func SessionDateLTE(v time.Time) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldSessionDate, v))
}

// TotalExercisesEQ applies the EQ predicate on the "total_exercises" field.
func TotalExercisesEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldTotalExercises, v))
}

// TotalExercisesNEQ applies the NEQ predicate on the "total_exercises" field.
func TotalExercisesNEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldTotalExercises, v))
}

// TotalExercisesIn applies the In predicate on the "total_exercises" field.
func TotalExercisesIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldTotalExercises, vs...))
}

// TotalExercisesNotIn applies the NotIn predicate on the "total_exercises" field.
func TotalExercisesNotIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldTotalExercises, vs...))
}

// TotalExercisesGT applies the GT predicate on the "total_exercises" field.
func TotalExercisesGT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldTotalExercises, v))
}

// TotalExercisesGTE applies the GTE predicate on the "total_exercises" field.
func TotalExercisesGTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldTotalExercises, v))
}

// TotalExercisesLT applies the LT predicate on the "total_exercises" field.
func TotalExercisesLT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldTotalExercises, v))
}

// TotalExercisesLTE applies the LTE predicate on the "total_exercises" field.
func TotalExercisesLTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldTotalExercises, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldCorrect, v))
}

// BestRunEQ applies the EQ predicate on the "best_run" field.
func BestRunEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldBestRun, v))
}

// BestRunNEQ applies the NEQ predicate on the "best_run" field.
func BestRunNEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldBestRun, v))
}

// BestRunIn applies the In predicate on the "best_run" field.
func BestRunIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldBestRun, vs...))
}

// BestRunNotIn applies the NotIn predicate on the "best_run" field.
func BestRunNotIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldBestRun, vs...))
}

// BestRunGT applies the GT predicate on the "best_run" field.
func BestRunGT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldBestRun, v))
}

// BestRunGTE applies the GTE predicate on the "best_run" field.
func BestRunGTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldBestRun, v))
}

// BestRunLT applies the LT predicate on the "best_run" field.
func BestRunLT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldBestRun, v))
}

// BestRunLTE applies the LTE predicate on the "best_run" field.
func BestRunLTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldBestRun, v))
}

// XpAwardedEQ applies the EQ predicate on the "xp_awarded" field.
func XpAwardedEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAwardedNEQ applies the NEQ predicate on the "xp_awarded" field.
func XpAwardedNEQ(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNEQ(FieldXpAwarded, v))
}

// XpAwardedIn applies the In predicate on the "xp_awarded" field.
func XpAwardedIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIn(FieldXpAwarded, vs...))
}

// XpAwardedNotIn applies the NotIn predicate on the "xp_awarded" field.
func XpAwardedNotIn(vs ...int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotIn(FieldXpAwarded, vs...))
}

// XpAwardedGT applies the GT predicate on the "xp_awarded" field.
func XpAwardedGT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGT(FieldXpAwarded, v))
}

// XpAwardedGTE applies the GTE predicate on the "xp_awarded" field.
func XpAwardedGTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldGTE(FieldXpAwarded, v))
}

// XpAwardedLT applies the LT predicate on the "xp_awarded" field.
func XpAwardedLT(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLT(FieldXpAwarded, v))
}

// XpAwardedLTE applies the LTE predicate on the "xp_awarded" field.
func XpAwardedLTE(v int) predicate.SessionResult {
	return predicate.SessionResult(sql.FieldLTE(FieldXpAwarded, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.SessionResult {
	return predicate.SessionResult(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.SessionResult {
	return predicate.SessionResult(sql.FieldNotNull(FieldDetails))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionResult) predicate.SessionResult {
	return predicate.SessionResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionResult) predicate.SessionResult {
	return predicate.SessionResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionResult) predicate.SessionResult {
	return predicate.SessionResult(sql.NotPredicates(p))
}

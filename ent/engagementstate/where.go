// Code generated by ent, DO NOT EDIT.

package engagementstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vincentb/aurelie/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldLearnerID, v))
}

// CurrentStreak applies equality check predicate on the "current_streak" field. It's identical to CurrentStreakEQ.
func CurrentStreak(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldCurrentStreak, v))
}

// LongestStreak applies equality check predicate on the "longest_streak" field. It's identical to LongestStreakEQ.
func LongestStreak(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldLongestStreak, v))
}

// LastPractice applies equality check predicate on the "last_practice" field. It's identical to LastPracticeEQ.
func LastPractice(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldLastPractice, v))
}

// FreezeAvailable applies equality check predicate on the "freeze_available" field. It's identical to FreezeAvailableEQ.
func FreezeAvailable(v bool) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldFreezeAvailable, v))
}

// FreezeUsed applies equality check predicate on the "freeze_used" field. It's identical to FreezeUsedEQ.
func FreezeUsed(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldFreezeUsed, v))
}

// TotalXp applies equality check predicate on the "total_xp" field. It's identical to TotalXpEQ.
func TotalXp(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldTotalXp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldContainsFold(FieldLearnerID, v))
}

// CurrentStreakEQ applies the EQ predicate on the "current_streak" field.
func CurrentStreakEQ(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldCurrentStreak, v))
}

// CurrentStreakNEQ applies the NEQ predicate on the "current_streak" field.
func CurrentStreakNEQ(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNEQ(FieldCurrentStreak, v))
}

// CurrentStreakIn applies the In predicate on the "current_streak" field.
func CurrentStreakIn(vs ...int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldIn(FieldCurrentStreak, vs...))
}

// CurrentStreakNotIn applies the NotIn predicate on the "current_streak" field.
func CurrentStreakNotIn(vs ...int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNotIn(FieldCurrentStreak, vs...))
}

// CurrentStreakGT applies the GT predicate on the "current_streak" field.
func CurrentStreakGT(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGT(FieldCurrentStreak, v))
}

// CurrentStreakGTE applies the GTE predicate on the "current_streak" field.
func CurrentStreakGTE(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGTE(FieldCurrentStreak, v))
}

// CurrentStreakLT applies the LT predicate on the "current_streak" field.
func CurrentStreakLT(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLT(FieldCurrentStreak, v))
}

// CurrentStreakLTE applies the LTE predicate on the "current_streak" field.
func CurrentStreakLTE(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLTE(FieldCurrentStreak, v))
}

// LongestStreakEQ applies the EQ predicate on the "longest_streak" field.
func LongestStreakEQ(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldLongestStreak, v))
}

// LongestStreakNEQ applies the NEQ predicate on the "longest_streak" field.
func LongestStreakNEQ(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNEQ(FieldLongestStreak, v))
}

// LongestStreakIn applies the In predicate on the "longest_streak" field.
func LongestStreakIn(vs ...int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldIn(FieldLongestStreak, vs...))
}

// LongestStreakNotIn applies the NotIn predicate on the "longest_streak" field.
func LongestStreakNotIn(vs ...int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNotIn(FieldLongestStreak, vs...))
}

// LongestStreakGT applies the GT predicate on the "longest_streak" field.
func LongestStreakGT(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGT(FieldLongestStreak, v))
}

// LongestStreakGTE applies the GTE predicate on the "longest_streak" field.
func LongestStreakGTE(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGTE(FieldLongestStreak, v))
}

// LongestStreakLT applies the LT predicate on the "longest_streak" field.
func LongestStreakLT(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLT(FieldLongestStreak, v))
}

// LongestStreakLTE applies the LTE predicate on the "longest_streak" field.
func LongestStreakLTE(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLTE(FieldLongestStreak, v))
}

// LastPracticeEQ applies the EQ predicate on the "last_practice" field.
func LastPracticeEQ(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldLastPractice, v))
}

// LastPracticeNEQ applies the NEQ predicate on the "last_practice" field.
func LastPracticeNEQ(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNEQ(FieldLastPractice, v))
}

// LastPracticeIn applies the In predicate on the "last_practice" field.
func LastPracticeIn(vs ...time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldIn(FieldLastPractice, vs...))
}

// LastPracticeNotIn applies the NotIn predicate on the "last_practice" field.
func LastPracticeNotIn(vs ...time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNotIn(FieldLastPractice, vs...))
}

// LastPracticeGT applies the GT predicate on the "last_practice" field.
func LastPracticeGT(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGT(FieldLastPractice, v))
}

// LastPracticeGTE applies the GTE predicate on the "last_practice" field.
func LastPracticeGTE(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGTE(FieldLastPractice, v))
}

// LastPracticeLT applies the LT predicate on the "last_practice" field.
func LastPracticeLT(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLT(FieldLastPractice, v))
}

// LastPracticeLTE applies the LTE predicate on the "last_practice" field.
func LastPracticeLTE(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLTE(FieldLastPractice, v))
}

// LastPracticeIsNil applies the IsNil predicate on the "last_practice" field.
func LastPracticeIsNil() predicate.EngagementState {
	return predicate.EngagementState(sql.FieldIsNull(FieldLastPractice))
}

// LastPracticeNotNil applies the NotNil predicate on the "last_practice" field.
func LastPracticeNotNil() predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNotNull(FieldLastPractice))
}

// FreezeAvailableEQ applies the EQ predicate on the "freeze_available" field.
func FreezeAvailableEQ(v bool) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldFreezeAvailable, v))
}

// FreezeAvailableNEQ applies the NEQ predicate on the "freeze_available" field.
func FreezeAvailableNEQ(v bool) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNEQ(FieldFreezeAvailable, v))
}

// FreezeUsedEQ applies the EQ predicate on the "freeze_used" field.
func FreezeUsedEQ(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldFreezeUsed, v))
}

// FreezeUsedNEQ applies the NEQ predicate on the "freeze_used" field.
func FreezeUsedNEQ(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNEQ(FieldFreezeUsed, v))
}

// FreezeUsedIn applies the In predicate on the "freeze_used" field.
func FreezeUsedIn(vs ...time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldIn(FieldFreezeUsed, vs...))
}

// FreezeUsedNotIn applies the NotIn predicate on the "freeze_used" field.
func FreezeUsedNotIn(vs ...time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNotIn(FieldFreezeUsed, vs...))
}

// FreezeUsedGT applies the GT predicate on the "freeze_used" field.
func FreezeUsedGT(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGT(FieldFreezeUsed, v))
}

// FreezeUsedGTE applies the GTE predicate on the "freeze_used" field.
func FreezeUsedGTE(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGTE(FieldFreezeUsed, v))
}

// FreezeUsedLT applies the LT predicate on the "freeze_used" field.
func FreezeUsedLT(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLT(FieldFreezeUsed, v))
}

// FreezeUsedLTE applies the LTE predicate on the "freeze_used" field.
func FreezeUsedLTE(v time.Time) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLTE(FieldFreezeUsed, v))
}

// FreezeUsedIsNil applies the IsNil predicate on the "freeze_used" field.
func FreezeUsedIsNil() predicate.EngagementState {
	return predicate.EngagementState(sql.FieldIsNull(FieldFreezeUsed))
}

// FreezeUsedNotNil applies the NotNil predicate on the "freeze_used" field.
func FreezeUsedNotNil() predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNotNull(FieldFreezeUsed))
}

// TotalXpEQ applies the EQ predicate on the "total_xp" field.
func TotalXpEQ(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldEQ(FieldTotalXp, v))
}

// TotalXpNEQ applies the NEQ predicate on the "total_xp" field.
func TotalXpNEQ(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNEQ(FieldTotalXp, v))
}

// TotalXpIn applies the In predicate on the "total_xp" field.
func TotalXpIn(vs ...int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldIn(FieldTotalXp, vs...))
}

// TotalXpNotIn applies the NotIn predicate on the "total_xp" field.
func TotalXpNotIn(vs ...int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldNotIn(FieldTotalXp, vs...))
}

// TotalXpGT applies the GT predicate on the "total_xp" field.
func TotalXpGT(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGT(FieldTotalXp, v))
}

// TotalXpGTE applies the GTE predicate on the "total_xp" field.
func TotalXpGTE(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldGTE(FieldTotalXp, v))
}

// TotalXpLT applies the LT predicate on the "total_xp" field.
func TotalXpLT(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLT(FieldTotalXp, v))
}

// TotalXpLTE applies the LTE predicate on the "total_xp" field.
func TotalXpLTE(v int) predicate.EngagementState {
	return predicate.EngagementState(sql.FieldLTE(FieldTotalXp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EngagementState) predicate.EngagementState {
	return predicate.EngagementState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EngagementState) predicate.EngagementState {
	return predicate.EngagementState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EngagementState) predicate.EngagementState {
	return predicate.EngagementState(sql.NotPredicates(p))
}

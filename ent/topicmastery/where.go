// Code generated by ent, DO NOT EDIT.

package topicmastery

import (
	"entgo.io/ent/dialect/sql"
	"github.com/vincentb/aurelie/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldLearnerID, v))
}

// TopicKey applies equality check predicate on the "topic_key" field. It's identical to TopicKeyEQ.
func TopicKey(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldTopicKey, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldTotalAttempts, v))
}

// CorrectAttempts applies equality check predicate on the "correct_attempts" field. It's identical to CorrectAttemptsEQ.
func CorrectAttempts(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldCorrectAttempts, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldContainsFold(FieldLearnerID, v))
}

// TopicKeyEQ applies the EQ predicate on the "topic_key" field.
func TopicKeyEQ(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldTopicKey, v))
}

// TopicKeyNEQ applies the NEQ predicate on the "topic_key" field.
func TopicKeyNEQ(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldTopicKey, v))
}

// TopicKeyIn applies the In predicate on the "topic_key" field.
func TopicKeyIn(vs ...string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldTopicKey, vs...))
}

// TopicKeyNotIn applies the NotIn predicate on the "topic_key" field.
func TopicKeyNotIn(vs ...string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldTopicKey, vs...))
}

// TopicKeyGT applies the GT predicate on the "topic_key" field.
func TopicKeyGT(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldTopicKey, v))
}

// TopicKeyGTE applies the GTE predicate on the "topic_key" field.
func TopicKeyGTE(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldTopicKey, v))
}

// TopicKeyLT applies the LT predicate on the "topic_key" field.
func TopicKeyLT(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldTopicKey, v))
}

// TopicKeyLTE applies the LTE predicate on the "topic_key" field.
func TopicKeyLTE(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldTopicKey, v))
}

// TopicKeyContains applies the Contains predicate on the "topic_key" field.
func TopicKeyContains(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldContains(FieldTopicKey, v))
}

// TopicKeyHasPrefix applies the HasPrefix predicate on the "topic_key" field.
func TopicKeyHasPrefix(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldHasPrefix(FieldTopicKey, v))
}

// TopicKeyHasSuffix applies the HasSuffix predicate on the "topic_key" field.
func TopicKeyHasSuffix(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldHasSuffix(FieldTopicKey, v))
}

// TopicKeyEqualFold applies the EqualFold predicate on the "topic_key" field.
func TopicKeyEqualFold(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEqualFold(FieldTopicKey, v))
}

// TopicKeyContainsFold applies the ContainsFold predicate on the "topic_key" field.
func TopicKeyContainsFold(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldContainsFold(FieldTopicKey, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldTotalAttempts, v))
}

// CorrectAttemptsEQ applies the EQ predicate on the "correct_attempts" field.
func CorrectAttemptsEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsNEQ applies the NEQ predicate on the "correct_attempts" field.
func CorrectAttemptsNEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsIn applies the In predicate on the "correct_attempts" field.
func CorrectAttemptsIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsNotIn applies the NotIn predicate on the "correct_attempts" field.
func CorrectAttemptsNotIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsGT applies the GT predicate on the "correct_attempts" field.
func CorrectAttemptsGT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldCorrectAttempts, v))
}

// CorrectAttemptsGTE applies the GTE predicate on the "correct_attempts" field.
func CorrectAttemptsGTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldCorrectAttempts, v))
}

// CorrectAttemptsLT applies the LT predicate on the "correct_attempts" field.
func CorrectAttemptsLT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldCorrectAttempts, v))
}

// CorrectAttemptsLTE applies the LTE predicate on the "correct_attempts" field.
func CorrectAttemptsLTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldCorrectAttempts, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicMastery) predicate.TopicMastery {
	return predicate.TopicMastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicMastery) predicate.TopicMastery {
	return predicate.TopicMastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicMastery) predicate.TopicMastery {
	return predicate.TopicMastery(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package errorpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vincentb/aurelie/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldLearnerID, v))
}

// Pattern applies equality check predicate on the "pattern" field. It's identical to PatternEQ.
func Pattern(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldPattern, v))
}

// Verb applies equality check predicate on the "verb" field. It's identical to VerbEQ.
func Verb(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldVerb, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldDescription, v))
}

// Example applies equality check predicate on the "example" field. It's identical to ExampleEQ.
func Example(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldExample, v))
}

// Occurrences applies equality check predicate on the "occurrences" field. It's identical to OccurrencesEQ.
func Occurrences(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldOccurrences, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldStatus, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldLastSeen, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldLearnerID, v))
}

// PatternEQ applies the EQ predicate on the "pattern" field.
func PatternEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldPattern, v))
}

// PatternNEQ applies the NEQ predicate on the "pattern" field.
func PatternNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldPattern, v))
}

// PatternIn applies the In predicate on the "pattern" field.
func PatternIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldPattern, vs...))
}

// PatternNotIn applies the NotIn predicate on the "pattern" field.
func PatternNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldPattern, vs...))
}

// PatternGT applies the GT predicate on the "pattern" field.
func PatternGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldPattern, v))
}

// PatternGTE applies the GTE predicate on the "pattern" field.
func PatternGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldPattern, v))
}

// PatternLT applies the LT predicate on the "pattern" field.
func PatternLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldPattern, v))
}

// PatternLTE applies the LTE predicate on the "pattern" field.
func PatternLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldPattern, v))
}

// PatternContains applies the Contains predicate on the "pattern" field.
func PatternContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldPattern, v))
}

// PatternHasPrefix applies the HasPrefix predicate on the "pattern" field.
func PatternHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldPattern, v))
}

// PatternHasSuffix applies the HasSuffix predicate on the "pattern" field.
func PatternHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldPattern, v))
}

// PatternEqualFold applies the EqualFold predicate on the "pattern" field.
func PatternEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldPattern, v))
}

// PatternContainsFold applies the ContainsFold predicate on the "pattern" field.
func PatternContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldPattern, v))
}

// VerbEQ applies the EQ predicate on the "verb" field.
func VerbEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldVerb, v))
}

// VerbNEQ applies the NEQ predicate on the "verb" field.
func VerbNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldVerb, v))
}

// VerbIn applies the In predicate on the "verb" field.
func VerbIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldVerb, vs...))
}

// VerbNotIn applies the NotIn predicate on the "verb" field.
func VerbNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldVerb, vs...))
}

// VerbGT applies the GT predicate on the "verb" field.
func VerbGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldVerb, v))
}

// VerbGTE applies the GTE predicate on the "verb" field.
func VerbGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldVerb, v))
}

// VerbLT applies the LT predicate on the "verb" field.
func VerbLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldVerb, v))
}

// VerbLTE applies the LTE predicate on the "verb" field.
func VerbLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldVerb, v))
}

// VerbContains applies the Contains predicate on the "verb" field.
func VerbContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldVerb, v))
}

// VerbHasPrefix applies the HasPrefix predicate on the "verb" field.
func VerbHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldVerb, v))
}

// VerbHasSuffix applies the HasSuffix predicate on the "verb" field.
func VerbHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldVerb, v))
}

// VerbEqualFold applies the EqualFold predicate on the "verb" field.
func VerbEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldVerb, v))
}

// VerbContainsFold applies the ContainsFold predicate on the "verb" field.
func VerbContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldVerb, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldDescription, v))
}

// ExampleEQ applies the EQ predicate on the "example" field.
func ExampleEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldExample, v))
}

// ExampleNEQ applies the NEQ predicate on the "example" field.
func ExampleNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldExample, v))
}

// ExampleIn applies the In predicate on the "example" field.
func ExampleIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldExample, vs...))
}

// ExampleNotIn applies the NotIn predicate on the "example" field.
func ExampleNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldExample, vs...))
}

// ExampleGT applies the GT predicate on the "example" field.
func ExampleGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldExample, v))
}

// ExampleGTE applies the GTE predicate on the "example" field.
func ExampleGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldExample, v))
}

// ExampleLT applies the LT predicate on the "example" field.
func ExampleLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldExample, v))
}

// ExampleLTE applies the LTE predicate on the "example" field.
func ExampleLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldExample, v))
}

// ExampleContains applies the Contains predicate on the "example" field.
func ExampleContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldExample, v))
}

// ExampleHasPrefix applies the HasPrefix predicate on the "example" field.
func ExampleHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldExample, v))
}

// ExampleHasSuffix applies the HasSuffix predicate on the "example" field.
func ExampleHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldExample, v))
}

// ExampleIsNil applies the IsNil predicate on the "example" field.
func ExampleIsNil() predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIsNull(FieldExample))
}

// ExampleNotNil applies the NotNil predicate on the "example" field.
func ExampleNotNil() predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotNull(FieldExample))
}

// ExampleEqualFold applies the EqualFold predicate on the "example" field.
func ExampleEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldExample, v))
}

// ExampleContainsFold applies the ContainsFold predicate on the "example" field.
func ExampleContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldExample, v))
}

// OccurrencesEQ applies the EQ predicate on the "occurrences" field.
func OccurrencesEQ(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldOccurrences, v))
}

// OccurrencesNEQ applies the NEQ predicate on the "occurrences" field.
func OccurrencesNEQ(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldOccurrences, v))
}

// OccurrencesIn applies the In predicate on the "occurrences" field.
func OccurrencesIn(vs ...int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldOccurrences, vs...))
}

// OccurrencesNotIn applies the NotIn predicate on the "occurrences" field.
func OccurrencesNotIn(vs ...int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldOccurrences, vs...))
}

// OccurrencesGT applies the GT predicate on the "occurrences" field.
func OccurrencesGT(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldOccurrences, v))
}

// OccurrencesGTE applies the GTE predicate on the "occurrences" field.
func OccurrencesGTE(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldOccurrences, v))
}

// OccurrencesLT applies the LT predicate on the "occurrences" field.
func OccurrencesLT(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldOccurrences, v))
}

// OccurrencesLTE applies the LTE predicate on the "occurrences" field.
func OccurrencesLTE(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldOccurrences, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldStatus, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ErrorPattern) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ErrorPattern) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ErrorPattern) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.NotPredicates(p))
}

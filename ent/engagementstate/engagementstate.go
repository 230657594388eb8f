// Code generated by ent, DO NOT EDIT.

package engagementstate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the engagementstate type in the database.
	Label = "engagement_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldCurrentStreak holds the string denoting the current_streak field in the database.
	FieldCurrentStreak = "current_streak"
	// FieldLongestStreak holds the string denoting the longest_streak field in the database.
	FieldLongestStreak = "longest_streak"
	// FieldLastPractice holds the string denoting the last_practice field in the database.
	FieldLastPractice = "last_practice"
	// FieldFreezeAvailable holds the string denoting the freeze_available field in the database.
	FieldFreezeAvailable = "freeze_available"
	// FieldFreezeUsed holds the string denoting the freeze_used field in the database.
	FieldFreezeUsed = "freeze_used"
	// FieldTotalXp holds the string denoting the total_xp field in the database.
	FieldTotalXp = "total_xp"
	// Table holds the table name of the engagementstate in the database.
	Table = "engagement_states"
)

// Columns holds all SQL columns for engagementstate fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldCurrentStreak,
	FieldLongestStreak,
	FieldLastPractice,
	FieldFreezeAvailable,
	FieldFreezeUsed,
	FieldTotalXp,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DefaultCurrentStreak holds the default value on creation for the "current_streak" field.
	DefaultCurrentStreak int
	// DefaultLongestStreak holds the default value on creation for the "longest_streak" field.
	DefaultLongestStreak int
	// DefaultFreezeAvailable holds the default value on creation for the "freeze_available" field.
	DefaultFreezeAvailable bool
	// DefaultTotalXp holds the default value on creation for the "total_xp" field.
	DefaultTotalXp int
)

// OrderOption defines the ordering options for the EngagementState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByCurrentStreak orders the results by the current_streak field.
func ByCurrentStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStreak, opts...).ToFunc()
}

// ByLongestStreak orders the results by the longest_streak field.
func ByLongestStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongestStreak, opts...).ToFunc()
}

// ByLastPractice orders the results by the last_practice field.
func ByLastPractice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPractice, opts...).ToFunc()
}

// ByFreezeAvailable orders the results by the freeze_available field.
func ByFreezeAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreezeAvailable, opts...).ToFunc()
}

// ByFreezeUsed orders the results by the freeze_used field.
func ByFreezeUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreezeUsed, opts...).ToFunc()
}

// ByTotalXp orders the results by the total_xp field.
func ByTotalXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalXp, opts...).ToFunc()
}

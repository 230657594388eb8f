// Code generated by ent, DO NOT EDIT.

package errorpattern

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the errorpattern type in the database.
	Label = "error_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldPattern holds the string denoting the pattern field in the database.
	FieldPattern = "pattern"
	// FieldVerb holds the string denoting the verb field in the database.
	FieldVerb = "verb"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldExample holds the string denoting the example field in the database.
	FieldExample = "example"
	// FieldOccurrences holds the string denoting the occurrences field in the database.
	FieldOccurrences = "occurrences"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the errorpattern in the database.
	Table = "error_patterns"
)

// Columns holds all SQL columns for errorpattern fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldPattern,
	FieldVerb,
	FieldDescription,
	FieldExample,
	FieldOccurrences,
	FieldStatus,
	FieldLastSeen,
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
	// PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	PatternValidator func(string) error
	// DefaultOccurrences holds the default value on creation for the "occurrences" field.
	DefaultOccurrences int
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
)

// OrderOption defines the ordering options for the ErrorPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByPattern orders the results by the pattern field.
func ByPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPattern, opts...).ToFunc()
}

// ByVerb orders the results by the verb field.
func ByVerb(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerb, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByExample orders the results by the example field.
func ByExample(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExample, opts...).ToFunc()
}

// ByOccurrences orders the results by the occurrences field.
func ByOccurrences(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurrences, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

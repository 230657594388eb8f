// Code generated by ent, DO NOT EDIT.

package topicmastery

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topicmastery type in the database.
	Label = "topic_mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldTopicKey holds the string denoting the topic_key field in the database.
	FieldTopicKey = "topic_key"
	// FieldTotalAttempts holds the string denoting the total_attempts field in the database.
	FieldTotalAttempts = "total_attempts"
	// FieldCorrectAttempts holds the string denoting the correct_attempts field in the database.
	FieldCorrectAttempts = "correct_attempts"
	// Table holds the table name of the topicmastery in the database.
	Table = "topic_masteries"
)

// Columns holds all SQL columns for topicmastery fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldTopicKey,
	FieldTotalAttempts,
	FieldCorrectAttempts,
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
	// TopicKeyValidator is a validator for the "topic_key" field. It is called by the builders before save.
	TopicKeyValidator func(string) error
	// DefaultTotalAttempts holds the default value on creation for the "total_attempts" field.
	DefaultTotalAttempts int
	// TotalAttemptsValidator is a validator for the "total_attempts" field. It is called by the builders before save.
	TotalAttemptsValidator func(int) error
	// DefaultCorrectAttempts holds the default value on creation for the "correct_attempts" field.
	DefaultCorrectAttempts int
	// CorrectAttemptsValidator is a validator for the "correct_attempts" field. It is called by the builders before save.
	CorrectAttemptsValidator func(int) error
)

// OrderOption defines the ordering options for the TopicMastery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByTopicKey orders the results by the topic_key field.
func ByTopicKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicKey, opts...).ToFunc()
}

// ByTotalAttempts orders the results by the total_attempts field.
func ByTotalAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempts, opts...).ToFunc()
}

// ByCorrectAttempts orders the results by the correct_attempts field.
func ByCorrectAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAttempts, opts...).ToFunc()
}

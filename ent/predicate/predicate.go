// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// EngagementState is the predicate function for engagementstate builders.
type EngagementState func(*sql.Selector)

// ErrorPattern is the predicate function for errorpattern builders.
type ErrorPattern func(*sql.Selector)

// ReviewItem is the predicate function for reviewitem builders.
type ReviewItem func(*sql.Selector)

// SessionResult is the predicate function for sessionresult builders.
type SessionResult func(*sql.Selector)

// TopicMastery is the predicate function for topicmastery builders.
type TopicMastery func(*sql.Selector)

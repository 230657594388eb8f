package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicMastery accumulates per-topic attempt counters. The mastery level
// is derived from the counters under configured thresholds, never stored.
type TopicMastery struct {
	ent.Schema
}

func (TopicMastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("topic_key").NotEmpty(),
		field.Int("total_attempts").
			Default(0).
			NonNegative(),
		field.Int("correct_attempts").
			Default(0).
			NonNegative(),
	}
}

func (TopicMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "topic_key").Unique(),
	}
}

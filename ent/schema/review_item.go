package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewItem holds per-item spaced repetition state.
// One row per (learner, key); rows are never deleted, only suspended.
type ReviewItem struct {
	ent.Schema
}

func (ReviewItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("key").
			NotEmpty().
			Comment("Opaque reviewable-unit key (verb base form or prefixed topic key)"),
		field.String("topic").
			Comment("Topic bucket for filtered practice, e.g. 'Irregular Verbs'"),
		field.String("kind").
			Default("verb").
			Comment("Key namespace: verb or topic"),
		field.String("status").
			Default("active").
			Comment("active or suspended"),
		field.Int("interval_days").
			Default(1),
		field.Time("next_review").
			Comment("Calendar date the item becomes due"),
		field.Int("top_streak").
			Default(0).
			Comment("Consecutive correct reviews at the top rung"),
	}
}

func (ReviewItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "key").Unique(),
		index.Fields("learner_id", "status", "next_review"),
	}
}

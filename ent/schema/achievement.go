package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement records a single unlock. Set semantics: at most one row per
// (learner, key), enforced by the unique index; unlocked_at never changes.
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("key").NotEmpty(),
		field.Time("unlocked_at").
			Immutable(),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "key").Unique(),
	}
}

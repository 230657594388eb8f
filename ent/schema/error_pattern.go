package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ErrorPattern is the ledger of recurring mistakes, one row per
// (learner, pattern, verb). A pattern seen three times becomes active
// and can be targeted by exercise generation.
type ErrorPattern struct {
	ent.Schema
}

func (ErrorPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("pattern").NotEmpty(),
		field.String("verb").
			Comment("Verb the pattern was observed on; empty for topic-level patterns"),
		field.String("description").
			Optional(),
		field.String("example").
			Optional(),
		field.Int("occurrences").
			Default(1),
		field.String("status").
			Default("watching").
			Comment("watching or active"),
		field.Time("last_seen"),
	}
}

func (ErrorPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "pattern", "verb").Unique(),
		index.Fields("learner_id", "status"),
	}
}

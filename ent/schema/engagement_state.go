package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EngagementState is the single per-learner streak/XP record.
// Level is intentionally absent: it is derived from total_xp on read.
type EngagementState struct {
	ent.Schema
}

func (EngagementState) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique(),
		field.Int("current_streak").
			Default(0),
		field.Int("longest_streak").
			Default(0),
		field.Time("last_practice").
			Optional().
			Nillable().
			Comment("Calendar date of the last counted practice day"),
		field.Bool("freeze_available").
			Default(true).
			Comment("Weekly streak-freeze allowance"),
		field.Time("freeze_used").
			Optional().
			Nillable().
			Comment("Calendar date the freeze was last consumed"),
		field.Int("total_xp").
			Default(0),
	}
}

func (EngagementState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id").Unique(),
	}
}

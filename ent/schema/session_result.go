package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionResult is the append-only history of committed practice sessions.
type SessionResult struct {
	ent.Schema
}

// ExerciseDetail is the serialized form of one exercise result.
type ExerciseDetail struct {
	Key     string `json:"key"`
	Topic   string `json:"topic"`
	Correct bool   `json:"correct"`
}

func (SessionResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned at commit"),
		field.Time("session_date").
			Comment("Calendar date the session was practiced"),
		field.Int("total_exercises"),
		field.Int("correct"),
		field.Int("best_run").
			Comment("Longest run of consecutive correct answers in the session"),
		field.Int("xp_awarded"),
		field.JSON("details", []ExerciseDetail{}).
			Optional(),
	}
}

func (SessionResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "session_date"),
	}
}

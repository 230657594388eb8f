// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "unlocked_at", Type: field.TypeTime},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_learner_id_key",
				Unique:  true,
				Columns: []*schema.Column{AchievementsColumns[1], AchievementsColumns[2]},
			},
		},
	}
	// EngagementStatesColumns holds the columns for the "engagement_states" table.
	EngagementStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "current_streak", Type: field.TypeInt, Default: 0},
		{Name: "longest_streak", Type: field.TypeInt, Default: 0},
		{Name: "last_practice", Type: field.TypeTime, Nullable: true},
		{Name: "freeze_available", Type: field.TypeBool, Default: true},
		{Name: "freeze_used", Type: field.TypeTime, Nullable: true},
		{Name: "total_xp", Type: field.TypeInt, Default: 0},
	}
	// EngagementStatesTable holds the schema information for the "engagement_states" table.
	EngagementStatesTable = &schema.Table{
		Name:       "engagement_states",
		Columns:    EngagementStatesColumns,
		PrimaryKey: []*schema.Column{EngagementStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "engagementstate_learner_id",
				Unique:  true,
				Columns: []*schema.Column{EngagementStatesColumns[1]},
			},
		},
	}
	// ErrorPatternsColumns holds the columns for the "error_patterns" table.
	ErrorPatternsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "pattern", Type: field.TypeString},
		{Name: "verb", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "example", Type: field.TypeString, Nullable: true},
		{Name: "occurrences", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeString, Default: "watching"},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// ErrorPatternsTable holds the schema information for the "error_patterns" table.
	ErrorPatternsTable = &schema.Table{
		Name:       "error_patterns",
		Columns:    ErrorPatternsColumns,
		PrimaryKey: []*schema.Column{ErrorPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "errorpattern_learner_id_pattern_verb",
				Unique:  true,
				Columns: []*schema.Column{ErrorPatternsColumns[1], ErrorPatternsColumns[2], ErrorPatternsColumns[3]},
			},
			{
				Name:    "errorpattern_learner_id_status",
				Unique:  false,
				Columns: []*schema.Column{ErrorPatternsColumns[1], ErrorPatternsColumns[7]},
			},
		},
	}
	// ReviewItemsColumns holds the columns for the "review_items" table.
	ReviewItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString, Default: "verb"},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "next_review", Type: field.TypeTime},
		{Name: "top_streak", Type: field.TypeInt, Default: 0},
	}
	// ReviewItemsTable holds the schema information for the "review_items" table.
	ReviewItemsTable = &schema.Table{
		Name:       "review_items",
		Columns:    ReviewItemsColumns,
		PrimaryKey: []*schema.Column{ReviewItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewitem_learner_id_key",
				Unique:  true,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[2]},
			},
			{
				Name:    "reviewitem_learner_id_status_next_review",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[5], ReviewItemsColumns[7]},
			},
		},
	}
	// SessionResultsColumns holds the columns for the "session_results" table.
	SessionResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "session_date", Type: field.TypeTime},
		{Name: "total_exercises", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "best_run", Type: field.TypeInt},
		{Name: "xp_awarded", Type: field.TypeInt},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// SessionResultsTable holds the schema information for the "session_results" table.
	SessionResultsTable = &schema.Table{
		Name:       "session_results",
		Columns:    SessionResultsColumns,
		PrimaryKey: []*schema.Column{SessionResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionresult_learner_id_session_date",
				Unique:  false,
				Columns: []*schema.Column{SessionResultsColumns[1], SessionResultsColumns[3]},
			},
		},
	}
	// TopicMasteriesColumns holds the columns for the "topic_masteries" table.
	TopicMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic_key", Type: field.TypeString},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_attempts", Type: field.TypeInt, Default: 0},
	}
	// TopicMasteriesTable holds the schema information for the "topic_masteries" table.
	TopicMasteriesTable = &schema.Table{
		Name:       "topic_masteries",
		Columns:    TopicMasteriesColumns,
		PrimaryKey: []*schema.Column{TopicMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicmastery_learner_id_topic_key",
				Unique:  true,
				Columns: []*schema.Column{TopicMasteriesColumns[1], TopicMasteriesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		EngagementStatesTable,
		ErrorPatternsTable,
		ReviewItemsTable,
		SessionResultsTable,
		TopicMasteriesTable,
	}
)

func init() {
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CacheEntriesColumns holds the columns for the "cache_entries" table.
	CacheEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CacheEntriesTable holds the schema information for the "cache_entries" table.
	CacheEntriesTable = &schema.Table{
		Name:       "cache_entries",
		Columns:    CacheEntriesColumns,
		PrimaryKey: []*schema.Column{CacheEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cacheentry_key",
				Unique:  false,
				Columns: []*schema.Column{CacheEntriesColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "gender", Type: field.TypeString, Default: ""},
		{Name: "age_group", Type: field.TypeString, Default: ""},
		{Name: "nationality", Type: field.TypeString, Default: ""},
		{Name: "ratings", Type: field.TypeJSON, Nullable: true},
		{Name: "seen_questions", Type: field.TypeJSON, Nullable: true},
		{Name: "high_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// QuizResultEventsColumns holds the columns for the "quiz_result_events" table.
	QuizResultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "category_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "ai_score", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeString},
	}
	// QuizResultEventsTable holds the schema information for the "quiz_result_events" table.
	QuizResultEventsTable = &schema.Table{
		Name:       "quiz_result_events",
		Columns:    QuizResultEventsColumns,
		PrimaryKey: []*schema.Column{QuizResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizresultevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[1]},
			},
			{
				Name:    "quizresultevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[2]},
			},
			{
				Name:    "quizresultevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[3]},
			},
			{
				Name:    "quizresultevent_category_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CacheEntriesTable,
		LlmRequestEventsTable,
		ProfilesTable,
		QuizResultEventsTable,
	}
)

func init() {
}

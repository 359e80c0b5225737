// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DoubtMessagesColumns holds the columns for the "doubt_messages" table.
	DoubtMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "sender", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DoubtMessagesTable holds the schema information for the "doubt_messages" table.
	DoubtMessagesTable = &schema.Table{
		Name:       "doubt_messages",
		Columns:    DoubtMessagesColumns,
		PrimaryKey: []*schema.Column{DoubtMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doubtmessage_plan_id_topic",
				Unique:  false,
				Columns: []*schema.Column{DoubtMessagesColumns[1], DoubtMessagesColumns[2]},
			},
			{
				Name:    "doubtmessage_created_at",
				Unique:  false,
				Columns: []*schema.Column{DoubtMessagesColumns[5]},
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
	// MaterialEntriesColumns holds the columns for the "material_entries" table.
	MaterialEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "fetched_at", Type: field.TypeTime},
	}
	// MaterialEntriesTable holds the schema information for the "material_entries" table.
	MaterialEntriesTable = &schema.Table{
		Name:       "material_entries",
		Columns:    MaterialEntriesColumns,
		PrimaryKey: []*schema.Column{MaterialEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "materialentry_topic_kind",
				Unique:  true,
				Columns: []*schema.Column{MaterialEntriesColumns[1], MaterialEntriesColumns[2]},
			},
		},
	}
	// QuizEventsColumns holds the columns for the "quiz_events" table.
	QuizEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "day", Type: field.TypeInt},
		{Name: "topics", Type: field.TypeJSON},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "total", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "auto_submitted", Type: field.TypeBool, Default: false},
	}
	// QuizEventsTable holds the schema information for the "quiz_events" table.
	QuizEventsTable = &schema.Table{
		Name:       "quiz_events",
		Columns:    QuizEventsColumns,
		PrimaryKey: []*schema.Column{QuizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[1]},
			},
			{
				Name:    "quizevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[2]},
			},
			{
				Name:    "quizevent_plan_id_day",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[4], QuizEventsColumns[5]},
			},
			{
				Name:    "quizevent_passed",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[10]},
			},
		},
	}
	// StudyPlansColumns holds the columns for the "study_plans" table.
	StudyPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "exam_name", Type: field.TypeString},
		{Name: "total_days", Type: field.TypeInt},
		{Name: "per_question_seconds", Type: field.TypeInt},
		{Name: "questions_per_quiz", Type: field.TypeInt},
		{Name: "days", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudyPlansTable holds the schema information for the "study_plans" table.
	StudyPlansTable = &schema.Table{
		Name:       "study_plans",
		Columns:    StudyPlansColumns,
		PrimaryKey: []*schema.Column{StudyPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studyplan_exam_name",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[2]},
			},
			{
				Name:    "studyplan_created_at",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DoubtMessagesTable,
		LlmRequestEventsTable,
		MaterialEntriesTable,
		QuizEventsTable,
		StudyPlansTable,
	}
)

func init() {
}

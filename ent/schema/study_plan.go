package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DaySummary is the serialized form of a plan day for persistence.
type DaySummary struct {
	Day    int    `json:"day"`
	Topics string `json:"topics"`
	Status string `json:"status"`
}

// StudyPlan stores a generated study plan and its per-day progress.
type StudyPlan struct {
	ent.Schema
}

func (StudyPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at generation time"),
		field.String("exam_name").
			NotEmpty().
			Comment("Exam the plan prepares for"),
		field.Int("total_days").
			Positive().
			Comment("Number of days the plan spans"),
		field.Int("per_question_seconds").
			Positive().
			Comment("Quiz time allowance per question"),
		field.Int("questions_per_quiz").
			Positive().
			Comment("Questions in each day's quiz"),
		field.JSON("days", []DaySummary{}).
			Comment("Ordered day entries with topics and completion status"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (StudyPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_name"),
		index.Fields("created_at"),
	}
}

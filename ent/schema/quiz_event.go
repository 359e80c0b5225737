package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records the outcome of a submitted quiz attempt.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Comment("UUID of the quiz session"),
		field.String("plan_id").
			NotEmpty().
			Comment("Plan the quiz belongs to"),
		field.Int("day").
			Positive().
			Comment("Plan day the quiz covered"),
		field.JSON("topics", []string{}).
			Comment("Topics the questions were drawn from"),
		field.Float("score").
			Comment("Percentage score, 0-100"),
		field.Int("correct").
			Default(0),
		field.Int("total").
			Positive().
			Comment("Question count"),
		field.Bool("passed").
			Comment("Whether the score met the pass threshold"),
		field.Bool("auto_submitted").
			Default(false).
			Comment("True when the countdown expired before manual submit"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id", "day"),
		index.Fields("passed"),
	}
}

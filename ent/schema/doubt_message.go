package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DoubtMessage is one entry in a per-topic doubt thread. Threads are
// append-only; messages are never edited or deleted.
type DoubtMessage struct {
	ent.Schema
}

func (DoubtMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			NotEmpty().
			Immutable().
			Comment("Plan the doubt was raised under"),
		field.String("topic").
			NotEmpty().
			Immutable().
			Comment("Topic the thread is attached to"),
		field.String("sender").
			NotEmpty().
			Immutable().
			Comment("user or assistant"),
		field.Text("content").
			NotEmpty().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (DoubtMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id", "topic"),
		index.Fields("created_at"),
	}
}

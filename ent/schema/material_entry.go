package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MaterialEntry is the durable side of the material cache: the raw
// collaborator payload for one topic and content kind. The in-memory
// cache writes through here so material survives restarts.
type MaterialEntry struct {
	ent.Schema
}

func (MaterialEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty().
			Comment("Normalized topic name"),
		field.String("kind").
			NotEmpty().
			Comment("summary, revision_notes, full_chapter, practice_quiz"),
		field.Text("payload").
			Comment("Raw response payload, stored verbatim"),
		field.Time("fetched_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MaterialEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic", "kind").Unique(),
	}
}

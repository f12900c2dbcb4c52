package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CacheEntry stores a generated or translated question set keyed by
// topic, difficulty, and language so later sessions skip the LLM.
type CacheEntry struct {
	ent.Schema
}

func (CacheEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Comment("Lower-cased stableID_difficulty_lang"),
		field.Text("payload").
			NotEmpty().
			Comment("Serialized question records as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (CacheEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile is the single-row player state: demographics, per-category
// ratings, the seen-question set, and per-topic high scores.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("gender").
			Default("").
			Comment("Self-reported, free-form"),
		field.String("age_group").
			Default("").
			Comment("Bracket label, e.g. 20s"),
		field.String("nationality").
			Default("").
			Comment("Self-reported country"),
		field.JSON("ratings", map[string]int{}).
			Optional().
			Comment("Per-category rating, absent categories default to 1000"),
		field.JSON("seen_questions", []int{}).
			Optional().
			Comment("Every question id the player has answered"),
		field.JSON("high_scores", map[string]int{}).
			Optional().
			Comment("Best score per topic stable id"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

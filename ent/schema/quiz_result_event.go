package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResultEvent records one completed topic round: the player's score,
// the AI benchmark it was measured against, and the rating context.
type QuizResultEvent struct {
	ent.Schema
}

func (QuizResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping rounds played in one sitting"),
		field.String("category_id").
			NotEmpty().
			Comment("Stable category id, e.g. Science"),
		field.String("topic_id").
			NotEmpty().
			Comment("Stable topic id in the master language"),
		field.Int("score").
			Comment("Percentage of questions answered correctly"),
		field.Int("ai_score").
			Comment("Benchmark score for the difficulty played"),
		field.String("difficulty").
			NotEmpty().
			Comment("EASY, MEDIUM, or HARD"),
	}
}

func (QuizResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("category_id"),
	}
}

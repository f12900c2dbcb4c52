// Code generated by ent, DO NOT EDIT.

package quizresultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/quizclash/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSessionID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldCategoryID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTopicID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldScore, v))
}

// AiScore applies equality check predicate on the "ai_score" field. It's identical to AiScoreEQ.
func AiScore(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldAiScore, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldDifficulty, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContainsFold(FieldCategoryID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContainsFold(FieldTopicID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldScore, v))
}

// AiScoreEQ applies the EQ predicate on the "ai_score" field.
func AiScoreEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldAiScore, v))
}

// AiScoreNEQ applies the NEQ predicate on the "ai_score" field.
func AiScoreNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldAiScore, v))
}

// AiScoreIn applies the In predicate on the "ai_score" field.
func AiScoreIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldAiScore, vs...))
}

// AiScoreNotIn applies the NotIn predicate on the "ai_score" field.
func AiScoreNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldAiScore, vs...))
}

// AiScoreGT applies the GT predicate on the "ai_score" field.
func AiScoreGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldAiScore, v))
}

// AiScoreGTE applies the GTE predicate on the "ai_score" field.
func AiScoreGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldAiScore, v))
}

// AiScoreLT applies the LT predicate on the "ai_score" field.
func AiScoreLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldAiScore, v))
}

// AiScoreLTE applies the LTE predicate on the "ai_score" field.
func AiScoreLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldAiScore, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizResultEvent) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizResultEvent) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizResultEvent) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.NotPredicates(p))
}

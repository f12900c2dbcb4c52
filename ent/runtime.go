// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/quizclash/ent/cacheentry"
	"github.com/abhisek/quizclash/ent/llmrequestevent"
	"github.com/abhisek/quizclash/ent/profile"
	"github.com/abhisek/quizclash/ent/quizresultevent"
	"github.com/abhisek/quizclash/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cacheentryFields := schema.CacheEntry{}.Fields()
	_ = cacheentryFields
	// cacheentryDescKey is the schema descriptor for key field.
	cacheentryDescKey := cacheentryFields[0].Descriptor()
	// cacheentry.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	cacheentry.KeyValidator = cacheentryDescKey.Validators[0].(func(string) error)
	// cacheentryDescPayload is the schema descriptor for payload field.
	cacheentryDescPayload := cacheentryFields[1].Descriptor()
	// cacheentry.PayloadValidator is a validator for the "payload" field. It is called by the builders before save.
	cacheentry.PayloadValidator = cacheentryDescPayload.Validators[0].(func(string) error)
	// cacheentryDescUpdatedAt is the schema descriptor for updated_at field.
	cacheentryDescUpdatedAt := cacheentryFields[2].Descriptor()
	// cacheentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cacheentry.DefaultUpdatedAt = cacheentryDescUpdatedAt.Default.(func() time.Time)
	// cacheentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cacheentry.UpdateDefaultUpdatedAt = cacheentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescGender is the schema descriptor for gender field.
	profileDescGender := profileFields[0].Descriptor()
	// profile.DefaultGender holds the default value on creation for the gender field.
	profile.DefaultGender = profileDescGender.Default.(string)
	// profileDescAgeGroup is the schema descriptor for age_group field.
	profileDescAgeGroup := profileFields[1].Descriptor()
	// profile.DefaultAgeGroup holds the default value on creation for the age_group field.
	profile.DefaultAgeGroup = profileDescAgeGroup.Default.(string)
	// profileDescNationality is the schema descriptor for nationality field.
	profileDescNationality := profileFields[2].Descriptor()
	// profile.DefaultNationality holds the default value on creation for the nationality field.
	profile.DefaultNationality = profileDescNationality.Default.(string)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[6].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizresulteventMixin := schema.QuizResultEvent{}.Mixin()
	quizresulteventMixinFields0 := quizresulteventMixin[0].Fields()
	_ = quizresulteventMixinFields0
	quizresulteventFields := schema.QuizResultEvent{}.Fields()
	_ = quizresulteventFields
	// quizresulteventDescTimestamp is the schema descriptor for timestamp field.
	quizresulteventDescTimestamp := quizresulteventMixinFields0[1].Descriptor()
	// quizresultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizresultevent.DefaultTimestamp = quizresulteventDescTimestamp.Default.(func() time.Time)
	// quizresulteventDescSessionID is the schema descriptor for session_id field.
	quizresulteventDescSessionID := quizresulteventFields[0].Descriptor()
	// quizresultevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizresultevent.SessionIDValidator = quizresulteventDescSessionID.Validators[0].(func(string) error)
	// quizresulteventDescCategoryID is the schema descriptor for category_id field.
	quizresulteventDescCategoryID := quizresulteventFields[1].Descriptor()
	// quizresultevent.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	quizresultevent.CategoryIDValidator = quizresulteventDescCategoryID.Validators[0].(func(string) error)
	// quizresulteventDescTopicID is the schema descriptor for topic_id field.
	quizresulteventDescTopicID := quizresulteventFields[2].Descriptor()
	// quizresultevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	quizresultevent.TopicIDValidator = quizresulteventDescTopicID.Validators[0].(func(string) error)
	// quizresulteventDescDifficulty is the schema descriptor for difficulty field.
	quizresulteventDescDifficulty := quizresulteventFields[5].Descriptor()
	// quizresultevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	quizresultevent.DifficultyValidator = quizresulteventDescDifficulty.Validators[0].(func(string) error)
}

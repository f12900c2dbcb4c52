// Package quizgen produces question sets through the LLM provider: one
// batched generation call for every topic the local tiers could not
// serve, and a translation path that reuses master-language sets.
package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/quizclash/internal/llm"
	"github.com/abhisek/quizclash/internal/quiz"
)

// TopicPrompt pairs a topic with the rating context fed into the prompt.
type TopicPrompt struct {
	Topic  quiz.TopicRequest
	Rating int
}

// BatchInput describes one batched generation call.
type BatchInput struct {
	Topics     []TopicPrompt
	Difficulty quiz.Difficulty
	Language   quiz.Language
	AgeGroup   string
}

// Generator produces question sets using the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// GenerateBatch requests question sets for every topic in one LLM call.
// The result maps topic stable ids to validated records; a topic the
// model skipped is simply absent, and the caller falls back per topic.
func (g *Generator) GenerateBatch(ctx context.Context, in BatchInput) (map[string][]quiz.QuestionRecord, error) {
	if len(in.Topics) == 0 {
		return map[string][]quiz.QuestionRecord{}, nil
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	ids := make([]string, 0, len(in.Topics))
	for _, t := range in.Topics {
		ids = append(ids, t.Topic.StableID)
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildBatchMessage(in)},
		},
		Schema:      BatchSchema(ids),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("batch generation failed: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse batch response: %w", err)
	}

	out := make(map[string][]quiz.QuestionRecord, len(raw))
	for _, id := range ids {
		payload, ok := raw[id]
		if !ok {
			continue
		}
		records, err := quiz.DecodeRecords(payload)
		if err != nil {
			// One bad topic never sinks the batch.
			continue
		}
		out[id] = assignMissingIDs(records)
	}
	return out, nil
}

// Translate renders a master-language set in the target language,
// preserving question ids so seen-tracking carries across languages.
func (g *Generator) Translate(ctx context.Context, records []quiz.QuestionRecord, lang quiz.Language) ([]quiz.QuestionRecord, error) {
	ctx = llm.WithPurpose(ctx, "translate")

	req := llm.Request{
		System: translateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTranslateMessage(records, lang)},
		},
		Schema:      TranslationSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: 0,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	var wrapper struct {
		Questions json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &wrapper); err != nil {
		return nil, fmt.Errorf("parse translation response: %w", err)
	}

	translated, err := quiz.DecodeRecords(wrapper.Questions)
	if err != nil {
		return nil, fmt.Errorf("decode translated records: %w", err)
	}
	if len(translated) != len(records) {
		return nil, fmt.Errorf("translation returned %d records, want %d", len(translated), len(records))
	}

	// Ids must survive translation; restore them positionally in case
	// the model drifted.
	for i := range translated {
		translated[i].ID = records[i].ID
	}
	return translated, nil
}

// assignMissingIDs fills in ids the model omitted or zeroed. Synthetic
// ids sit far above the static bank's range so they never collide with
// curated questions in the seen set.
func assignMissingIDs(records []quiz.QuestionRecord) []quiz.QuestionRecord {
	for i := range records {
		if records[i].ID == 0 {
			records[i].ID = syntheticID()
		}
	}
	return records
}

func syntheticID() int {
	return int(time.Now().UnixMilli()) + rand.IntN(100000)
}

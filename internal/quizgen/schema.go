package quizgen

import "github.com/abhisek/quizclash/internal/llm"

// questionRecordSchema is the JSON schema for a single question record,
// matching the wire format used across the question bank and cache.
var questionRecordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":        "integer",
			"description": "Stable numeric id for seen-question tracking",
		},
		"question": map[string]any{
			"type":        "string",
			"description": "The question prompt shown to the player",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Exactly 4 options where exactly one is correct",
		},
		"correctAnswer": map[string]any{
			"type":        "string",
			"description": "The text of the correct option, verbatim",
		},
		"context": map[string]any{
			"type":        "string",
			"description": "A short, interesting fact explaining the answer",
		},
	},
	"required": []any{"id", "question", "options", "correctAnswer", "context"},
}

// BatchSchema builds the schema for a batch generation response: a JSON
// object with one question array per requested topic, keyed by the
// topic's stable id.
func BatchSchema(stableIDs []string) *llm.Schema {
	props := make(map[string]any, len(stableIDs))
	required := make([]any, 0, len(stableIDs))
	for _, id := range stableIDs {
		props[id] = map[string]any{
			"type":  "array",
			"items": questionRecordSchema,
		}
		required = append(required, id)
	}

	return &llm.Schema{
		Name:        "quiz-batch",
		Description: "Five multiple-choice questions per requested topic",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		},
	}
}

// TranslationSchema is the schema for a translated question set.
var TranslationSchema = &llm.Schema{
	Name:        "quiz-translation",
	Description: "Question records translated into the target language",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": questionRecordSchema,
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

package evaluate

import "github.com/abhisek/quizclash/internal/llm"

// ReportSchema is the JSON schema for a batch evaluation response: one
// report per played topic, in input order.
var ReportSchema = &llm.Schema{
	Name:        "evaluation-report",
	Description: "Per-topic performance reports comparing the player against humans and the AI",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Report title for the topic",
						},
						"humanPercentile": map[string]any{
							"type":        "integer",
							"description": "Estimated percentile among all humans, 0-100",
						},
						"demographicPercentile": map[string]any{
							"type":        "integer",
							"description": "Estimated percentile within the player's demographic, 0-100",
						},
						"demographicComment": map[string]any{
							"type":        "string",
							"description": "Creative comment on the demographic standing",
						},
						"aiComparison": map[string]any{
							"type":        "string",
							"description": "Slightly provocative human-versus-AI comparison",
						},
						"details": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"questionId":  map[string]any{"type": "integer"},
									"isCorrect":   map[string]any{"type": "boolean"},
									"aiComment":   map[string]any{"type": "string"},
									"correctFact": map[string]any{"type": "string"},
								},
								"required": []any{"questionId", "isCorrect", "aiComment", "correctFact"},
							},
						},
					},
					"required": []any{"title", "humanPercentile", "demographicPercentile", "demographicComment", "aiComparison", "details"},
				},
			},
		},
		"required":             []any{"results"},
		"additionalProperties": false,
	},
}

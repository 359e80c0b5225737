package quizgen

import "github.com/abhisek/prepwise/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A set of multiple-choice questions for a daily quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question prompt, self-contained plain text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options, exactly one correct",
						},
						"correct_answer_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Brief rationale for the correct answer",
						},
					},
					"required":             []any{"question_text", "options", "correct_answer_index", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

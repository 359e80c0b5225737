package plan

import "github.com/abhisek/prepwise/internal/llm"

// PlanSchema defines the JSON schema for LLM study plan responses.
var PlanSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A day-by-day topic breakdown for an exam study plan",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"days": map[string]any{
				"type":        "array",
				"description": "One entry per study day, in order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "The 1-based day number, strictly increasing",
						},
						"topics": map[string]any{
							"type":        "string",
							"description": "Free-text topic description, subjects prefixed with a colon and subtopics separated by commas, e.g. 'Math: Algebra, Geometry; Science: Physics.'",
						},
					},
					"required":             []any{"day", "topics"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"days"},
		"additionalProperties": false,
	},
}

package materialgen

import (
	"github.com/abhisek/prepwise/internal/content"
	"github.com/abhisek/prepwise/internal/llm"
)

// RevisionNotesSchema defines the JSON schema for revision-notes
// responses.
var RevisionNotesSchema = &llm.Schema{
	Name:        "revision-notes",
	Description: "Structured revision notes for a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic_name": map[string]any{"type": "string"},
			"revision_notes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":   map[string]any{"type": "string"},
						"summary": map[string]any{"type": "string"},
						"key_points": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"examples": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"mnemonics": map[string]any{"type": "string"},
					},
					"required":             []any{"title", "summary", "key_points", "examples", "mnemonics"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"topic_name", "revision_notes"},
		"additionalProperties": false,
	},
}

// KeyConceptsSchema defines the JSON schema for summary and
// full-chapter responses.
var KeyConceptsSchema = &llm.Schema{
	Name:        "key-concepts",
	Description: "Key concepts covering a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic_name": map[string]any{"type": "string"},
			"key_concepts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"concept":     map[string]any{"type": "string"},
						"explanation": map[string]any{"type": "string"},
						"example":     map[string]any{"type": "string"},
					},
					"required":             []any{"concept", "explanation", "example"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"topic_name", "key_concepts"},
		"additionalProperties": false,
	},
}

// PracticeQuizSchema defines the JSON schema for practice-quiz
// responses.
var PracticeQuizSchema = &llm.Schema{
	Name:        "practice-quiz",
	Description: "Self-study practice questions for a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic_name": map[string]any{"type": "string"},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correct_answer_index": map[string]any{"type": "integer", "minimum": 0},
						"explanation":          map[string]any{"type": "string"},
					},
					"required":             []any{"question_text", "options", "correct_answer_index", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"topic_name", "questions"},
		"additionalProperties": false,
	},
}

// DoubtAnswerSchema defines the JSON schema for doubt-answer responses.
var DoubtAnswerSchema = &llm.Schema{
	Name:        "doubt-answer",
	Description: "A two-level answer to a student doubt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"simple_answer":        map[string]any{"type": "string"},
					"detailed_explanation": map[string]any{"type": "string"},
				},
				"required":             []any{"simple_answer", "detailed_explanation"},
				"additionalProperties": false,
			},
			"tone":          map[string]any{"type": "string"},
			"student_query": map[string]any{"type": "string"},
		},
		"required":             []any{"explanation", "tone", "student_query"},
		"additionalProperties": false,
	},
}

// schemaFor returns the response schema for a content kind.
func schemaFor(kind content.Kind) *llm.Schema {
	switch kind {
	case content.KindRevisionNotes:
		return RevisionNotesSchema
	case content.KindPracticeQuiz:
		return PracticeQuizSchema
	default:
		return KeyConceptsSchema
	}
}

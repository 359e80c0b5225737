package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-answer",
	Description: "A test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "integer", "minimum": 0},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	if err := validateResponse(testSchema, json.RawMessage(`{"answer":"42","score":3}`)); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"answer":`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"score":3}`},
		{"wrong type", `{"answer":42}`},
		{"extra property", `{"answer":"x","extra":true}`},
		{"below minimum", `{"answer":"x","score":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Errorf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

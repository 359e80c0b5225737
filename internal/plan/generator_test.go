package plan

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/prepwise/internal/llm"
)

func TestGenerate_BuildsValidatedPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"days":[
			{"day":1,"topics":"Math: Algebra, Geometry"},
			{"day":2,"topics":"Science: Physics."}
		]}`),
	})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	p, err := g.Generate(context.Background(), GenerateInput{
		ExamName:  "SAT",
		TotalDays: 2,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if p.ID == "" {
		t.Error("expected a generated plan ID")
	}
	if p.TotalDays != 2 || len(p.Days) != 2 {
		t.Errorf("TotalDays = %d, len(Days) = %d, want 2, 2", p.TotalDays, len(p.Days))
	}
	if p.PerQuestionSeconds != DefaultPerQuestionSeconds {
		t.Errorf("PerQuestionSeconds = %d, want default %d", p.PerQuestionSeconds, DefaultPerQuestionSeconds)
	}
	for i, d := range p.Days {
		if d.Status != StatusPending {
			t.Errorf("day %d status = %q, want pending", i, d.Status)
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestGenerate_RejectsBadDayNumbers(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"days":[{"day":1,"topics":"A"},{"day":1,"topics":"B"}]}`),
	})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{ExamName: "SAT", TotalDays: 2}); err == nil {
		t.Error("expected validation error for duplicate day numbers")
	}
}

func TestGenerate_RejectsDayCountMismatch(t *testing.T) {
	tests := []struct {
		name string
		days string
	}{
		{"empty", `[]`},
		{"too few", `[{"day":1,"topics":"A"}]`},
		{"too many", `[{"day":1,"topics":"A"},{"day":2,"topics":"B"},{"day":3,"topics":"C"}]`},
	}
	for _, tt := range tests {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: json.RawMessage(`{"days":` + tt.days + `}`),
		})
		g := NewGenerator(mock, DefaultGeneratorConfig())

		_, err := g.Generate(context.Background(), GenerateInput{ExamName: "SAT", TotalDays: 2})
		if err == nil {
			t.Errorf("%s: expected error when day count differs from request", tt.name)
			continue
		}
		var invalid *llm.ErrInvalidResponse
		if !errors.As(err, &invalid) {
			t.Errorf("%s: error = %v, want ErrInvalidResponse", tt.name, err)
		}
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	g := NewGenerator(mock, DefaultGeneratorConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{ExamName: "SAT", TotalDays: 2}); err == nil {
		t.Error("expected provider error to propagate")
	}
}

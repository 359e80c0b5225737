package plan

import (
	"reflect"
	"testing"
)

func TestExtractTopics_SubjectPrefix(t *testing.T) {
	got := ExtractTopics("Math: Algebra, Geometry; Science: Physics.")
	want := []string{"Math: Algebra", "Math: Geometry", "Science: Physics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTopics = %v, want %v", got, want)
	}
}

func TestExtractTopics_NoPrefix(t *testing.T) {
	got := ExtractTopics("Algebra, Geometry, Trigonometry")
	want := []string{"Algebra", "Geometry", "Trigonometry"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTopics = %v, want %v", got, want)
	}
}

func TestExtractTopics_Newlines(t *testing.T) {
	got := ExtractTopics("History: French Revolution\nGeography: Rivers, Mountains")
	want := []string{
		"History: French Revolution",
		"Geography: Rivers",
		"Geography: Mountains",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTopics = %v, want %v", got, want)
	}
}

func TestExtractTopics_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n", ".;.", ", ,"} {
		got := ExtractTopics(in)
		if len(got) != 0 {
			t.Errorf("ExtractTopics(%q) = %v, want empty", in, got)
		}
	}
}

func TestExtractTopics_TrimsWhitespace(t *testing.T) {
	got := ExtractTopics("  Math :  Algebra ,  ; Physics ")
	want := []string{"Math: Algebra", "Physics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTopics = %v, want %v", got, want)
	}
}

func TestExtractTopics_MixedSegments(t *testing.T) {
	got := ExtractTopics("Warmup drills. Math: Fractions, Decimals")
	want := []string{"Warmup drills", "Math: Fractions", "Math: Decimals"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTopics = %v, want %v", got, want)
	}
}

package materialgen

import (
	"strings"
	"testing"

	"github.com/abhisek/prepwise/internal/content"
)

const revisionJSON = `{
	"topic_name": "Algebra",
	"revision_notes": [{
		"title": "Linear Equations",
		"summary": "Equations of degree one.",
		"key_points": ["one unknown", "one solution"],
		"examples": ["2x + 3 = 7"],
		"mnemonics": "balance both sides"
	}]
}`

func TestDecode_RevisionNotes(t *testing.T) {
	m := Decode(content.KindRevisionNotes, revisionJSON)
	if m.IsOpaque() {
		t.Fatal("expected structured decode, got opaque fallback")
	}
	if m.TopicName != "Algebra" || len(m.Notes) != 1 {
		t.Errorf("unexpected material: %+v", m)
	}
	if m.Notes[0].Title != "Linear Equations" || len(m.Notes[0].KeyPoints) != 2 {
		t.Errorf("unexpected note: %+v", m.Notes[0])
	}
}

func TestDecode_FencedPayload(t *testing.T) {
	fenced := "```json\n" + revisionJSON + "\n```"
	m := Decode(content.KindRevisionNotes, fenced)
	if m.IsOpaque() {
		t.Fatal("fenced JSON should still decode structurally")
	}
	if m.TopicName != "Algebra" {
		t.Errorf("TopicName = %q, want Algebra", m.TopicName)
	}
}

func TestDecode_KeyConcepts(t *testing.T) {
	raw := `{"topic_name":"Physics","key_concepts":[{"concept":"Inertia","explanation":"Resistance to change in motion.","example":"A ball at rest stays at rest."}]}`
	for _, kind := range []content.Kind{content.KindSummary, content.KindFullChapter} {
		m := Decode(kind, raw)
		if m.IsOpaque() || len(m.Concepts) != 1 {
			t.Errorf("Decode(%q) = %+v, want one concept", kind, m)
		}
	}
}

func TestDecode_PracticeQuiz(t *testing.T) {
	raw := `{"topic_name":"Chemistry","questions":[{"question_text":"Symbol for gold?","options":["Au","Ag","Go","Gd"],"correct_answer_index":0,"explanation":"Aurum."}]}`
	m := Decode(content.KindPracticeQuiz, raw)
	if m.IsOpaque() || len(m.Questions) != 1 {
		t.Fatalf("Decode = %+v, want one question", m)
	}
	if m.Questions[0].Options[0] != "Au" {
		t.Errorf("unexpected question: %+v", m.Questions[0])
	}
}

func TestDecode_FallbackToOpaque(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "Here are your revision notes: just read the textbook."},
		{"wrong shape", `{"topic_name":"X","key_concepts":[{"concept":"c","explanation":"e","example":""}]}`},
		{"empty object", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Decode(content.KindRevisionNotes, tt.raw)
			if !m.IsOpaque() {
				t.Errorf("expected opaque fallback, got %+v", m)
			}
			if m.Opaque != strings.TrimSpace(tt.raw) {
				t.Errorf("Opaque = %q, want raw payload preserved", m.Opaque)
			}
		})
	}
}

func TestDecodeDoubt(t *testing.T) {
	raw := "```\n" + `{"explanation":{"simple_answer":"Yes.","detailed_explanation":"Because momentum is conserved."},"tone":"encouraging","student_query":"Is momentum conserved?"}` + "\n```"
	ans, ok := DecodeDoubt(raw)
	if !ok {
		t.Fatal("expected doubt payload to decode")
	}
	if ans.SimpleAnswer != "Yes." || ans.Tone != "encouraging" {
		t.Errorf("unexpected answer: %+v", ans)
	}
}

func TestDecodeDoubt_BadPayload(t *testing.T) {
	if _, ok := DecodeDoubt("plain text answer"); ok {
		t.Error("plain text must not decode as a doubt answer")
	}
	if _, ok := DecodeDoubt(`{"tone":"neutral"}`); ok {
		t.Error("missing explanation must not decode")
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\ntext\n```", "text"},
		{"```json\n{\"a\":1}\n```\n", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := StripFences(tt.in); got != tt.want {
			t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRender_RevisionNotesHasHeadings(t *testing.T) {
	m := Decode(content.KindRevisionNotes, revisionJSON)
	doc := m.Render()
	if !strings.Contains(doc, "# Algebra") || !strings.Contains(doc, "## Linear Equations") {
		t.Errorf("rendered doc missing headings:\n%s", doc)
	}
	if !strings.Contains(doc, "- one unknown") {
		t.Errorf("rendered doc missing key points:\n%s", doc)
	}
}

func TestRender_OnDecodeResult(t *testing.T) {
	// Render and IsOpaque take value receivers so they can be chained
	// straight off Decode without binding first.
	doc := Decode(content.KindRevisionNotes, revisionJSON).Render()
	if !strings.Contains(doc, "# Algebra") {
		t.Errorf("chained render missing heading:\n%s", doc)
	}
	if Decode(content.KindRevisionNotes, revisionJSON).IsOpaque() {
		t.Error("structured payload decoded as opaque")
	}
}

func TestRender_Opaque(t *testing.T) {
	m := Material{Kind: content.KindSummary, Opaque: "raw text"}
	if m.Render() != "raw text" {
		t.Errorf("Render = %q, want raw text", m.Render())
	}
}

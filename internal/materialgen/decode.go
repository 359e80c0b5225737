package materialgen

import (
	"encoding/json"
	"strings"

	"github.com/abhisek/prepwise/internal/content"
)

// Backend responses sometimes arrive as JSON wrapped in markdown code
// fences. Decoding is therefore defensive: unwrap fences, attempt the
// shape the content kind calls for, verify the discriminant field is
// actually present, and fall back to opaque display text on any
// failure. Decoding never returns an error; a payload the client
// cannot parse is still shown to the student as-is.

type revisionNotesPayload struct {
	TopicName     string         `json:"topic_name"`
	RevisionNotes []RevisionNote `json:"revision_notes"`
}

type keyConceptsPayload struct {
	TopicName   string       `json:"topic_name"`
	KeyConcepts []KeyConcept `json:"key_concepts"`
}

type practiceQuizPayload struct {
	TopicName string             `json:"topic_name"`
	Questions []PracticeQuestion `json:"questions"`
}

type doubtPayload struct {
	Explanation  doubtExplanation `json:"explanation"`
	Tone         string           `json:"tone"`
	StudentQuery string           `json:"student_query"`
}

type doubtExplanation struct {
	SimpleAnswer        string `json:"simple_answer"`
	DetailedExplanation string `json:"detailed_explanation"`
}

// Decode parses a material response for the given content kind into a
// typed Material, falling back to the opaque-text variant when the
// payload does not match the expected shape.
func Decode(kind content.Kind, raw string) Material {
	payload := StripFences(raw)

	switch kind {
	case content.KindRevisionNotes:
		var p revisionNotesPayload
		if err := json.Unmarshal([]byte(payload), &p); err == nil && p.RevisionNotes != nil {
			return Material{Kind: kind, TopicName: p.TopicName, Notes: p.RevisionNotes}
		}

	case content.KindSummary, content.KindFullChapter:
		var p keyConceptsPayload
		if err := json.Unmarshal([]byte(payload), &p); err == nil && p.KeyConcepts != nil {
			return Material{Kind: kind, TopicName: p.TopicName, Concepts: p.KeyConcepts}
		}

	case content.KindPracticeQuiz:
		var p practiceQuizPayload
		if err := json.Unmarshal([]byte(payload), &p); err == nil && p.Questions != nil {
			return Material{Kind: kind, TopicName: p.TopicName, Questions: p.Questions}
		}
	}

	return Material{Kind: kind, Opaque: payload}
}

// DecodeDoubt parses a doubt-answer response. The second return is
// false when the payload does not match the doubt shape; the caller
// then treats the raw payload as opaque text.
func DecodeDoubt(raw string) (DoubtAnswer, bool) {
	payload := StripFences(raw)

	var p doubtPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return DoubtAnswer{}, false
	}
	if p.Explanation.SimpleAnswer == "" && p.Explanation.DetailedExplanation == "" {
		return DoubtAnswer{}, false
	}

	return DoubtAnswer{
		SimpleAnswer:        p.Explanation.SimpleAnswer,
		DetailedExplanation: p.Explanation.DetailedExplanation,
		Tone:                p.Tone,
		StudentQuery:        p.StudentQuery,
	}, true
}

// StripFences removes a surrounding markdown code fence (``` or
// ```json) from a payload, returning the inner text trimmed. Payloads
// without fences are returned trimmed but otherwise untouched.
func StripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	// Drop the opening fence line (which may carry a language tag).
	rest := trimmed[3:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[i+1:]
	} else {
		rest = ""
	}

	rest = strings.TrimSuffix(strings.TrimSpace(rest), "```")
	return strings.TrimSpace(rest)
}

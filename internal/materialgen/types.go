package materialgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/prepwise/internal/content"
)

// Input holds the full backend request context for material generation.
type Input struct {
	// ExamName is the exam being prepared for.
	ExamName string

	// Topics are the subtopics to cover, usually a single selected
	// subtopic of the active day.
	Topics []string

	// UserID identifies the student.
	UserID string

	// PlanID is the study plan the request belongs to.
	PlanID string

	// Day is the plan day number.
	Day int

	// Kind selects the shape of material to generate.
	Kind content.Kind
}

// Material is the decoded form of a generation response: a closed set
// of typed variants discriminated by Kind, with a single opaque-text
// fallback for payloads that fail structured decoding.
type Material struct {
	Kind      content.Kind
	TopicName string

	// Notes is set for KindRevisionNotes.
	Notes []RevisionNote

	// Concepts is set for KindSummary and KindFullChapter.
	Concepts []KeyConcept

	// Questions is set for KindPracticeQuiz.
	Questions []PracticeQuestion

	// Opaque holds the raw payload when structured decoding failed.
	// When set, every other variant field is empty.
	Opaque string
}

// IsOpaque reports whether this material fell back to opaque text.
func (m Material) IsOpaque() bool { return m.Opaque != "" }

// RevisionNote is one entry of a revision-notes response.
type RevisionNote struct {
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
	Examples  []string `json:"examples"`
	Mnemonics string   `json:"mnemonics"`
}

// KeyConcept is one entry of a summary or full-chapter response.
type KeyConcept struct {
	Concept     string `json:"concept"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

// PracticeQuestion is one entry of a practice-quiz response. Practice
// questions are for self-study display only and never scored, so they
// stay separate from the quiz engine's question type.
type PracticeQuestion struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	Explanation        string   `json:"explanation"`
}

// DoubtAnswer is the decoded response to a student doubt.
type DoubtAnswer struct {
	SimpleAnswer        string `json:"simple_answer"`
	DetailedExplanation string `json:"detailed_explanation"`
	Tone                string `json:"tone"`
	StudentQuery        string `json:"student_query"`
}

// Render produces the markdown document for this material, with one
// heading per block so the paginator can chunk it on block boundaries.
func (m Material) Render() string {
	if m.IsOpaque() {
		return m.Opaque
	}

	var b strings.Builder
	if m.TopicName != "" {
		fmt.Fprintf(&b, "# %s\n", m.TopicName)
	}

	switch m.Kind {
	case content.KindRevisionNotes:
		for _, n := range m.Notes {
			fmt.Fprintf(&b, "## %s\n%s\n", n.Title, n.Summary)
			if len(n.KeyPoints) > 0 {
				b.WriteString("Key points:\n")
				for _, p := range n.KeyPoints {
					fmt.Fprintf(&b, "- %s\n", p)
				}
			}
			for _, ex := range n.Examples {
				fmt.Fprintf(&b, "Example: %s\n", ex)
			}
			if n.Mnemonics != "" {
				fmt.Fprintf(&b, "Mnemonic: %s\n", n.Mnemonics)
			}
		}

	case content.KindSummary, content.KindFullChapter:
		for _, c := range m.Concepts {
			fmt.Fprintf(&b, "## %s\n%s\n", c.Concept, c.Explanation)
			if c.Example != "" {
				fmt.Fprintf(&b, "Example: %s\n", c.Example)
			}
		}

	case content.KindPracticeQuiz:
		for i, q := range m.Questions {
			fmt.Fprintf(&b, "## Question %d\n%s\n", i+1, q.QuestionText)
			for j, opt := range q.Options {
				fmt.Fprintf(&b, "%c) %s\n", 'A'+j, opt)
			}
			if q.CorrectAnswerIndex >= 0 && q.CorrectAnswerIndex < len(q.Options) {
				fmt.Fprintf(&b, "Answer: %c — %s\n", 'A'+q.CorrectAnswerIndex, q.Explanation)
			}
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

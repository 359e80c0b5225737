package materialgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/prepwise/internal/content"
)

const systemPrompt = `You are an exam coach writing focused study material for one student.

Rules:
- Stay strictly within the listed topics; do not pad with adjacent material.
- Write for a student revising under time pressure: short sentences, concrete facts, no filler.
- Match the requested material kind exactly.
- Plain text inside all fields. No markdown syntax inside string values.`

const doubtSystemPrompt = `You are a patient exam tutor answering one student doubt.

Rules:
- Give a one-or-two sentence simple answer first, then a detailed explanation.
- Ground the explanation in the topic the doubt was asked under.
- Encourage without condescending; set the tone field to "encouraging" or "neutral".
- Echo the student's question in student_query unchanged.`

// kindInstructions maps a content kind to its generation directive.
var kindInstructions = map[content.Kind]string{
	content.KindSummary:       "Produce a concise summary: the key concepts a student must retain, each with a short explanation and one example.",
	content.KindRevisionNotes: "Produce revision notes: titled sections with a summary, bullet key points, worked examples, and a mnemonic where one genuinely helps.",
	content.KindFullChapter:   "Produce full chapter coverage: every concept in the topic explained thoroughly with an example each.",
	content.KindPracticeQuiz:  "Produce practice questions with 4 options each, one correct, and a brief explanation per question.",
}

// buildUserMessage constructs the user message from the request input.
func buildUserMessage(input Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Exam: %s\n", input.ExamName)
	fmt.Fprintf(&b, "Day %d topics:\n", input.Day)
	for _, t := range input.Topics {
		fmt.Fprintf(&b, "- %s\n", t)
	}
	if instr, ok := kindInstructions[input.Kind]; ok {
		b.WriteString("\n")
		b.WriteString(instr)
		b.WriteString("\n")
	}
	return b.String()
}

// buildDoubtUserMessage constructs the user message for a doubt request.
func buildDoubtUserMessage(examName, topic, query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Exam: %s\n", examName)
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Student doubt: %s\n", query)
	return b.String()
}

package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an exam coach writing a short daily quiz.

Rules:
- Write exactly the requested number of multiple-choice questions.
- Cover the listed topics evenly; do not invent topics outside the list.
- Each question has exactly 4 options with exactly one correct answer.
- Distractors should reflect plausible mistakes, not obviously wrong filler.
- Questions must be answerable within the stated time allowance — no multi-part questions.
- The explanation states why the correct option is right in one or two sentences.
- Plain text only. No markdown, no numbering prefixes in the question text.`

// buildUserMessage constructs the user message from GenerateInput.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Exam: %s\n", input.ExamName)
	fmt.Fprintf(&b, "Topics:\n")
	for _, topic := range input.Topics {
		fmt.Fprintf(&b, "- %s\n", topic)
	}
	fmt.Fprintf(&b, "Questions: %d\n", input.QuestionsPerQuiz)
	fmt.Fprintf(&b, "Time allowance per question: %d seconds\n", input.PerQuestionSeconds)
	return b.String()
}

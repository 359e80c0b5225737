package plan

import (
	"fmt"
	"strings"
)

const planSystemPrompt = `You are an exam preparation coach building a multi-day study plan.

Rules:
- Produce exactly the requested number of days, numbered 1 through N with no gaps.
- Each day's topics field is a single line: subject names followed by a colon and a comma-separated list of subtopics, with subjects separated by semicolons, e.g. "Math: Algebra, Geometry; Science: Physics."
- Order topics so that foundational material comes before material that depends on it.
- Spread the syllabus evenly; do not front-load everything into the first days.
- Keep subtopic names short and concrete. No commentary outside the schema.`

// buildPlanUserMessage constructs the user message for plan generation.
func buildPlanUserMessage(input GenerateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Exam: %s\n", input.ExamName)
	fmt.Fprintf(&b, "Days available: %d\n", input.TotalDays)
	fmt.Fprintf(&b, "Questions per daily quiz: %d\n", input.QuestionsPerQuiz)
	return b.String()
}

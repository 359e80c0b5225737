package quizgen

// Question is a generated multiple-choice quiz question ready for display.
type Question struct {
	// Text is the question prompt shown to the student.
	Text string

	// Options is the ordered list of answer options.
	Options []string

	// CorrectIndex is the index into Options of the correct answer.
	CorrectIndex int

	// Explanation is a brief rationale shown after submission.
	Explanation string
}

// GenerateInput holds the full backend request context for quiz
// question generation.
type GenerateInput struct {
	// Topics are the subtopics the quiz should cover, as produced by
	// the topic extractor for the active day.
	Topics []string

	// ExamName is the exam being prepared for.
	ExamName string

	// TotalDays is the plan length, for difficulty calibration.
	TotalDays int

	// UserID identifies the student.
	UserID string

	// StudyPlanID is the plan this quiz belongs to.
	StudyPlanID string

	// QuestionsPerQuiz is the number of questions to generate.
	QuestionsPerQuiz int

	// PerQuestionSeconds is the time allowance per question, included
	// so generation can calibrate question length.
	PerQuestionSeconds int
}

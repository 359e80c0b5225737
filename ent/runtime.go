// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/prepwise/ent/doubtmessage"
	"github.com/abhisek/prepwise/ent/llmrequestevent"
	"github.com/abhisek/prepwise/ent/materialentry"
	"github.com/abhisek/prepwise/ent/quizevent"
	"github.com/abhisek/prepwise/ent/schema"
	"github.com/abhisek/prepwise/ent/studyplan"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	doubtmessageFields := schema.DoubtMessage{}.Fields()
	_ = doubtmessageFields
	// doubtmessageDescPlanID is the schema descriptor for plan_id field.
	doubtmessageDescPlanID := doubtmessageFields[0].Descriptor()
	// doubtmessage.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	doubtmessage.PlanIDValidator = doubtmessageDescPlanID.Validators[0].(func(string) error)
	// doubtmessageDescTopic is the schema descriptor for topic field.
	doubtmessageDescTopic := doubtmessageFields[1].Descriptor()
	// doubtmessage.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	doubtmessage.TopicValidator = doubtmessageDescTopic.Validators[0].(func(string) error)
	// doubtmessageDescSender is the schema descriptor for sender field.
	doubtmessageDescSender := doubtmessageFields[2].Descriptor()
	// doubtmessage.SenderValidator is a validator for the "sender" field. It is called by the builders before save.
	doubtmessage.SenderValidator = doubtmessageDescSender.Validators[0].(func(string) error)
	// doubtmessageDescContent is the schema descriptor for content field.
	doubtmessageDescContent := doubtmessageFields[3].Descriptor()
	// doubtmessage.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	doubtmessage.ContentValidator = doubtmessageDescContent.Validators[0].(func(string) error)
	// doubtmessageDescCreatedAt is the schema descriptor for created_at field.
	doubtmessageDescCreatedAt := doubtmessageFields[4].Descriptor()
	// doubtmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	doubtmessage.DefaultCreatedAt = doubtmessageDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	materialentryFields := schema.MaterialEntry{}.Fields()
	_ = materialentryFields
	// materialentryDescTopic is the schema descriptor for topic field.
	materialentryDescTopic := materialentryFields[0].Descriptor()
	// materialentry.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	materialentry.TopicValidator = materialentryDescTopic.Validators[0].(func(string) error)
	// materialentryDescKind is the schema descriptor for kind field.
	materialentryDescKind := materialentryFields[1].Descriptor()
	// materialentry.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	materialentry.KindValidator = materialentryDescKind.Validators[0].(func(string) error)
	// materialentryDescFetchedAt is the schema descriptor for fetched_at field.
	materialentryDescFetchedAt := materialentryFields[3].Descriptor()
	// materialentry.DefaultFetchedAt holds the default value on creation for the fetched_at field.
	materialentry.DefaultFetchedAt = materialentryDescFetchedAt.Default.(func() time.Time)
	// materialentry.UpdateDefaultFetchedAt holds the default value on update for the fetched_at field.
	materialentry.UpdateDefaultFetchedAt = materialentryDescFetchedAt.UpdateDefault.(func() time.Time)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescQuizID is the schema descriptor for quiz_id field.
	quizeventDescQuizID := quizeventFields[0].Descriptor()
	// quizevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quizevent.QuizIDValidator = quizeventDescQuizID.Validators[0].(func(string) error)
	// quizeventDescPlanID is the schema descriptor for plan_id field.
	quizeventDescPlanID := quizeventFields[1].Descriptor()
	// quizevent.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	quizevent.PlanIDValidator = quizeventDescPlanID.Validators[0].(func(string) error)
	// quizeventDescDay is the schema descriptor for day field.
	quizeventDescDay := quizeventFields[2].Descriptor()
	// quizevent.DayValidator is a validator for the "day" field. It is called by the builders before save.
	quizevent.DayValidator = quizeventDescDay.Validators[0].(func(int) error)
	// quizeventDescCorrect is the schema descriptor for correct field.
	quizeventDescCorrect := quizeventFields[5].Descriptor()
	// quizevent.DefaultCorrect holds the default value on creation for the correct field.
	quizevent.DefaultCorrect = quizeventDescCorrect.Default.(int)
	// quizeventDescTotal is the schema descriptor for total field.
	quizeventDescTotal := quizeventFields[6].Descriptor()
	// quizevent.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	quizevent.TotalValidator = quizeventDescTotal.Validators[0].(func(int) error)
	// quizeventDescAutoSubmitted is the schema descriptor for auto_submitted field.
	quizeventDescAutoSubmitted := quizeventFields[8].Descriptor()
	// quizevent.DefaultAutoSubmitted holds the default value on creation for the auto_submitted field.
	quizevent.DefaultAutoSubmitted = quizeventDescAutoSubmitted.Default.(bool)
	studyplanFields := schema.StudyPlan{}.Fields()
	_ = studyplanFields
	// studyplanDescPlanID is the schema descriptor for plan_id field.
	studyplanDescPlanID := studyplanFields[0].Descriptor()
	// studyplan.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	studyplan.PlanIDValidator = studyplanDescPlanID.Validators[0].(func(string) error)
	// studyplanDescExamName is the schema descriptor for exam_name field.
	studyplanDescExamName := studyplanFields[1].Descriptor()
	// studyplan.ExamNameValidator is a validator for the "exam_name" field. It is called by the builders before save.
	studyplan.ExamNameValidator = studyplanDescExamName.Validators[0].(func(string) error)
	// studyplanDescTotalDays is the schema descriptor for total_days field.
	studyplanDescTotalDays := studyplanFields[2].Descriptor()
	// studyplan.TotalDaysValidator is a validator for the "total_days" field. It is called by the builders before save.
	studyplan.TotalDaysValidator = studyplanDescTotalDays.Validators[0].(func(int) error)
	// studyplanDescPerQuestionSeconds is the schema descriptor for per_question_seconds field.
	studyplanDescPerQuestionSeconds := studyplanFields[3].Descriptor()
	// studyplan.PerQuestionSecondsValidator is a validator for the "per_question_seconds" field. It is called by the builders before save.
	studyplan.PerQuestionSecondsValidator = studyplanDescPerQuestionSeconds.Validators[0].(func(int) error)
	// studyplanDescQuestionsPerQuiz is the schema descriptor for questions_per_quiz field.
	studyplanDescQuestionsPerQuiz := studyplanFields[4].Descriptor()
	// studyplan.QuestionsPerQuizValidator is a validator for the "questions_per_quiz" field. It is called by the builders before save.
	studyplan.QuestionsPerQuizValidator = studyplanDescQuestionsPerQuiz.Validators[0].(func(int) error)
	// studyplanDescCreatedAt is the schema descriptor for created_at field.
	studyplanDescCreatedAt := studyplanFields[6].Descriptor()
	// studyplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	studyplan.DefaultCreatedAt = studyplanDescCreatedAt.Default.(func() time.Time)
	// studyplanDescUpdatedAt is the schema descriptor for updated_at field.
	studyplanDescUpdatedAt := studyplanFields[7].Descriptor()
	// studyplan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studyplan.DefaultUpdatedAt = studyplanDescUpdatedAt.Default.(func() time.Time)
	// studyplan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studyplan.UpdateDefaultUpdatedAt = studyplanDescUpdatedAt.UpdateDefault.(func() time.Time)
}

// Code generated by ent, DO NOT EDIT.

package studyplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the studyplan type in the database.
	Label = "study_plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldExamName holds the string denoting the exam_name field in the database.
	FieldExamName = "exam_name"
	// FieldTotalDays holds the string denoting the total_days field in the database.
	FieldTotalDays = "total_days"
	// FieldPerQuestionSeconds holds the string denoting the per_question_seconds field in the database.
	FieldPerQuestionSeconds = "per_question_seconds"
	// FieldQuestionsPerQuiz holds the string denoting the questions_per_quiz field in the database.
	FieldQuestionsPerQuiz = "questions_per_quiz"
	// FieldDays holds the string denoting the days field in the database.
	FieldDays = "days"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the studyplan in the database.
	Table = "study_plans"
)

// Columns holds all SQL columns for studyplan fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldExamName,
	FieldTotalDays,
	FieldPerQuestionSeconds,
	FieldQuestionsPerQuiz,
	FieldDays,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// ExamNameValidator is a validator for the "exam_name" field. It is called by the builders before save.
	ExamNameValidator func(string) error
	// TotalDaysValidator is a validator for the "total_days" field. It is called by the builders before save.
	TotalDaysValidator func(int) error
	// PerQuestionSecondsValidator is a validator for the "per_question_seconds" field. It is called by the builders before save.
	PerQuestionSecondsValidator func(int) error
	// QuestionsPerQuizValidator is a validator for the "questions_per_quiz" field. It is called by the builders before save.
	QuestionsPerQuizValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the StudyPlan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByExamName orders the results by the exam_name field.
func ByExamName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamName, opts...).ToFunc()
}

// ByTotalDays orders the results by the total_days field.
func ByTotalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDays, opts...).ToFunc()
}

// ByPerQuestionSeconds orders the results by the per_question_seconds field.
func ByPerQuestionSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerQuestionSeconds, opts...).ToFunc()
}

// ByQuestionsPerQuiz orders the results by the questions_per_quiz field.
func ByQuestionsPerQuiz(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsPerQuiz, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

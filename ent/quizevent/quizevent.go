// Code generated by ent, DO NOT EDIT.

package quizevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizevent type in the database.
	Label = "quiz_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldQuizID holds the string denoting the quiz_id field in the database.
	FieldQuizID = "quiz_id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldAutoSubmitted holds the string denoting the auto_submitted field in the database.
	FieldAutoSubmitted = "auto_submitted"
	// Table holds the table name of the quizevent in the database.
	Table = "quiz_events"
)

// Columns holds all SQL columns for quizevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldQuizID,
	FieldPlanID,
	FieldDay,
	FieldTopics,
	FieldScore,
	FieldCorrect,
	FieldTotal,
	FieldPassed,
	FieldAutoSubmitted,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	QuizIDValidator func(string) error
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// DayValidator is a validator for the "day" field. It is called by the builders before save.
	DayValidator func(int) error
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect int
	// TotalValidator is a validator for the "total" field. It is called by the builders before save.
	TotalValidator func(int) error
	// DefaultAutoSubmitted holds the default value on creation for the "auto_submitted" field.
	DefaultAutoSubmitted bool
)

// OrderOption defines the ordering options for the QuizEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByQuizID orders the results by the quiz_id field.
func ByQuizID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByAutoSubmitted orders the results by the auto_submitted field.
func ByAutoSubmitted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoSubmitted, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepwise/ent/schema"
	"github.com/abhisek/prepwise/ent/studyplan"
)

// StudyPlan is the model entity for the StudyPlan schema.
type StudyPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID assigned at generation time
	PlanID string `json:"plan_id,omitempty"`
	// Exam the plan prepares for
	ExamName string `json:"exam_name,omitempty"`
	// Number of days the plan spans
	TotalDays int `json:"total_days,omitempty"`
	// Quiz time allowance per question
	PerQuestionSeconds int `json:"per_question_seconds,omitempty"`
	// Questions in each day's quiz
	QuestionsPerQuiz int `json:"questions_per_quiz,omitempty"`
	// Ordered day entries with topics and completion status
	Days []schema.DaySummary `json:"days,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudyPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studyplan.FieldDays:
			values[i] = new([]byte)
		case studyplan.FieldID, studyplan.FieldTotalDays, studyplan.FieldPerQuestionSeconds, studyplan.FieldQuestionsPerQuiz:
			values[i] = new(sql.NullInt64)
		case studyplan.FieldPlanID, studyplan.FieldExamName:
			values[i] = new(sql.NullString)
		case studyplan.FieldCreatedAt, studyplan.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudyPlan fields.
func (_m *StudyPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studyplan.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studyplan.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case studyplan.FieldExamName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_name", values[i])
			} else if value.Valid {
				_m.ExamName = value.String
			}
		case studyplan.FieldTotalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_days", values[i])
			} else if value.Valid {
				_m.TotalDays = int(value.Int64)
			}
		case studyplan.FieldPerQuestionSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field per_question_seconds", values[i])
			} else if value.Valid {
				_m.PerQuestionSeconds = int(value.Int64)
			}
		case studyplan.FieldQuestionsPerQuiz:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_per_quiz", values[i])
			} else if value.Valid {
				_m.QuestionsPerQuiz = int(value.Int64)
			}
		case studyplan.FieldDays:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field days", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Days); err != nil {
					return fmt.Errorf("unmarshal field days: %w", err)
				}
			}
		case studyplan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case studyplan.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudyPlan.
// This includes values selected through modifiers, order, etc.
func (_m *StudyPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudyPlan.
// Note that you need to call StudyPlan.Unwrap() before calling this method if this StudyPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudyPlan) Update() *StudyPlanUpdateOne {
	return NewStudyPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudyPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudyPlan) Unwrap() *StudyPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudyPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudyPlan) String() string {
	var builder strings.Builder
	builder.WriteString("StudyPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("exam_name=")
	builder.WriteString(_m.ExamName)
	builder.WriteString(", ")
	builder.WriteString("total_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalDays))
	builder.WriteString(", ")
	builder.WriteString("per_question_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.PerQuestionSeconds))
	builder.WriteString(", ")
	builder.WriteString("questions_per_quiz=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsPerQuiz))
	builder.WriteString(", ")
	builder.WriteString("days=")
	builder.WriteString(fmt.Sprintf("%v", _m.Days))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudyPlans is a parsable slice of StudyPlan.
type StudyPlans []*StudyPlan

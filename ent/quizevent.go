// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepwise/ent/quizevent"
)

// QuizEvent is the model entity for the QuizEvent schema.
type QuizEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event stream, shared across event types
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the quiz session
	QuizID string `json:"quiz_id,omitempty"`
	// Plan the quiz belongs to
	PlanID string `json:"plan_id,omitempty"`
	// Plan day the quiz covered
	Day int `json:"day,omitempty"`
	// Topics the questions were drawn from
	Topics []string `json:"topics,omitempty"`
	// Percentage score, 0-100
	Score float64 `json:"score,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct int `json:"correct,omitempty"`
	// Question count
	Total int `json:"total,omitempty"`
	// Whether the score met the pass threshold
	Passed bool `json:"passed,omitempty"`
	// True when the countdown expired before manual submit
	AutoSubmitted bool `json:"auto_submitted,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizevent.FieldTopics:
			values[i] = new([]byte)
		case quizevent.FieldPassed, quizevent.FieldAutoSubmitted:
			values[i] = new(sql.NullBool)
		case quizevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case quizevent.FieldID, quizevent.FieldSequence, quizevent.FieldDay, quizevent.FieldCorrect, quizevent.FieldTotal:
			values[i] = new(sql.NullInt64)
		case quizevent.FieldQuizID, quizevent.FieldPlanID:
			values[i] = new(sql.NullString)
		case quizevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizEvent fields.
func (_m *QuizEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case quizevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case quizevent.FieldQuizID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_id", values[i])
			} else if value.Valid {
				_m.QuizID = value.String
			}
		case quizevent.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case quizevent.FieldDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = int(value.Int64)
			}
		case quizevent.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case quizevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case quizevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case quizevent.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case quizevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case quizevent.FieldAutoSubmitted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_submitted", values[i])
			} else if value.Valid {
				_m.AutoSubmitted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizEvent.
// This includes values selected through modifiers, order, etc.
func (_m *QuizEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizEvent.
// Note that you need to call QuizEvent.Unwrap() before calling this method if this QuizEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizEvent) Update() *QuizEventUpdateOne {
	return NewQuizEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizEvent) Unwrap() *QuizEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuizEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("quiz_id=")
	builder.WriteString(_m.QuizID)
	builder.WriteString(", ")
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(fmt.Sprintf("%v", _m.Day))
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("auto_submitted=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoSubmitted))
	builder.WriteByte(')')
	return builder.String()
}

// QuizEvents is a parsable slice of QuizEvent.
type QuizEvents []*QuizEvent

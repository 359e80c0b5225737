// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepwise/ent/materialentry"
)

// MaterialEntry is the model entity for the MaterialEntry schema.
type MaterialEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Normalized topic name
	Topic string `json:"topic,omitempty"`
	// summary, revision_notes, full_chapter, practice_quiz
	Kind string `json:"kind,omitempty"`
	// Raw response payload, stored verbatim
	Payload string `json:"payload,omitempty"`
	// FetchedAt holds the value of the "fetched_at" field.
	FetchedAt    time.Time `json:"fetched_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MaterialEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case materialentry.FieldID:
			values[i] = new(sql.NullInt64)
		case materialentry.FieldTopic, materialentry.FieldKind, materialentry.FieldPayload:
			values[i] = new(sql.NullString)
		case materialentry.FieldFetchedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MaterialEntry fields.
func (_m *MaterialEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case materialentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case materialentry.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case materialentry.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case materialentry.FieldPayload:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value.Valid {
				_m.Payload = value.String
			}
		case materialentry.FieldFetchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fetched_at", values[i])
			} else if value.Valid {
				_m.FetchedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MaterialEntry.
// This includes values selected through modifiers, order, etc.
func (_m *MaterialEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MaterialEntry.
// Note that you need to call MaterialEntry.Unwrap() before calling this method if this MaterialEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MaterialEntry) Update() *MaterialEntryUpdateOne {
	return NewMaterialEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MaterialEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MaterialEntry) Unwrap() *MaterialEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MaterialEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MaterialEntry) String() string {
	var builder strings.Builder
	builder.WriteString("MaterialEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(_m.Payload)
	builder.WriteString(", ")
	builder.WriteString("fetched_at=")
	builder.WriteString(_m.FetchedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MaterialEntries is a parsable slice of MaterialEntry.
type MaterialEntries []*MaterialEntry

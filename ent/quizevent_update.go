// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepwise/ent/predicate"
	"github.com/abhisek/prepwise/ent/quizevent"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizEventUpdate) SetQuizID(v string) *QuizEventUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableQuizID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *QuizEventUpdate) SetPlanID(v string) *QuizEventUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillablePlanID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *QuizEventUpdate) SetDay(v int) *QuizEventUpdate {
	_u.mutation.ResetDay()
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableDay(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// AddDay adds value to the "day" field.
func (_u *QuizEventUpdate) AddDay(v int) *QuizEventUpdate {
	_u.mutation.AddDay(v)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *QuizEventUpdate) SetTopics(v []string) *QuizEventUpdate {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *QuizEventUpdate) AppendTopics(v []string) *QuizEventUpdate {
	_u.mutation.AppendTopics(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdate) SetScore(v float64) *QuizEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableScore(v *float64) *QuizEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdate) AddScore(v float64) *QuizEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizEventUpdate) SetCorrect(v int) *QuizEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableCorrect(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *QuizEventUpdate) AddCorrect(v int) *QuizEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizEventUpdate) SetTotal(v int) *QuizEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableTotal(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizEventUpdate) AddTotal(v int) *QuizEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizEventUpdate) SetPassed(v bool) *QuizEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillablePassed(v *bool) *QuizEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_u *QuizEventUpdate) SetAutoSubmitted(v bool) *QuizEventUpdate {
	_u.mutation.SetAutoSubmitted(v)
	return _u
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableAutoSubmitted(v *bool) *QuizEventUpdate {
	if v != nil {
		_u.SetAutoSubmitted(*v)
	}
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdate) check() error {
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanID(); ok {
		if err := quizevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := quizevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := quizevent.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.total": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(quizevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(quizevent.FieldDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDay(); ok {
		_spec.AddField(quizevent.FieldDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(quizevent.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizevent.FieldTopics, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(quizevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AutoSubmitted(); ok {
		_spec.SetField(quizevent.FieldAutoSubmitted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetQuizID sets the "quiz_id" field.
func (_u *QuizEventUpdateOne) SetQuizID(v string) *QuizEventUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableQuizID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *QuizEventUpdateOne) SetPlanID(v string) *QuizEventUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillablePlanID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *QuizEventUpdateOne) SetDay(v int) *QuizEventUpdateOne {
	_u.mutation.ResetDay()
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableDay(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// AddDay adds value to the "day" field.
func (_u *QuizEventUpdateOne) AddDay(v int) *QuizEventUpdateOne {
	_u.mutation.AddDay(v)
	return _u
}

// SetTopics sets the "topics" field.
func (_u *QuizEventUpdateOne) SetTopics(v []string) *QuizEventUpdateOne {
	_u.mutation.SetTopics(v)
	return _u
}

// AppendTopics appends value to the "topics" field.
func (_u *QuizEventUpdateOne) AppendTopics(v []string) *QuizEventUpdateOne {
	_u.mutation.AppendTopics(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdateOne) SetScore(v float64) *QuizEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableScore(v *float64) *QuizEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdateOne) AddScore(v float64) *QuizEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizEventUpdateOne) SetCorrect(v int) *QuizEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableCorrect(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *QuizEventUpdateOne) AddCorrect(v int) *QuizEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizEventUpdateOne) SetTotal(v int) *QuizEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableTotal(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizEventUpdateOne) AddTotal(v int) *QuizEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizEventUpdateOne) SetPassed(v bool) *QuizEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillablePassed(v *bool) *QuizEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_u *QuizEventUpdateOne) SetAutoSubmitted(v bool) *QuizEventUpdateOne {
	_u.mutation.SetAutoSubmitted(v)
	return _u
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableAutoSubmitted(v *bool) *QuizEventUpdateOne {
	if v != nil {
		_u.SetAutoSubmitted(*v)
	}
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuizID(); ok {
		if err := quizevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.quiz_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanID(); ok {
		if err := quizevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Day(); ok {
		if err := quizevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Total(); ok {
		if err := quizevent.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.total": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(quizevent.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(quizevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(quizevent.FieldDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDay(); ok {
		_spec.AddField(quizevent.FieldDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topics(); ok {
		_spec.SetField(quizevent.FieldTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizevent.FieldTopics, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(quizevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AutoSubmitted(); ok {
		_spec.SetField(quizevent.FieldAutoSubmitted, field.TypeBool, value)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepwise/ent/quizevent"
)

// QuizEventCreate is the builder for creating a QuizEvent entity.
type QuizEventCreate struct {
	config
	mutation *QuizEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizEventCreate) SetSequence(v int64) *QuizEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizEventCreate) SetTimestamp(v time.Time) *QuizEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableTimestamp(v *time.Time) *QuizEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuizID sets the "quiz_id" field.
func (_c *QuizEventCreate) SetQuizID(v string) *QuizEventCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *QuizEventCreate) SetPlanID(v string) *QuizEventCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *QuizEventCreate) SetDay(v int) *QuizEventCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetTopics sets the "topics" field.
func (_c *QuizEventCreate) SetTopics(v []string) *QuizEventCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizEventCreate) SetScore(v float64) *QuizEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *QuizEventCreate) SetCorrect(v int) *QuizEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableCorrect(v *int) *QuizEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *QuizEventCreate) SetTotal(v int) *QuizEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *QuizEventCreate) SetPassed(v bool) *QuizEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_c *QuizEventCreate) SetAutoSubmitted(v bool) *QuizEventCreate {
	_c.mutation.SetAutoSubmitted(v)
	return _c
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableAutoSubmitted(v *bool) *QuizEventCreate {
	if v != nil {
		_c.SetAutoSubmitted(*v)
	}
	return _c
}

// Mutation returns the QuizEventMutation object of the builder.
func (_c *QuizEventCreate) Mutation() *QuizEventMutation {
	return _c.mutation
}

// Save creates the QuizEvent in the database.
func (_c *QuizEventCreate) Save(ctx context.Context) (*QuizEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizEventCreate) SaveX(ctx context.Context) *QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := quizevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.AutoSubmitted(); !ok {
		v := quizevent.DefaultAutoSubmitted
		_c.mutation.SetAutoSubmitted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuizID(); !ok {
		return &ValidationError{Name: "quiz_id", err: errors.New(`ent: missing required field "QuizEvent.quiz_id"`)}
	}
	if v, ok := _c.mutation.QuizID(); ok {
		if err := quizevent.QuizIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.quiz_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "QuizEvent.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := quizevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "QuizEvent.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := quizevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topics(); !ok {
		return &ValidationError{Name: "topics", err: errors.New(`ent: missing required field "QuizEvent.topics"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizEvent.score"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "QuizEvent.correct"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "QuizEvent.total"`)}
	}
	if v, ok := _c.mutation.Total(); ok {
		if err := quizevent.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "QuizEvent.passed"`)}
	}
	if _, ok := _c.mutation.AutoSubmitted(); !ok {
		return &ValidationError{Name: "auto_submitted", err: errors.New(`ent: missing required field "QuizEvent.auto_submitted"`)}
	}
	return nil
}

func (_c *QuizEventCreate) sqlSave(ctx context.Context) (*QuizEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizEventCreate) createSpec() (*QuizEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizevent.Table, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuizID(); ok {
		_spec.SetField(quizevent.FieldQuizID, field.TypeString, value)
		_node.QuizID = value
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(quizevent.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(quizevent.FieldDay, field.TypeInt, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(quizevent.FieldTopics, field.TypeJSON, value)
		_node.Topics = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(quizevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(quizevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(quizevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.AutoSubmitted(); ok {
		_spec.SetField(quizevent.FieldAutoSubmitted, field.TypeBool, value)
		_node.AutoSubmitted = value
	}
	return _node, _spec
}

// QuizEventCreateBulk is the builder for creating many QuizEvent entities in bulk.
type QuizEventCreateBulk struct {
	config
	err      error
	builders []*QuizEventCreate
}

// Save creates the QuizEvent entities in the database.
func (_c *QuizEventCreateBulk) Save(ctx context.Context) ([]*QuizEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizEventCreateBulk) SaveX(ctx context.Context) []*QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

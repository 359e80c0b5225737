// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepwise/ent/doubtmessage"
)

// DoubtMessageCreate is the builder for creating a DoubtMessage entity.
type DoubtMessageCreate struct {
	config
	mutation *DoubtMessageMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *DoubtMessageCreate) SetPlanID(v string) *DoubtMessageCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *DoubtMessageCreate) SetTopic(v string) *DoubtMessageCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSender sets the "sender" field.
func (_c *DoubtMessageCreate) SetSender(v string) *DoubtMessageCreate {
	_c.mutation.SetSender(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *DoubtMessageCreate) SetContent(v string) *DoubtMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoubtMessageCreate) SetCreatedAt(v time.Time) *DoubtMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoubtMessageCreate) SetNillableCreatedAt(v *time.Time) *DoubtMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the DoubtMessageMutation object of the builder.
func (_c *DoubtMessageCreate) Mutation() *DoubtMessageMutation {
	return _c.mutation
}

// Save creates the DoubtMessage in the database.
func (_c *DoubtMessageCreate) Save(ctx context.Context) (*DoubtMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoubtMessageCreate) SaveX(ctx context.Context) *DoubtMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoubtMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoubtMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoubtMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doubtmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoubtMessageCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "DoubtMessage.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := doubtmessage.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "DoubtMessage.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "DoubtMessage.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := doubtmessage.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "DoubtMessage.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sender(); !ok {
		return &ValidationError{Name: "sender", err: errors.New(`ent: missing required field "DoubtMessage.sender"`)}
	}
	if v, ok := _c.mutation.Sender(); ok {
		if err := doubtmessage.SenderValidator(v); err != nil {
			return &ValidationError{Name: "sender", err: fmt.Errorf(`ent: validator failed for field "DoubtMessage.sender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "DoubtMessage.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := doubtmessage.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "DoubtMessage.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DoubtMessage.created_at"`)}
	}
	return nil
}

func (_c *DoubtMessageCreate) sqlSave(ctx context.Context) (*DoubtMessage, error) {
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

func (_c *DoubtMessageCreate) createSpec() (*DoubtMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &DoubtMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doubtmessage.Table, sqlgraph.NewFieldSpec(doubtmessage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(doubtmessage.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(doubtmessage.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Sender(); ok {
		_spec.SetField(doubtmessage.FieldSender, field.TypeString, value)
		_node.Sender = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(doubtmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doubtmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DoubtMessageCreateBulk is the builder for creating many DoubtMessage entities in bulk.
type DoubtMessageCreateBulk struct {
	config
	err      error
	builders []*DoubtMessageCreate
}

// Save creates the DoubtMessage entities in the database.
func (_c *DoubtMessageCreateBulk) Save(ctx context.Context) ([]*DoubtMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DoubtMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoubtMessageMutation)
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
func (_c *DoubtMessageCreateBulk) SaveX(ctx context.Context) []*DoubtMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoubtMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoubtMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

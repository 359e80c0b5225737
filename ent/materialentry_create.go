// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepwise/ent/materialentry"
)

// MaterialEntryCreate is the builder for creating a MaterialEntry entity.
type MaterialEntryCreate struct {
	config
	mutation *MaterialEntryMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *MaterialEntryCreate) SetTopic(v string) *MaterialEntryCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *MaterialEntryCreate) SetKind(v string) *MaterialEntryCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *MaterialEntryCreate) SetPayload(v string) *MaterialEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetFetchedAt sets the "fetched_at" field.
func (_c *MaterialEntryCreate) SetFetchedAt(v time.Time) *MaterialEntryCreate {
	_c.mutation.SetFetchedAt(v)
	return _c
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_c *MaterialEntryCreate) SetNillableFetchedAt(v *time.Time) *MaterialEntryCreate {
	if v != nil {
		_c.SetFetchedAt(*v)
	}
	return _c
}

// Mutation returns the MaterialEntryMutation object of the builder.
func (_c *MaterialEntryCreate) Mutation() *MaterialEntryMutation {
	return _c.mutation
}

// Save creates the MaterialEntry in the database.
func (_c *MaterialEntryCreate) Save(ctx context.Context) (*MaterialEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MaterialEntryCreate) SaveX(ctx context.Context) *MaterialEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaterialEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaterialEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MaterialEntryCreate) defaults() {
	if _, ok := _c.mutation.FetchedAt(); !ok {
		v := materialentry.DefaultFetchedAt()
		_c.mutation.SetFetchedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MaterialEntryCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "MaterialEntry.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := materialentry.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MaterialEntry.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "MaterialEntry.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := materialentry.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "MaterialEntry.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "MaterialEntry.payload"`)}
	}
	if _, ok := _c.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "MaterialEntry.fetched_at"`)}
	}
	return nil
}

func (_c *MaterialEntryCreate) sqlSave(ctx context.Context) (*MaterialEntry, error) {
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

func (_c *MaterialEntryCreate) createSpec() (*MaterialEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &MaterialEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(materialentry.Table, sqlgraph.NewFieldSpec(materialentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(materialentry.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(materialentry.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(materialentry.FieldPayload, field.TypeString, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.FetchedAt(); ok {
		_spec.SetField(materialentry.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	return _node, _spec
}

// MaterialEntryCreateBulk is the builder for creating many MaterialEntry entities in bulk.
type MaterialEntryCreateBulk struct {
	config
	err      error
	builders []*MaterialEntryCreate
}

// Save creates the MaterialEntry entities in the database.
func (_c *MaterialEntryCreateBulk) Save(ctx context.Context) ([]*MaterialEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MaterialEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MaterialEntryMutation)
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
func (_c *MaterialEntryCreateBulk) SaveX(ctx context.Context) []*MaterialEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MaterialEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MaterialEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepwise/ent/doubtmessage"
	"github.com/abhisek/prepwise/ent/predicate"
)

// DoubtMessageUpdate is the builder for updating DoubtMessage entities.
type DoubtMessageUpdate struct {
	config
	hooks    []Hook
	mutation *DoubtMessageMutation
}

// Where appends a list predicates to the DoubtMessageUpdate builder.
func (_u *DoubtMessageUpdate) Where(ps ...predicate.DoubtMessage) *DoubtMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the DoubtMessageMutation object of the builder.
func (_u *DoubtMessageUpdate) Mutation() *DoubtMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoubtMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoubtMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoubtMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoubtMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DoubtMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(doubtmessage.Table, doubtmessage.Columns, sqlgraph.NewFieldSpec(doubtmessage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doubtmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoubtMessageUpdateOne is the builder for updating a single DoubtMessage entity.
type DoubtMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoubtMessageMutation
}

// Mutation returns the DoubtMessageMutation object of the builder.
func (_u *DoubtMessageUpdateOne) Mutation() *DoubtMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoubtMessageUpdate builder.
func (_u *DoubtMessageUpdateOne) Where(ps ...predicate.DoubtMessage) *DoubtMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoubtMessageUpdateOne) Select(field string, fields ...string) *DoubtMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoubtMessage entity.
func (_u *DoubtMessageUpdateOne) Save(ctx context.Context) (*DoubtMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoubtMessageUpdateOne) SaveX(ctx context.Context) *DoubtMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoubtMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoubtMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DoubtMessageUpdateOne) sqlSave(ctx context.Context) (_node *DoubtMessage, err error) {
	_spec := sqlgraph.NewUpdateSpec(doubtmessage.Table, doubtmessage.Columns, sqlgraph.NewFieldSpec(doubtmessage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DoubtMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doubtmessage.FieldID)
		for _, f := range fields {
			if !doubtmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != doubtmessage.FieldID {
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
	_node = &DoubtMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doubtmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

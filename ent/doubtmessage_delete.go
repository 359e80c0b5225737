// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepwise/ent/doubtmessage"
	"github.com/abhisek/prepwise/ent/predicate"
)

// DoubtMessageDelete is the builder for deleting a DoubtMessage entity.
type DoubtMessageDelete struct {
	config
	hooks    []Hook
	mutation *DoubtMessageMutation
}

// Where appends a list predicates to the DoubtMessageDelete builder.
func (_d *DoubtMessageDelete) Where(ps ...predicate.DoubtMessage) *DoubtMessageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DoubtMessageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DoubtMessageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DoubtMessageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(doubtmessage.Table, sqlgraph.NewFieldSpec(doubtmessage.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DoubtMessageDeleteOne is the builder for deleting a single DoubtMessage entity.
type DoubtMessageDeleteOne struct {
	_d *DoubtMessageDelete
}

// Where appends a list predicates to the DoubtMessageDelete builder.
func (_d *DoubtMessageDeleteOne) Where(ps ...predicate.DoubtMessage) *DoubtMessageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DoubtMessageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{doubtmessage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DoubtMessageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

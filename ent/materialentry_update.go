// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepwise/ent/materialentry"
	"github.com/abhisek/prepwise/ent/predicate"
)

// MaterialEntryUpdate is the builder for updating MaterialEntry entities.
type MaterialEntryUpdate struct {
	config
	hooks    []Hook
	mutation *MaterialEntryMutation
}

// Where appends a list predicates to the MaterialEntryUpdate builder.
func (_u *MaterialEntryUpdate) Where(ps ...predicate.MaterialEntry) *MaterialEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *MaterialEntryUpdate) SetTopic(v string) *MaterialEntryUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MaterialEntryUpdate) SetNillableTopic(v *string) *MaterialEntryUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *MaterialEntryUpdate) SetKind(v string) *MaterialEntryUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *MaterialEntryUpdate) SetNillableKind(v *string) *MaterialEntryUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *MaterialEntryUpdate) SetPayload(v string) *MaterialEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *MaterialEntryUpdate) SetNillablePayload(v *string) *MaterialEntryUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *MaterialEntryUpdate) SetFetchedAt(v time.Time) *MaterialEntryUpdate {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// Mutation returns the MaterialEntryMutation object of the builder.
func (_u *MaterialEntryUpdate) Mutation() *MaterialEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MaterialEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MaterialEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaterialEntryUpdate) defaults() {
	if _, ok := _u.mutation.FetchedAt(); !ok {
		v := materialentry.UpdateDefaultFetchedAt()
		_u.mutation.SetFetchedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialEntryUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := materialentry.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MaterialEntry.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := materialentry.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "MaterialEntry.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *MaterialEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(materialentry.Table, materialentry.Columns, sqlgraph.NewFieldSpec(materialentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(materialentry.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(materialentry.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(materialentry.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(materialentry.FieldFetchedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{materialentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MaterialEntryUpdateOne is the builder for updating a single MaterialEntry entity.
type MaterialEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MaterialEntryMutation
}

// SetTopic sets the "topic" field.
func (_u *MaterialEntryUpdateOne) SetTopic(v string) *MaterialEntryUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MaterialEntryUpdateOne) SetNillableTopic(v *string) *MaterialEntryUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *MaterialEntryUpdateOne) SetKind(v string) *MaterialEntryUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *MaterialEntryUpdateOne) SetNillableKind(v *string) *MaterialEntryUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *MaterialEntryUpdateOne) SetPayload(v string) *MaterialEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *MaterialEntryUpdateOne) SetNillablePayload(v *string) *MaterialEntryUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *MaterialEntryUpdateOne) SetFetchedAt(v time.Time) *MaterialEntryUpdateOne {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// Mutation returns the MaterialEntryMutation object of the builder.
func (_u *MaterialEntryUpdateOne) Mutation() *MaterialEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the MaterialEntryUpdate builder.
func (_u *MaterialEntryUpdateOne) Where(ps ...predicate.MaterialEntry) *MaterialEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MaterialEntryUpdateOne) Select(field string, fields ...string) *MaterialEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MaterialEntry entity.
func (_u *MaterialEntryUpdateOne) Save(ctx context.Context) (*MaterialEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MaterialEntryUpdateOne) SaveX(ctx context.Context) *MaterialEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MaterialEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MaterialEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MaterialEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.FetchedAt(); !ok {
		v := materialentry.UpdateDefaultFetchedAt()
		_u.mutation.SetFetchedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MaterialEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := materialentry.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MaterialEntry.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := materialentry.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "MaterialEntry.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *MaterialEntryUpdateOne) sqlSave(ctx context.Context) (_node *MaterialEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(materialentry.Table, materialentry.Columns, sqlgraph.NewFieldSpec(materialentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MaterialEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, materialentry.FieldID)
		for _, f := range fields {
			if !materialentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != materialentry.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(materialentry.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(materialentry.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(materialentry.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(materialentry.FieldFetchedAt, field.TypeTime, value)
	}
	_node = &MaterialEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{materialentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

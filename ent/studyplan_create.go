// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepwise/ent/schema"
	"github.com/abhisek/prepwise/ent/studyplan"
)

// StudyPlanCreate is the builder for creating a StudyPlan entity.
type StudyPlanCreate struct {
	config
	mutation *StudyPlanMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *StudyPlanCreate) SetPlanID(v string) *StudyPlanCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetExamName sets the "exam_name" field.
func (_c *StudyPlanCreate) SetExamName(v string) *StudyPlanCreate {
	_c.mutation.SetExamName(v)
	return _c
}

// SetTotalDays sets the "total_days" field.
func (_c *StudyPlanCreate) SetTotalDays(v int) *StudyPlanCreate {
	_c.mutation.SetTotalDays(v)
	return _c
}

// SetPerQuestionSeconds sets the "per_question_seconds" field.
func (_c *StudyPlanCreate) SetPerQuestionSeconds(v int) *StudyPlanCreate {
	_c.mutation.SetPerQuestionSeconds(v)
	return _c
}

// SetQuestionsPerQuiz sets the "questions_per_quiz" field.
func (_c *StudyPlanCreate) SetQuestionsPerQuiz(v int) *StudyPlanCreate {
	_c.mutation.SetQuestionsPerQuiz(v)
	return _c
}

// SetDays sets the "days" field.
func (_c *StudyPlanCreate) SetDays(v []schema.DaySummary) *StudyPlanCreate {
	_c.mutation.SetDays(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudyPlanCreate) SetCreatedAt(v time.Time) *StudyPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudyPlanCreate) SetNillableCreatedAt(v *time.Time) *StudyPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudyPlanCreate) SetUpdatedAt(v time.Time) *StudyPlanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudyPlanCreate) SetNillableUpdatedAt(v *time.Time) *StudyPlanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the StudyPlanMutation object of the builder.
func (_c *StudyPlanCreate) Mutation() *StudyPlanMutation {
	return _c.mutation
}

// Save creates the StudyPlan in the database.
func (_c *StudyPlanCreate) Save(ctx context.Context) (*StudyPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyPlanCreate) SaveX(ctx context.Context) *StudyPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyPlanCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studyplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studyplan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyPlanCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "StudyPlan.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := studyplan.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamName(); !ok {
		return &ValidationError{Name: "exam_name", err: errors.New(`ent: missing required field "StudyPlan.exam_name"`)}
	}
	if v, ok := _c.mutation.ExamName(); ok {
		if err := studyplan.ExamNameValidator(v); err != nil {
			return &ValidationError{Name: "exam_name", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.exam_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalDays(); !ok {
		return &ValidationError{Name: "total_days", err: errors.New(`ent: missing required field "StudyPlan.total_days"`)}
	}
	if v, ok := _c.mutation.TotalDays(); ok {
		if err := studyplan.TotalDaysValidator(v); err != nil {
			return &ValidationError{Name: "total_days", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.total_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PerQuestionSeconds(); !ok {
		return &ValidationError{Name: "per_question_seconds", err: errors.New(`ent: missing required field "StudyPlan.per_question_seconds"`)}
	}
	if v, ok := _c.mutation.PerQuestionSeconds(); ok {
		if err := studyplan.PerQuestionSecondsValidator(v); err != nil {
			return &ValidationError{Name: "per_question_seconds", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.per_question_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsPerQuiz(); !ok {
		return &ValidationError{Name: "questions_per_quiz", err: errors.New(`ent: missing required field "StudyPlan.questions_per_quiz"`)}
	}
	if v, ok := _c.mutation.QuestionsPerQuiz(); ok {
		if err := studyplan.QuestionsPerQuizValidator(v); err != nil {
			return &ValidationError{Name: "questions_per_quiz", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.questions_per_quiz": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Days(); !ok {
		return &ValidationError{Name: "days", err: errors.New(`ent: missing required field "StudyPlan.days"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudyPlan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StudyPlan.updated_at"`)}
	}
	return nil
}

func (_c *StudyPlanCreate) sqlSave(ctx context.Context) (*StudyPlan, error) {
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

func (_c *StudyPlanCreate) createSpec() (*StudyPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studyplan.Table, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(studyplan.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.ExamName(); ok {
		_spec.SetField(studyplan.FieldExamName, field.TypeString, value)
		_node.ExamName = value
	}
	if value, ok := _c.mutation.TotalDays(); ok {
		_spec.SetField(studyplan.FieldTotalDays, field.TypeInt, value)
		_node.TotalDays = value
	}
	if value, ok := _c.mutation.PerQuestionSeconds(); ok {
		_spec.SetField(studyplan.FieldPerQuestionSeconds, field.TypeInt, value)
		_node.PerQuestionSeconds = value
	}
	if value, ok := _c.mutation.QuestionsPerQuiz(); ok {
		_spec.SetField(studyplan.FieldQuestionsPerQuiz, field.TypeInt, value)
		_node.QuestionsPerQuiz = value
	}
	if value, ok := _c.mutation.Days(); ok {
		_spec.SetField(studyplan.FieldDays, field.TypeJSON, value)
		_node.Days = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studyplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studyplan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StudyPlanCreateBulk is the builder for creating many StudyPlan entities in bulk.
type StudyPlanCreateBulk struct {
	config
	err      error
	builders []*StudyPlanCreate
}

// Save creates the StudyPlan entities in the database.
func (_c *StudyPlanCreateBulk) Save(ctx context.Context) ([]*StudyPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyPlanMutation)
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
func (_c *StudyPlanCreateBulk) SaveX(ctx context.Context) []*StudyPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

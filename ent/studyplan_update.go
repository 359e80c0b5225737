// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepwise/ent/predicate"
	"github.com/abhisek/prepwise/ent/schema"
	"github.com/abhisek/prepwise/ent/studyplan"
)

// StudyPlanUpdate is the builder for updating StudyPlan entities.
type StudyPlanUpdate struct {
	config
	hooks    []Hook
	mutation *StudyPlanMutation
}

// Where appends a list predicates to the StudyPlanUpdate builder.
func (_u *StudyPlanUpdate) Where(ps ...predicate.StudyPlan) *StudyPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExamName sets the "exam_name" field.
func (_u *StudyPlanUpdate) SetExamName(v string) *StudyPlanUpdate {
	_u.mutation.SetExamName(v)
	return _u
}

// SetNillableExamName sets the "exam_name" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableExamName(v *string) *StudyPlanUpdate {
	if v != nil {
		_u.SetExamName(*v)
	}
	return _u
}

// SetTotalDays sets the "total_days" field.
func (_u *StudyPlanUpdate) SetTotalDays(v int) *StudyPlanUpdate {
	_u.mutation.ResetTotalDays()
	_u.mutation.SetTotalDays(v)
	return _u
}

// SetNillableTotalDays sets the "total_days" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableTotalDays(v *int) *StudyPlanUpdate {
	if v != nil {
		_u.SetTotalDays(*v)
	}
	return _u
}

// AddTotalDays adds value to the "total_days" field.
func (_u *StudyPlanUpdate) AddTotalDays(v int) *StudyPlanUpdate {
	_u.mutation.AddTotalDays(v)
	return _u
}

// SetPerQuestionSeconds sets the "per_question_seconds" field.
func (_u *StudyPlanUpdate) SetPerQuestionSeconds(v int) *StudyPlanUpdate {
	_u.mutation.ResetPerQuestionSeconds()
	_u.mutation.SetPerQuestionSeconds(v)
	return _u
}

// SetNillablePerQuestionSeconds sets the "per_question_seconds" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillablePerQuestionSeconds(v *int) *StudyPlanUpdate {
	if v != nil {
		_u.SetPerQuestionSeconds(*v)
	}
	return _u
}

// AddPerQuestionSeconds adds value to the "per_question_seconds" field.
func (_u *StudyPlanUpdate) AddPerQuestionSeconds(v int) *StudyPlanUpdate {
	_u.mutation.AddPerQuestionSeconds(v)
	return _u
}

// SetQuestionsPerQuiz sets the "questions_per_quiz" field.
func (_u *StudyPlanUpdate) SetQuestionsPerQuiz(v int) *StudyPlanUpdate {
	_u.mutation.ResetQuestionsPerQuiz()
	_u.mutation.SetQuestionsPerQuiz(v)
	return _u
}

// SetNillableQuestionsPerQuiz sets the "questions_per_quiz" field if the given value is not nil.
func (_u *StudyPlanUpdate) SetNillableQuestionsPerQuiz(v *int) *StudyPlanUpdate {
	if v != nil {
		_u.SetQuestionsPerQuiz(*v)
	}
	return _u
}

// AddQuestionsPerQuiz adds value to the "questions_per_quiz" field.
func (_u *StudyPlanUpdate) AddQuestionsPerQuiz(v int) *StudyPlanUpdate {
	_u.mutation.AddQuestionsPerQuiz(v)
	return _u
}

// SetDays sets the "days" field.
func (_u *StudyPlanUpdate) SetDays(v []schema.DaySummary) *StudyPlanUpdate {
	_u.mutation.SetDays(v)
	return _u
}

// AppendDays appends value to the "days" field.
func (_u *StudyPlanUpdate) AppendDays(v []schema.DaySummary) *StudyPlanUpdate {
	_u.mutation.AppendDays(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudyPlanUpdate) SetUpdatedAt(v time.Time) *StudyPlanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudyPlanMutation object of the builder.
func (_u *StudyPlanUpdate) Mutation() *StudyPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyPlanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudyPlanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studyplan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyPlanUpdate) check() error {
	if v, ok := _u.mutation.ExamName(); ok {
		if err := studyplan.ExamNameValidator(v); err != nil {
			return &ValidationError{Name: "exam_name", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.exam_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDays(); ok {
		if err := studyplan.TotalDaysValidator(v); err != nil {
			return &ValidationError{Name: "total_days", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.total_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PerQuestionSeconds(); ok {
		if err := studyplan.PerQuestionSecondsValidator(v); err != nil {
			return &ValidationError{Name: "per_question_seconds", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.per_question_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionsPerQuiz(); ok {
		if err := studyplan.QuestionsPerQuizValidator(v); err != nil {
			return &ValidationError{Name: "questions_per_quiz", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.questions_per_quiz": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyplan.Table, studyplan.Columns, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExamName(); ok {
		_spec.SetField(studyplan.FieldExamName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalDays(); ok {
		_spec.SetField(studyplan.FieldTotalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDays(); ok {
		_spec.AddField(studyplan.FieldTotalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PerQuestionSeconds(); ok {
		_spec.SetField(studyplan.FieldPerQuestionSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPerQuestionSeconds(); ok {
		_spec.AddField(studyplan.FieldPerQuestionSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsPerQuiz(); ok {
		_spec.SetField(studyplan.FieldQuestionsPerQuiz, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsPerQuiz(); ok {
		_spec.AddField(studyplan.FieldQuestionsPerQuiz, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Days(); ok {
		_spec.SetField(studyplan.FieldDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studyplan.FieldDays, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studyplan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyPlanUpdateOne is the builder for updating a single StudyPlan entity.
type StudyPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyPlanMutation
}

// SetExamName sets the "exam_name" field.
func (_u *StudyPlanUpdateOne) SetExamName(v string) *StudyPlanUpdateOne {
	_u.mutation.SetExamName(v)
	return _u
}

// SetNillableExamName sets the "exam_name" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableExamName(v *string) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetExamName(*v)
	}
	return _u
}

// SetTotalDays sets the "total_days" field.
func (_u *StudyPlanUpdateOne) SetTotalDays(v int) *StudyPlanUpdateOne {
	_u.mutation.ResetTotalDays()
	_u.mutation.SetTotalDays(v)
	return _u
}

// SetNillableTotalDays sets the "total_days" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableTotalDays(v *int) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetTotalDays(*v)
	}
	return _u
}

// AddTotalDays adds value to the "total_days" field.
func (_u *StudyPlanUpdateOne) AddTotalDays(v int) *StudyPlanUpdateOne {
	_u.mutation.AddTotalDays(v)
	return _u
}

// SetPerQuestionSeconds sets the "per_question_seconds" field.
func (_u *StudyPlanUpdateOne) SetPerQuestionSeconds(v int) *StudyPlanUpdateOne {
	_u.mutation.ResetPerQuestionSeconds()
	_u.mutation.SetPerQuestionSeconds(v)
	return _u
}

// SetNillablePerQuestionSeconds sets the "per_question_seconds" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillablePerQuestionSeconds(v *int) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetPerQuestionSeconds(*v)
	}
	return _u
}

// AddPerQuestionSeconds adds value to the "per_question_seconds" field.
func (_u *StudyPlanUpdateOne) AddPerQuestionSeconds(v int) *StudyPlanUpdateOne {
	_u.mutation.AddPerQuestionSeconds(v)
	return _u
}

// SetQuestionsPerQuiz sets the "questions_per_quiz" field.
func (_u *StudyPlanUpdateOne) SetQuestionsPerQuiz(v int) *StudyPlanUpdateOne {
	_u.mutation.ResetQuestionsPerQuiz()
	_u.mutation.SetQuestionsPerQuiz(v)
	return _u
}

// SetNillableQuestionsPerQuiz sets the "questions_per_quiz" field if the given value is not nil.
func (_u *StudyPlanUpdateOne) SetNillableQuestionsPerQuiz(v *int) *StudyPlanUpdateOne {
	if v != nil {
		_u.SetQuestionsPerQuiz(*v)
	}
	return _u
}

// AddQuestionsPerQuiz adds value to the "questions_per_quiz" field.
func (_u *StudyPlanUpdateOne) AddQuestionsPerQuiz(v int) *StudyPlanUpdateOne {
	_u.mutation.AddQuestionsPerQuiz(v)
	return _u
}

// SetDays sets the "days" field.
func (_u *StudyPlanUpdateOne) SetDays(v []schema.DaySummary) *StudyPlanUpdateOne {
	_u.mutation.SetDays(v)
	return _u
}

// AppendDays appends value to the "days" field.
func (_u *StudyPlanUpdateOne) AppendDays(v []schema.DaySummary) *StudyPlanUpdateOne {
	_u.mutation.AppendDays(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudyPlanUpdateOne) SetUpdatedAt(v time.Time) *StudyPlanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudyPlanMutation object of the builder.
func (_u *StudyPlanUpdateOne) Mutation() *StudyPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudyPlanUpdate builder.
func (_u *StudyPlanUpdateOne) Where(ps ...predicate.StudyPlan) *StudyPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyPlanUpdateOne) Select(field string, fields ...string) *StudyPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyPlan entity.
func (_u *StudyPlanUpdateOne) Save(ctx context.Context) (*StudyPlan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyPlanUpdateOne) SaveX(ctx context.Context) *StudyPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudyPlanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studyplan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyPlanUpdateOne) check() error {
	if v, ok := _u.mutation.ExamName(); ok {
		if err := studyplan.ExamNameValidator(v); err != nil {
			return &ValidationError{Name: "exam_name", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.exam_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDays(); ok {
		if err := studyplan.TotalDaysValidator(v); err != nil {
			return &ValidationError{Name: "total_days", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.total_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PerQuestionSeconds(); ok {
		if err := studyplan.PerQuestionSecondsValidator(v); err != nil {
			return &ValidationError{Name: "per_question_seconds", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.per_question_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionsPerQuiz(); ok {
		if err := studyplan.QuestionsPerQuizValidator(v); err != nil {
			return &ValidationError{Name: "questions_per_quiz", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.questions_per_quiz": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyPlanUpdateOne) sqlSave(ctx context.Context) (_node *StudyPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyplan.Table, studyplan.Columns, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyplan.FieldID)
		for _, f := range fields {
			if !studyplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studyplan.FieldID {
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
	if value, ok := _u.mutation.ExamName(); ok {
		_spec.SetField(studyplan.FieldExamName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalDays(); ok {
		_spec.SetField(studyplan.FieldTotalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDays(); ok {
		_spec.AddField(studyplan.FieldTotalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PerQuestionSeconds(); ok {
		_spec.SetField(studyplan.FieldPerQuestionSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPerQuestionSeconds(); ok {
		_spec.AddField(studyplan.FieldPerQuestionSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsPerQuiz(); ok {
		_spec.SetField(studyplan.FieldQuestionsPerQuiz, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsPerQuiz(); ok {
		_spec.AddField(studyplan.FieldQuestionsPerQuiz, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Days(); ok {
		_spec.SetField(studyplan.FieldDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studyplan.FieldDays, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studyplan.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StudyPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

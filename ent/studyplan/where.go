// Code generated by ent, DO NOT EDIT.

package studyplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldPlanID, v))
}

// ExamName applies equality check predicate on the "exam_name" field. It's identical to ExamNameEQ.
func ExamName(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldExamName, v))
}

// TotalDays applies equality check predicate on the "total_days" field. It's identical to TotalDaysEQ.
func TotalDays(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldTotalDays, v))
}

// PerQuestionSeconds applies equality check predicate on the "per_question_seconds" field. It's identical to PerQuestionSecondsEQ.
func PerQuestionSeconds(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldPerQuestionSeconds, v))
}

// QuestionsPerQuiz applies equality check predicate on the "questions_per_quiz" field. It's identical to QuestionsPerQuizEQ.
func QuestionsPerQuiz(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldQuestionsPerQuiz, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldUpdatedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContainsFold(FieldPlanID, v))
}

// ExamNameEQ applies the EQ predicate on the "exam_name" field.
func ExamNameEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldExamName, v))
}

// ExamNameNEQ applies the NEQ predicate on the "exam_name" field.
func ExamNameNEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldExamName, v))
}

// ExamNameIn applies the In predicate on the "exam_name" field.
func ExamNameIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldExamName, vs...))
}

// ExamNameNotIn applies the NotIn predicate on the "exam_name" field.
func ExamNameNotIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldExamName, vs...))
}

// ExamNameGT applies the GT predicate on the "exam_name" field.
func ExamNameGT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldExamName, v))
}

// ExamNameGTE applies the GTE predicate on the "exam_name" field.
func ExamNameGTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldExamName, v))
}

// ExamNameLT applies the LT predicate on the "exam_name" field.
func ExamNameLT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldExamName, v))
}

// ExamNameLTE applies the LTE predicate on the "exam_name" field.
func ExamNameLTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldExamName, v))
}

// ExamNameContains applies the Contains predicate on the "exam_name" field.
func ExamNameContains(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContains(FieldExamName, v))
}

// ExamNameHasPrefix applies the HasPrefix predicate on the "exam_name" field.
func ExamNameHasPrefix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasPrefix(FieldExamName, v))
}

// ExamNameHasSuffix applies the HasSuffix predicate on the "exam_name" field.
func ExamNameHasSuffix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasSuffix(FieldExamName, v))
}

// ExamNameEqualFold applies the EqualFold predicate on the "exam_name" field.
func ExamNameEqualFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEqualFold(FieldExamName, v))
}

// ExamNameContainsFold applies the ContainsFold predicate on the "exam_name" field.
func ExamNameContainsFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContainsFold(FieldExamName, v))
}

// TotalDaysEQ applies the EQ predicate on the "total_days" field.
func TotalDaysEQ(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldTotalDays, v))
}

// TotalDaysNEQ applies the NEQ predicate on the "total_days" field.
func TotalDaysNEQ(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldTotalDays, v))
}

// TotalDaysIn applies the In predicate on the "total_days" field.
func TotalDaysIn(vs ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldTotalDays, vs...))
}

// TotalDaysNotIn applies the NotIn predicate on the "total_days" field.
func TotalDaysNotIn(vs ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldTotalDays, vs...))
}

// TotalDaysGT applies the GT predicate on the "total_days" field.
func TotalDaysGT(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldTotalDays, v))
}

// TotalDaysGTE applies the GTE predicate on the "total_days" field.
func TotalDaysGTE(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldTotalDays, v))
}

// TotalDaysLT applies the LT predicate on the "total_days" field.
func TotalDaysLT(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldTotalDays, v))
}

// TotalDaysLTE applies the LTE predicate on the "total_days" field.
func TotalDaysLTE(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldTotalDays, v))
}

// PerQuestionSecondsEQ applies the EQ predicate on the "per_question_seconds" field.
func PerQuestionSecondsEQ(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldPerQuestionSeconds, v))
}

// PerQuestionSecondsNEQ applies the NEQ predicate on the "per_question_seconds" field.
func PerQuestionSecondsNEQ(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldPerQuestionSeconds, v))
}

// PerQuestionSecondsIn applies the In predicate on the "per_question_seconds" field.
func PerQuestionSecondsIn(vs ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldPerQuestionSeconds, vs...))
}

// PerQuestionSecondsNotIn applies the NotIn predicate on the "per_question_seconds" field.
func PerQuestionSecondsNotIn(vs ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldPerQuestionSeconds, vs...))
}

// PerQuestionSecondsGT applies the GT predicate on the "per_question_seconds" field.
func PerQuestionSecondsGT(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldPerQuestionSeconds, v))
}

// PerQuestionSecondsGTE applies the GTE predicate on the "per_question_seconds" field.
func PerQuestionSecondsGTE(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldPerQuestionSeconds, v))
}

// PerQuestionSecondsLT applies the LT predicate on the "per_question_seconds" field.
func PerQuestionSecondsLT(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldPerQuestionSeconds, v))
}

// PerQuestionSecondsLTE applies the LTE predicate on the "per_question_seconds" field.
func PerQuestionSecondsLTE(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldPerQuestionSeconds, v))
}

// QuestionsPerQuizEQ applies the EQ predicate on the "questions_per_quiz" field.
func QuestionsPerQuizEQ(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldQuestionsPerQuiz, v))
}

// QuestionsPerQuizNEQ applies the NEQ predicate on the "questions_per_quiz" field.
func QuestionsPerQuizNEQ(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldQuestionsPerQuiz, v))
}

// QuestionsPerQuizIn applies the In predicate on the "questions_per_quiz" field.
func QuestionsPerQuizIn(vs ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldQuestionsPerQuiz, vs...))
}

// QuestionsPerQuizNotIn applies the NotIn predicate on the "questions_per_quiz" field.
func QuestionsPerQuizNotIn(vs ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldQuestionsPerQuiz, vs...))
}

// QuestionsPerQuizGT applies the GT predicate on the "questions_per_quiz" field.
func QuestionsPerQuizGT(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldQuestionsPerQuiz, v))
}

// QuestionsPerQuizGTE applies the GTE predicate on the "questions_per_quiz" field.
func QuestionsPerQuizGTE(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldQuestionsPerQuiz, v))
}

// QuestionsPerQuizLT applies the LT predicate on the "questions_per_quiz" field.
func QuestionsPerQuizLT(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldQuestionsPerQuiz, v))
}

// QuestionsPerQuizLTE applies the LTE predicate on the "questions_per_quiz" field.
func QuestionsPerQuizLTE(v int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldQuestionsPerQuiz, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudyPlan) predicate.StudyPlan {
	return predicate.StudyPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudyPlan) predicate.StudyPlan {
	return predicate.StudyPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudyPlan) predicate.StudyPlan {
	return predicate.StudyPlan(sql.NotPredicates(p))
}

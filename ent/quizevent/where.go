// Code generated by ent, DO NOT EDIT.

package quizevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuizID applies equality check predicate on the "quiz_id" field. It's identical to QuizIDEQ.
func QuizID(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldQuizID, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldPlanID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldDay, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldScore, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldCorrect, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTotal, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldPassed, v))
}

// AutoSubmitted applies equality check predicate on the "auto_submitted" field. It's identical to AutoSubmittedEQ.
func AutoSubmitted(v bool) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldAutoSubmitted, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuizIDEQ applies the EQ predicate on the "quiz_id" field.
func QuizIDEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldQuizID, v))
}

// QuizIDNEQ applies the NEQ predicate on the "quiz_id" field.
func QuizIDNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldQuizID, v))
}

// QuizIDIn applies the In predicate on the "quiz_id" field.
func QuizIDIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldQuizID, vs...))
}

// QuizIDNotIn applies the NotIn predicate on the "quiz_id" field.
func QuizIDNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldQuizID, vs...))
}

// QuizIDGT applies the GT predicate on the "quiz_id" field.
func QuizIDGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldQuizID, v))
}

// QuizIDGTE applies the GTE predicate on the "quiz_id" field.
func QuizIDGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldQuizID, v))
}

// QuizIDLT applies the LT predicate on the "quiz_id" field.
func QuizIDLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldQuizID, v))
}

// QuizIDLTE applies the LTE predicate on the "quiz_id" field.
func QuizIDLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldQuizID, v))
}

// QuizIDContains applies the Contains predicate on the "quiz_id" field.
func QuizIDContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldQuizID, v))
}

// QuizIDHasPrefix applies the HasPrefix predicate on the "quiz_id" field.
func QuizIDHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldQuizID, v))
}

// QuizIDHasSuffix applies the HasSuffix predicate on the "quiz_id" field.
func QuizIDHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldQuizID, v))
}

// QuizIDEqualFold applies the EqualFold predicate on the "quiz_id" field.
func QuizIDEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldQuizID, v))
}

// QuizIDContainsFold applies the ContainsFold predicate on the "quiz_id" field.
func QuizIDContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldQuizID, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldContainsFold(FieldPlanID, v))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldDay, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldScore, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldCorrect, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldLTE(FieldTotal, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldPassed, v))
}

// AutoSubmittedEQ applies the EQ predicate on the "auto_submitted" field.
func AutoSubmittedEQ(v bool) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldEQ(FieldAutoSubmitted, v))
}

// AutoSubmittedNEQ applies the NEQ predicate on the "auto_submitted" field.
func AutoSubmittedNEQ(v bool) predicate.QuizEvent {
	return predicate.QuizEvent(sql.FieldNEQ(FieldAutoSubmitted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizEvent) predicate.QuizEvent {
	return predicate.QuizEvent(sql.NotPredicates(p))
}

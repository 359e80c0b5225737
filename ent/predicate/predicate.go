// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DoubtMessage is the predicate function for doubtmessage builders.
type DoubtMessage func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MaterialEntry is the predicate function for materialentry builders.
type MaterialEntry func(*sql.Selector)

// QuizEvent is the predicate function for quizevent builders.
type QuizEvent func(*sql.Selector)

// StudyPlan is the predicate function for studyplan builders.
type StudyPlan func(*sql.Selector)

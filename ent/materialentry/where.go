// Code generated by ent, DO NOT EDIT.

package materialentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldLTE(FieldID, id))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEQ(FieldTopic, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEQ(FieldKind, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEQ(FieldPayload, v))
}

// FetchedAt applies equality check predicate on the "fetched_at" field. It's identical to FetchedAtEQ.
func FetchedAt(v time.Time) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEQ(FieldFetchedAt, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldContainsFold(FieldTopic, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldContainsFold(FieldKind, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldLTE(FieldPayload, v))
}

// PayloadContains applies the Contains predicate on the "payload" field.
func PayloadContains(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldContains(FieldPayload, v))
}

// PayloadHasPrefix applies the HasPrefix predicate on the "payload" field.
func PayloadHasPrefix(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldHasPrefix(FieldPayload, v))
}

// PayloadHasSuffix applies the HasSuffix predicate on the "payload" field.
func PayloadHasSuffix(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldHasSuffix(FieldPayload, v))
}

// PayloadEqualFold applies the EqualFold predicate on the "payload" field.
func PayloadEqualFold(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEqualFold(FieldPayload, v))
}

// PayloadContainsFold applies the ContainsFold predicate on the "payload" field.
func PayloadContainsFold(v string) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldContainsFold(FieldPayload, v))
}

// FetchedAtEQ applies the EQ predicate on the "fetched_at" field.
func FetchedAtEQ(v time.Time) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldEQ(FieldFetchedAt, v))
}

// FetchedAtNEQ applies the NEQ predicate on the "fetched_at" field.
func FetchedAtNEQ(v time.Time) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldNEQ(FieldFetchedAt, v))
}

// FetchedAtIn applies the In predicate on the "fetched_at" field.
func FetchedAtIn(vs ...time.Time) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldIn(FieldFetchedAt, vs...))
}

// FetchedAtNotIn applies the NotIn predicate on the "fetched_at" field.
func FetchedAtNotIn(vs ...time.Time) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldNotIn(FieldFetchedAt, vs...))
}

// FetchedAtGT applies the GT predicate on the "fetched_at" field.
func FetchedAtGT(v time.Time) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldGT(FieldFetchedAt, v))
}

// FetchedAtGTE applies the GTE predicate on the "fetched_at" field.
func FetchedAtGTE(v time.Time) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldGTE(FieldFetchedAt, v))
}

// FetchedAtLT applies the LT predicate on the "fetched_at" field.
func FetchedAtLT(v time.Time) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldLT(FieldFetchedAt, v))
}

// FetchedAtLTE applies the LTE predicate on the "fetched_at" field.
func FetchedAtLTE(v time.Time) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.FieldLTE(FieldFetchedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MaterialEntry) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MaterialEntry) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MaterialEntry) predicate.MaterialEntry {
	return predicate.MaterialEntry(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package principal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Principal {
	return predicate.Principal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Principal {
	return predicate.Principal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Principal {
	return predicate.Principal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Principal {
	return predicate.Principal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Principal {
	return predicate.Principal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Principal {
	return predicate.Principal(sql.FieldContainsFold(FieldID, id))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldDisplayName, v))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldReference, v))
}

// DiscoveredAt applies equality check predicate on the "discovered_at" field. It's identical to DiscoveredAtEQ.
func DiscoveredAt(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldDiscoveredAt, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContainsFold(FieldDisplayName, v))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.Principal {
	return predicate.Principal(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.Principal {
	return predicate.Principal(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.Principal {
	return predicate.Principal(sql.FieldContainsFold(FieldReference, v))
}

// DiscoveredAtEQ applies the EQ predicate on the "discovered_at" field.
func DiscoveredAtEQ(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldEQ(FieldDiscoveredAt, v))
}

// DiscoveredAtNEQ applies the NEQ predicate on the "discovered_at" field.
func DiscoveredAtNEQ(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldNEQ(FieldDiscoveredAt, v))
}

// DiscoveredAtIn applies the In predicate on the "discovered_at" field.
func DiscoveredAtIn(vs ...time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldIn(FieldDiscoveredAt, vs...))
}

// DiscoveredAtNotIn applies the NotIn predicate on the "discovered_at" field.
func DiscoveredAtNotIn(vs ...time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldNotIn(FieldDiscoveredAt, vs...))
}

// DiscoveredAtGT applies the GT predicate on the "discovered_at" field.
func DiscoveredAtGT(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldGT(FieldDiscoveredAt, v))
}

// DiscoveredAtGTE applies the GTE predicate on the "discovered_at" field.
func DiscoveredAtGTE(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldGTE(FieldDiscoveredAt, v))
}

// DiscoveredAtLT applies the LT predicate on the "discovered_at" field.
func DiscoveredAtLT(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldLT(FieldDiscoveredAt, v))
}

// DiscoveredAtLTE applies the LTE predicate on the "discovered_at" field.
func DiscoveredAtLTE(v time.Time) predicate.Principal {
	return predicate.Principal(sql.FieldLTE(FieldDiscoveredAt, v))
}

// HasGrants applies the HasEdge predicate on the "grants" edge.
func HasGrants() predicate.Principal {
	return predicate.Principal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GrantsTable, GrantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGrantsWith applies the HasEdge predicate on the "grants" edge with a given conditions (other predicates).
func HasGrantsWith(preds ...predicate.Grant) predicate.Principal {
	return predicate.Principal(func(s *sql.Selector) {
		step := newGrantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReviews applies the HasEdge predicate on the "reviews" edge.
func HasReviews() predicate.Principal {
	return predicate.Principal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReviewsTable, ReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReviewsWith applies the HasEdge predicate on the "reviews" edge with a given conditions (other predicates).
func HasReviewsWith(preds ...predicate.Review) predicate.Principal {
	return predicate.Principal(func(s *sql.Selector) {
		step := newReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Principal) predicate.Principal {
	return predicate.Principal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Principal) predicate.Principal {
	return predicate.Principal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Principal) predicate.Principal {
	return predicate.Principal(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package grant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Grant {
	return predicate.Grant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Grant {
	return predicate.Grant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Grant {
	return predicate.Grant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Grant {
	return predicate.Grant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Grant {
	return predicate.Grant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Grant {
	return predicate.Grant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Grant {
	return predicate.Grant(sql.FieldLTE(FieldID, id))
}

// PrincipalID applies equality check predicate on the "principal_id" field. It's identical to PrincipalIDEQ.
func PrincipalID(v string) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldPrincipalID, v))
}

// EntitlementID applies equality check predicate on the "entitlement_id" field. It's identical to EntitlementIDEQ.
func EntitlementID(v string) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldEntitlementID, v))
}

// DiscoveredAt applies equality check predicate on the "discovered_at" field. It's identical to DiscoveredAtEQ.
func DiscoveredAt(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldDiscoveredAt, v))
}

// PrincipalIDEQ applies the EQ predicate on the "principal_id" field.
func PrincipalIDEQ(v string) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldPrincipalID, v))
}

// PrincipalIDNEQ applies the NEQ predicate on the "principal_id" field.
func PrincipalIDNEQ(v string) predicate.Grant {
	return predicate.Grant(sql.FieldNEQ(FieldPrincipalID, v))
}

// PrincipalIDIn applies the In predicate on the "principal_id" field.
func PrincipalIDIn(vs ...string) predicate.Grant {
	return predicate.Grant(sql.FieldIn(FieldPrincipalID, vs...))
}

// PrincipalIDNotIn applies the NotIn predicate on the "principal_id" field.
func PrincipalIDNotIn(vs ...string) predicate.Grant {
	return predicate.Grant(sql.FieldNotIn(FieldPrincipalID, vs...))
}

// PrincipalIDGT applies the GT predicate on the "principal_id" field.
func PrincipalIDGT(v string) predicate.Grant {
	return predicate.Grant(sql.FieldGT(FieldPrincipalID, v))
}

// PrincipalIDGTE applies the GTE predicate on the "principal_id" field.
func PrincipalIDGTE(v string) predicate.Grant {
	return predicate.Grant(sql.FieldGTE(FieldPrincipalID, v))
}

// PrincipalIDLT applies the LT predicate on the "principal_id" field.
func PrincipalIDLT(v string) predicate.Grant {
	return predicate.Grant(sql.FieldLT(FieldPrincipalID, v))
}

// PrincipalIDLTE applies the LTE predicate on the "principal_id" field.
func PrincipalIDLTE(v string) predicate.Grant {
	return predicate.Grant(sql.FieldLTE(FieldPrincipalID, v))
}

// PrincipalIDContains applies the Contains predicate on the "principal_id" field.
func PrincipalIDContains(v string) predicate.Grant {
	return predicate.Grant(sql.FieldContains(FieldPrincipalID, v))
}

// PrincipalIDHasPrefix applies the HasPrefix predicate on the "principal_id" field.
func PrincipalIDHasPrefix(v string) predicate.Grant {
	return predicate.Grant(sql.FieldHasPrefix(FieldPrincipalID, v))
}

// PrincipalIDHasSuffix applies the HasSuffix predicate on the "principal_id" field.
func PrincipalIDHasSuffix(v string) predicate.Grant {
	return predicate.Grant(sql.FieldHasSuffix(FieldPrincipalID, v))
}

// PrincipalIDEqualFold applies the EqualFold predicate on the "principal_id" field.
func PrincipalIDEqualFold(v string) predicate.Grant {
	return predicate.Grant(sql.FieldEqualFold(FieldPrincipalID, v))
}

// PrincipalIDContainsFold applies the ContainsFold predicate on the "principal_id" field.
func PrincipalIDContainsFold(v string) predicate.Grant {
	return predicate.Grant(sql.FieldContainsFold(FieldPrincipalID, v))
}

// EntitlementIDEQ applies the EQ predicate on the "entitlement_id" field.
func EntitlementIDEQ(v string) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldEntitlementID, v))
}

// EntitlementIDNEQ applies the NEQ predicate on the "entitlement_id" field.
func EntitlementIDNEQ(v string) predicate.Grant {
	return predicate.Grant(sql.FieldNEQ(FieldEntitlementID, v))
}

// EntitlementIDIn applies the In predicate on the "entitlement_id" field.
func EntitlementIDIn(vs ...string) predicate.Grant {
	return predicate.Grant(sql.FieldIn(FieldEntitlementID, vs...))
}

// EntitlementIDNotIn applies the NotIn predicate on the "entitlement_id" field.
func EntitlementIDNotIn(vs ...string) predicate.Grant {
	return predicate.Grant(sql.FieldNotIn(FieldEntitlementID, vs...))
}

// EntitlementIDGT applies the GT predicate on the "entitlement_id" field.
func EntitlementIDGT(v string) predicate.Grant {
	return predicate.Grant(sql.FieldGT(FieldEntitlementID, v))
}

// EntitlementIDGTE applies the GTE predicate on the "entitlement_id" field.
func EntitlementIDGTE(v string) predicate.Grant {
	return predicate.Grant(sql.FieldGTE(FieldEntitlementID, v))
}

// EntitlementIDLT applies the LT predicate on the "entitlement_id" field.
func EntitlementIDLT(v string) predicate.Grant {
	return predicate.Grant(sql.FieldLT(FieldEntitlementID, v))
}

// EntitlementIDLTE applies the LTE predicate on the "entitlement_id" field.
func EntitlementIDLTE(v string) predicate.Grant {
	return predicate.Grant(sql.FieldLTE(FieldEntitlementID, v))
}

// EntitlementIDContains applies the Contains predicate on the "entitlement_id" field.
func EntitlementIDContains(v string) predicate.Grant {
	return predicate.Grant(sql.FieldContains(FieldEntitlementID, v))
}

// EntitlementIDHasPrefix applies the HasPrefix predicate on the "entitlement_id" field.
func EntitlementIDHasPrefix(v string) predicate.Grant {
	return predicate.Grant(sql.FieldHasPrefix(FieldEntitlementID, v))
}

// EntitlementIDHasSuffix applies the HasSuffix predicate on the "entitlement_id" field.
func EntitlementIDHasSuffix(v string) predicate.Grant {
	return predicate.Grant(sql.FieldHasSuffix(FieldEntitlementID, v))
}

// EntitlementIDEqualFold applies the EqualFold predicate on the "entitlement_id" field.
func EntitlementIDEqualFold(v string) predicate.Grant {
	return predicate.Grant(sql.FieldEqualFold(FieldEntitlementID, v))
}

// EntitlementIDContainsFold applies the ContainsFold predicate on the "entitlement_id" field.
func EntitlementIDContainsFold(v string) predicate.Grant {
	return predicate.Grant(sql.FieldContainsFold(FieldEntitlementID, v))
}

// DiscoveredAtEQ applies the EQ predicate on the "discovered_at" field.
func DiscoveredAtEQ(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldEQ(FieldDiscoveredAt, v))
}

// DiscoveredAtNEQ applies the NEQ predicate on the "discovered_at" field.
func DiscoveredAtNEQ(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldNEQ(FieldDiscoveredAt, v))
}

// DiscoveredAtIn applies the In predicate on the "discovered_at" field.
func DiscoveredAtIn(vs ...time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldIn(FieldDiscoveredAt, vs...))
}

// DiscoveredAtNotIn applies the NotIn predicate on the "discovered_at" field.
func DiscoveredAtNotIn(vs ...time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldNotIn(FieldDiscoveredAt, vs...))
}

// DiscoveredAtGT applies the GT predicate on the "discovered_at" field.
func DiscoveredAtGT(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldGT(FieldDiscoveredAt, v))
}

// DiscoveredAtGTE applies the GTE predicate on the "discovered_at" field.
func DiscoveredAtGTE(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldGTE(FieldDiscoveredAt, v))
}

// DiscoveredAtLT applies the LT predicate on the "discovered_at" field.
func DiscoveredAtLT(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldLT(FieldDiscoveredAt, v))
}

// DiscoveredAtLTE applies the LTE predicate on the "discovered_at" field.
func DiscoveredAtLTE(v time.Time) predicate.Grant {
	return predicate.Grant(sql.FieldLTE(FieldDiscoveredAt, v))
}

// HasPrincipal applies the HasEdge predicate on the "principal" edge.
func HasPrincipal() predicate.Grant {
	return predicate.Grant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PrincipalTable, PrincipalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPrincipalWith applies the HasEdge predicate on the "principal" edge with a given conditions (other predicates).
func HasPrincipalWith(preds ...predicate.Principal) predicate.Grant {
	return predicate.Grant(func(s *sql.Selector) {
		step := newPrincipalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntitlement applies the HasEdge predicate on the "entitlement" edge.
func HasEntitlement() predicate.Grant {
	return predicate.Grant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EntitlementTable, EntitlementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntitlementWith applies the HasEdge predicate on the "entitlement" edge with a given conditions (other predicates).
func HasEntitlementWith(preds ...predicate.Entitlement) predicate.Grant {
	return predicate.Grant(func(s *sql.Selector) {
		step := newEntitlementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Grant) predicate.Grant {
	return predicate.Grant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Grant) predicate.Grant {
	return predicate.Grant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Grant) predicate.Grant {
	return predicate.Grant(sql.NotPredicates(p))
}

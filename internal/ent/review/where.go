// Code generated by ent, DO NOT EDIT.

package review

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldID, id))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCampaignID, v))
}

// PrincipalID applies equality check predicate on the "principal_id" field. It's identical to PrincipalIDEQ.
func PrincipalID(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldPrincipalID, v))
}

// EntitlementID applies equality check predicate on the "entitlement_id" field. It's identical to EntitlementIDEQ.
func EntitlementID(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldEntitlementID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCreatedAt, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldDecidedAt, v))
}

// DecisionComment applies equality check predicate on the "decision_comment" field. It's identical to DecisionCommentEQ.
func DecisionComment(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldDecisionComment, v))
}

// RemediatedAt applies equality check predicate on the "remediated_at" field. It's identical to RemediatedAtEQ.
func RemediatedAt(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldRemediatedAt, v))
}

// RiskExplanation applies equality check predicate on the "risk_explanation" field. It's identical to RiskExplanationEQ.
func RiskExplanation(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldRiskExplanation, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...uuid.UUID) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldCampaignID, vs...))
}

// PrincipalIDEQ applies the EQ predicate on the "principal_id" field.
func PrincipalIDEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldPrincipalID, v))
}

// PrincipalIDNEQ applies the NEQ predicate on the "principal_id" field.
func PrincipalIDNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldPrincipalID, v))
}

// PrincipalIDIn applies the In predicate on the "principal_id" field.
func PrincipalIDIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldPrincipalID, vs...))
}

// PrincipalIDNotIn applies the NotIn predicate on the "principal_id" field.
func PrincipalIDNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldPrincipalID, vs...))
}

// PrincipalIDGT applies the GT predicate on the "principal_id" field.
func PrincipalIDGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldPrincipalID, v))
}

// PrincipalIDGTE applies the GTE predicate on the "principal_id" field.
func PrincipalIDGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldPrincipalID, v))
}

// PrincipalIDLT applies the LT predicate on the "principal_id" field.
func PrincipalIDLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldPrincipalID, v))
}

// PrincipalIDLTE applies the LTE predicate on the "principal_id" field.
func PrincipalIDLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldPrincipalID, v))
}

// PrincipalIDContains applies the Contains predicate on the "principal_id" field.
func PrincipalIDContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldPrincipalID, v))
}

// PrincipalIDHasPrefix applies the HasPrefix predicate on the "principal_id" field.
func PrincipalIDHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldPrincipalID, v))
}

// PrincipalIDHasSuffix applies the HasSuffix predicate on the "principal_id" field.
func PrincipalIDHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldPrincipalID, v))
}

// PrincipalIDEqualFold applies the EqualFold predicate on the "principal_id" field.
func PrincipalIDEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldPrincipalID, v))
}

// PrincipalIDContainsFold applies the ContainsFold predicate on the "principal_id" field.
func PrincipalIDContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldPrincipalID, v))
}

// EntitlementIDEQ applies the EQ predicate on the "entitlement_id" field.
func EntitlementIDEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldEntitlementID, v))
}

// EntitlementIDNEQ applies the NEQ predicate on the "entitlement_id" field.
func EntitlementIDNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldEntitlementID, v))
}

// EntitlementIDIn applies the In predicate on the "entitlement_id" field.
func EntitlementIDIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldEntitlementID, vs...))
}

// EntitlementIDNotIn applies the NotIn predicate on the "entitlement_id" field.
func EntitlementIDNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldEntitlementID, vs...))
}

// EntitlementIDGT applies the GT predicate on the "entitlement_id" field.
func EntitlementIDGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldEntitlementID, v))
}

// EntitlementIDGTE applies the GTE predicate on the "entitlement_id" field.
func EntitlementIDGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldEntitlementID, v))
}

// EntitlementIDLT applies the LT predicate on the "entitlement_id" field.
func EntitlementIDLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldEntitlementID, v))
}

// EntitlementIDLTE applies the LTE predicate on the "entitlement_id" field.
func EntitlementIDLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldEntitlementID, v))
}

// EntitlementIDContains applies the Contains predicate on the "entitlement_id" field.
func EntitlementIDContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldEntitlementID, v))
}

// EntitlementIDHasPrefix applies the HasPrefix predicate on the "entitlement_id" field.
func EntitlementIDHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldEntitlementID, v))
}

// EntitlementIDHasSuffix applies the HasSuffix predicate on the "entitlement_id" field.
func EntitlementIDHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldEntitlementID, v))
}

// EntitlementIDEqualFold applies the EqualFold predicate on the "entitlement_id" field.
func EntitlementIDEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldEntitlementID, v))
}

// EntitlementIDContainsFold applies the ContainsFold predicate on the "entitlement_id" field.
func EntitlementIDContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldEntitlementID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldCreatedAt, v))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldDecidedAt))
}

// DecisionCommentEQ applies the EQ predicate on the "decision_comment" field.
func DecisionCommentEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldDecisionComment, v))
}

// DecisionCommentNEQ applies the NEQ predicate on the "decision_comment" field.
func DecisionCommentNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldDecisionComment, v))
}

// DecisionCommentIn applies the In predicate on the "decision_comment" field.
func DecisionCommentIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldDecisionComment, vs...))
}

// DecisionCommentNotIn applies the NotIn predicate on the "decision_comment" field.
func DecisionCommentNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldDecisionComment, vs...))
}

// DecisionCommentGT applies the GT predicate on the "decision_comment" field.
func DecisionCommentGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldDecisionComment, v))
}

// DecisionCommentGTE applies the GTE predicate on the "decision_comment" field.
func DecisionCommentGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldDecisionComment, v))
}

// DecisionCommentLT applies the LT predicate on the "decision_comment" field.
func DecisionCommentLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldDecisionComment, v))
}

// DecisionCommentLTE applies the LTE predicate on the "decision_comment" field.
func DecisionCommentLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldDecisionComment, v))
}

// DecisionCommentContains applies the Contains predicate on the "decision_comment" field.
func DecisionCommentContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldDecisionComment, v))
}

// DecisionCommentHasPrefix applies the HasPrefix predicate on the "decision_comment" field.
func DecisionCommentHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldDecisionComment, v))
}

// DecisionCommentHasSuffix applies the HasSuffix predicate on the "decision_comment" field.
func DecisionCommentHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldDecisionComment, v))
}

// DecisionCommentIsNil applies the IsNil predicate on the "decision_comment" field.
func DecisionCommentIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldDecisionComment))
}

// DecisionCommentNotNil applies the NotNil predicate on the "decision_comment" field.
func DecisionCommentNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldDecisionComment))
}

// DecisionCommentEqualFold applies the EqualFold predicate on the "decision_comment" field.
func DecisionCommentEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldDecisionComment, v))
}

// DecisionCommentContainsFold applies the ContainsFold predicate on the "decision_comment" field.
func DecisionCommentContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldDecisionComment, v))
}

// RemediatedAtEQ applies the EQ predicate on the "remediated_at" field.
func RemediatedAtEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldRemediatedAt, v))
}

// RemediatedAtNEQ applies the NEQ predicate on the "remediated_at" field.
func RemediatedAtNEQ(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldRemediatedAt, v))
}

// RemediatedAtIn applies the In predicate on the "remediated_at" field.
func RemediatedAtIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldRemediatedAt, vs...))
}

// RemediatedAtNotIn applies the NotIn predicate on the "remediated_at" field.
func RemediatedAtNotIn(vs ...time.Time) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldRemediatedAt, vs...))
}

// RemediatedAtGT applies the GT predicate on the "remediated_at" field.
func RemediatedAtGT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldRemediatedAt, v))
}

// RemediatedAtGTE applies the GTE predicate on the "remediated_at" field.
func RemediatedAtGTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldRemediatedAt, v))
}

// RemediatedAtLT applies the LT predicate on the "remediated_at" field.
func RemediatedAtLT(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldRemediatedAt, v))
}

// RemediatedAtLTE applies the LTE predicate on the "remediated_at" field.
func RemediatedAtLTE(v time.Time) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldRemediatedAt, v))
}

// RemediatedAtIsNil applies the IsNil predicate on the "remediated_at" field.
func RemediatedAtIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldRemediatedAt))
}

// RemediatedAtNotNil applies the NotNil predicate on the "remediated_at" field.
func RemediatedAtNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldRemediatedAt))
}

// RiskExplanationEQ applies the EQ predicate on the "risk_explanation" field.
func RiskExplanationEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldEQ(FieldRiskExplanation, v))
}

// RiskExplanationNEQ applies the NEQ predicate on the "risk_explanation" field.
func RiskExplanationNEQ(v string) predicate.Review {
	return predicate.Review(sql.FieldNEQ(FieldRiskExplanation, v))
}

// RiskExplanationIn applies the In predicate on the "risk_explanation" field.
func RiskExplanationIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldIn(FieldRiskExplanation, vs...))
}

// RiskExplanationNotIn applies the NotIn predicate on the "risk_explanation" field.
func RiskExplanationNotIn(vs ...string) predicate.Review {
	return predicate.Review(sql.FieldNotIn(FieldRiskExplanation, vs...))
}

// RiskExplanationGT applies the GT predicate on the "risk_explanation" field.
func RiskExplanationGT(v string) predicate.Review {
	return predicate.Review(sql.FieldGT(FieldRiskExplanation, v))
}

// RiskExplanationGTE applies the GTE predicate on the "risk_explanation" field.
func RiskExplanationGTE(v string) predicate.Review {
	return predicate.Review(sql.FieldGTE(FieldRiskExplanation, v))
}

// RiskExplanationLT applies the LT predicate on the "risk_explanation" field.
func RiskExplanationLT(v string) predicate.Review {
	return predicate.Review(sql.FieldLT(FieldRiskExplanation, v))
}

// RiskExplanationLTE applies the LTE predicate on the "risk_explanation" field.
func RiskExplanationLTE(v string) predicate.Review {
	return predicate.Review(sql.FieldLTE(FieldRiskExplanation, v))
}

// RiskExplanationContains applies the Contains predicate on the "risk_explanation" field.
func RiskExplanationContains(v string) predicate.Review {
	return predicate.Review(sql.FieldContains(FieldRiskExplanation, v))
}

// RiskExplanationHasPrefix applies the HasPrefix predicate on the "risk_explanation" field.
func RiskExplanationHasPrefix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasPrefix(FieldRiskExplanation, v))
}

// RiskExplanationHasSuffix applies the HasSuffix predicate on the "risk_explanation" field.
func RiskExplanationHasSuffix(v string) predicate.Review {
	return predicate.Review(sql.FieldHasSuffix(FieldRiskExplanation, v))
}

// RiskExplanationIsNil applies the IsNil predicate on the "risk_explanation" field.
func RiskExplanationIsNil() predicate.Review {
	return predicate.Review(sql.FieldIsNull(FieldRiskExplanation))
}

// RiskExplanationNotNil applies the NotNil predicate on the "risk_explanation" field.
func RiskExplanationNotNil() predicate.Review {
	return predicate.Review(sql.FieldNotNull(FieldRiskExplanation))
}

// RiskExplanationEqualFold applies the EqualFold predicate on the "risk_explanation" field.
func RiskExplanationEqualFold(v string) predicate.Review {
	return predicate.Review(sql.FieldEqualFold(FieldRiskExplanation, v))
}

// RiskExplanationContainsFold applies the ContainsFold predicate on the "risk_explanation" field.
func RiskExplanationContainsFold(v string) predicate.Review {
	return predicate.Review(sql.FieldContainsFold(FieldRiskExplanation, v))
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPrincipal applies the HasEdge predicate on the "principal" edge.
func HasPrincipal() predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PrincipalTable, PrincipalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPrincipalWith applies the HasEdge predicate on the "principal" edge with a given conditions (other predicates).
func HasPrincipalWith(preds ...predicate.Principal) predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := newPrincipalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEntitlement applies the HasEdge predicate on the "entitlement" edge.
func HasEntitlement() predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EntitlementTable, EntitlementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntitlementWith applies the HasEdge predicate on the "entitlement" edge with a given conditions (other predicates).
func HasEntitlementWith(preds ...predicate.Entitlement) predicate.Review {
	return predicate.Review(func(s *sql.Selector) {
		step := newEntitlementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Review) predicate.Review {
	return predicate.Review(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Review) predicate.Review {
	return predicate.Review(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Review) predicate.Review {
	return predicate.Review(sql.NotPredicates(p))
}

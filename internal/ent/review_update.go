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
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/campaign"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/predicate"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/principal"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/google/uuid"
)

// ReviewUpdate is the builder for updating Review entities.
type ReviewUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewMutation
}

// Where appends a list predicates to the ReviewUpdate builder.
func (_u *ReviewUpdate) Where(ps ...predicate.Review) *ReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *ReviewUpdate) SetCampaignID(v uuid.UUID) *ReviewUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableCampaignID(v *uuid.UUID) *ReviewUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetPrincipalID sets the "principal_id" field.
func (_u *ReviewUpdate) SetPrincipalID(v string) *ReviewUpdate {
	_u.mutation.SetPrincipalID(v)
	return _u
}

// SetNillablePrincipalID sets the "principal_id" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillablePrincipalID(v *string) *ReviewUpdate {
	if v != nil {
		_u.SetPrincipalID(*v)
	}
	return _u
}

// SetEntitlementID sets the "entitlement_id" field.
func (_u *ReviewUpdate) SetEntitlementID(v string) *ReviewUpdate {
	_u.mutation.SetEntitlementID(v)
	return _u
}

// SetNillableEntitlementID sets the "entitlement_id" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableEntitlementID(v *string) *ReviewUpdate {
	if v != nil {
		_u.SetEntitlementID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewUpdate) SetStatus(v review.Status) *ReviewUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableStatus(v *review.Status) *ReviewUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ReviewUpdate) SetDecidedAt(v time.Time) *ReviewUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableDecidedAt(v *time.Time) *ReviewUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ReviewUpdate) ClearDecidedAt() *ReviewUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetDecisionComment sets the "decision_comment" field.
func (_u *ReviewUpdate) SetDecisionComment(v string) *ReviewUpdate {
	_u.mutation.SetDecisionComment(v)
	return _u
}

// SetNillableDecisionComment sets the "decision_comment" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableDecisionComment(v *string) *ReviewUpdate {
	if v != nil {
		_u.SetDecisionComment(*v)
	}
	return _u
}

// ClearDecisionComment clears the value of the "decision_comment" field.
func (_u *ReviewUpdate) ClearDecisionComment() *ReviewUpdate {
	_u.mutation.ClearDecisionComment()
	return _u
}

// SetRemediatedAt sets the "remediated_at" field.
func (_u *ReviewUpdate) SetRemediatedAt(v time.Time) *ReviewUpdate {
	_u.mutation.SetRemediatedAt(v)
	return _u
}

// SetNillableRemediatedAt sets the "remediated_at" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableRemediatedAt(v *time.Time) *ReviewUpdate {
	if v != nil {
		_u.SetRemediatedAt(*v)
	}
	return _u
}

// ClearRemediatedAt clears the value of the "remediated_at" field.
func (_u *ReviewUpdate) ClearRemediatedAt() *ReviewUpdate {
	_u.mutation.ClearRemediatedAt()
	return _u
}

// SetRiskExplanation sets the "risk_explanation" field.
func (_u *ReviewUpdate) SetRiskExplanation(v string) *ReviewUpdate {
	_u.mutation.SetRiskExplanation(v)
	return _u
}

// SetNillableRiskExplanation sets the "risk_explanation" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableRiskExplanation(v *string) *ReviewUpdate {
	if v != nil {
		_u.SetRiskExplanation(*v)
	}
	return _u
}

// ClearRiskExplanation clears the value of the "risk_explanation" field.
func (_u *ReviewUpdate) ClearRiskExplanation() *ReviewUpdate {
	_u.mutation.ClearRiskExplanation()
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *ReviewUpdate) SetCampaign(v *Campaign) *ReviewUpdate {
	return _u.SetCampaignID(v.ID)
}

// SetPrincipal sets the "principal" edge to the Principal entity.
func (_u *ReviewUpdate) SetPrincipal(v *Principal) *ReviewUpdate {
	return _u.SetPrincipalID(v.ID)
}

// SetEntitlement sets the "entitlement" edge to the Entitlement entity.
func (_u *ReviewUpdate) SetEntitlement(v *Entitlement) *ReviewUpdate {
	return _u.SetEntitlementID(v.ID)
}

// Mutation returns the ReviewMutation object of the builder.
func (_u *ReviewUpdate) Mutation() *ReviewMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *ReviewUpdate) ClearCampaign() *ReviewUpdate {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearPrincipal clears the "principal" edge to the Principal entity.
func (_u *ReviewUpdate) ClearPrincipal() *ReviewUpdate {
	_u.mutation.ClearPrincipal()
	return _u
}

// ClearEntitlement clears the "entitlement" edge to the Entitlement entity.
func (_u *ReviewUpdate) ClearEntitlement() *ReviewUpdate {
	_u.mutation.ClearEntitlement()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewUpdate) check() error {
	if v, ok := _u.mutation.PrincipalID(); ok {
		if err := review.PrincipalIDValidator(v); err != nil {
			return &ValidationError{Name: "principal_id", err: fmt.Errorf(`ent: validator failed for field "Review.principal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntitlementID(); ok {
		if err := review.EntitlementIDValidator(v); err != nil {
			return &ValidationError{Name: "entitlement_id", err: fmt.Errorf(`ent: validator failed for field "Review.entitlement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := review.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Review.status": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.campaign"`)
	}
	if _u.mutation.PrincipalCleared() && len(_u.mutation.PrincipalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.principal"`)
	}
	if _u.mutation.EntitlementCleared() && len(_u.mutation.EntitlementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.entitlement"`)
	}
	return nil
}

func (_u *ReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(review.Table, review.Columns, sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(review.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(review.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(review.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DecisionComment(); ok {
		_spec.SetField(review.FieldDecisionComment, field.TypeString, value)
	}
	if _u.mutation.DecisionCommentCleared() {
		_spec.ClearField(review.FieldDecisionComment, field.TypeString)
	}
	if value, ok := _u.mutation.RemediatedAt(); ok {
		_spec.SetField(review.FieldRemediatedAt, field.TypeTime, value)
	}
	if _u.mutation.RemediatedAtCleared() {
		_spec.ClearField(review.FieldRemediatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RiskExplanation(); ok {
		_spec.SetField(review.FieldRiskExplanation, field.TypeString, value)
	}
	if _u.mutation.RiskExplanationCleared() {
		_spec.ClearField(review.FieldRiskExplanation, field.TypeString)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.CampaignTable,
			Columns: []string{review.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.CampaignTable,
			Columns: []string{review.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PrincipalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.PrincipalTable,
			Columns: []string{review.PrincipalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(principal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrincipalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.PrincipalTable,
			Columns: []string{review.PrincipalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(principal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntitlementCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.EntitlementTable,
			Columns: []string{review.EntitlementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitlement.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitlementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.EntitlementTable,
			Columns: []string{review.EntitlementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitlement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{review.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewUpdateOne is the builder for updating a single Review entity.
type ReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewMutation
}

// SetCampaignID sets the "campaign_id" field.
func (_u *ReviewUpdateOne) SetCampaignID(v uuid.UUID) *ReviewUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableCampaignID(v *uuid.UUID) *ReviewUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// SetPrincipalID sets the "principal_id" field.
func (_u *ReviewUpdateOne) SetPrincipalID(v string) *ReviewUpdateOne {
	_u.mutation.SetPrincipalID(v)
	return _u
}

// SetNillablePrincipalID sets the "principal_id" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillablePrincipalID(v *string) *ReviewUpdateOne {
	if v != nil {
		_u.SetPrincipalID(*v)
	}
	return _u
}

// SetEntitlementID sets the "entitlement_id" field.
func (_u *ReviewUpdateOne) SetEntitlementID(v string) *ReviewUpdateOne {
	_u.mutation.SetEntitlementID(v)
	return _u
}

// SetNillableEntitlementID sets the "entitlement_id" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableEntitlementID(v *string) *ReviewUpdateOne {
	if v != nil {
		_u.SetEntitlementID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewUpdateOne) SetStatus(v review.Status) *ReviewUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableStatus(v *review.Status) *ReviewUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ReviewUpdateOne) SetDecidedAt(v time.Time) *ReviewUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableDecidedAt(v *time.Time) *ReviewUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ReviewUpdateOne) ClearDecidedAt() *ReviewUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetDecisionComment sets the "decision_comment" field.
func (_u *ReviewUpdateOne) SetDecisionComment(v string) *ReviewUpdateOne {
	_u.mutation.SetDecisionComment(v)
	return _u
}

// SetNillableDecisionComment sets the "decision_comment" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableDecisionComment(v *string) *ReviewUpdateOne {
	if v != nil {
		_u.SetDecisionComment(*v)
	}
	return _u
}

// ClearDecisionComment clears the value of the "decision_comment" field.
func (_u *ReviewUpdateOne) ClearDecisionComment() *ReviewUpdateOne {
	_u.mutation.ClearDecisionComment()
	return _u
}

// SetRemediatedAt sets the "remediated_at" field.
func (_u *ReviewUpdateOne) SetRemediatedAt(v time.Time) *ReviewUpdateOne {
	_u.mutation.SetRemediatedAt(v)
	return _u
}

// SetNillableRemediatedAt sets the "remediated_at" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableRemediatedAt(v *time.Time) *ReviewUpdateOne {
	if v != nil {
		_u.SetRemediatedAt(*v)
	}
	return _u
}

// ClearRemediatedAt clears the value of the "remediated_at" field.
func (_u *ReviewUpdateOne) ClearRemediatedAt() *ReviewUpdateOne {
	_u.mutation.ClearRemediatedAt()
	return _u
}

// SetRiskExplanation sets the "risk_explanation" field.
func (_u *ReviewUpdateOne) SetRiskExplanation(v string) *ReviewUpdateOne {
	_u.mutation.SetRiskExplanation(v)
	return _u
}

// SetNillableRiskExplanation sets the "risk_explanation" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableRiskExplanation(v *string) *ReviewUpdateOne {
	if v != nil {
		_u.SetRiskExplanation(*v)
	}
	return _u
}

// ClearRiskExplanation clears the value of the "risk_explanation" field.
func (_u *ReviewUpdateOne) ClearRiskExplanation() *ReviewUpdateOne {
	_u.mutation.ClearRiskExplanation()
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *ReviewUpdateOne) SetCampaign(v *Campaign) *ReviewUpdateOne {
	return _u.SetCampaignID(v.ID)
}

// SetPrincipal sets the "principal" edge to the Principal entity.
func (_u *ReviewUpdateOne) SetPrincipal(v *Principal) *ReviewUpdateOne {
	return _u.SetPrincipalID(v.ID)
}

// SetEntitlement sets the "entitlement" edge to the Entitlement entity.
func (_u *ReviewUpdateOne) SetEntitlement(v *Entitlement) *ReviewUpdateOne {
	return _u.SetEntitlementID(v.ID)
}

// Mutation returns the ReviewMutation object of the builder.
func (_u *ReviewUpdateOne) Mutation() *ReviewMutation {
	return _u.mutation
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *ReviewUpdateOne) ClearCampaign() *ReviewUpdateOne {
	_u.mutation.ClearCampaign()
	return _u
}

// ClearPrincipal clears the "principal" edge to the Principal entity.
func (_u *ReviewUpdateOne) ClearPrincipal() *ReviewUpdateOne {
	_u.mutation.ClearPrincipal()
	return _u
}

// ClearEntitlement clears the "entitlement" edge to the Entitlement entity.
func (_u *ReviewUpdateOne) ClearEntitlement() *ReviewUpdateOne {
	_u.mutation.ClearEntitlement()
	return _u
}

// Where appends a list predicates to the ReviewUpdate builder.
func (_u *ReviewUpdateOne) Where(ps ...predicate.Review) *ReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewUpdateOne) Select(field string, fields ...string) *ReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Review entity.
func (_u *ReviewUpdateOne) Save(ctx context.Context) (*Review, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewUpdateOne) SaveX(ctx context.Context) *Review {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewUpdateOne) check() error {
	if v, ok := _u.mutation.PrincipalID(); ok {
		if err := review.PrincipalIDValidator(v); err != nil {
			return &ValidationError{Name: "principal_id", err: fmt.Errorf(`ent: validator failed for field "Review.principal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntitlementID(); ok {
		if err := review.EntitlementIDValidator(v); err != nil {
			return &ValidationError{Name: "entitlement_id", err: fmt.Errorf(`ent: validator failed for field "Review.entitlement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := review.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Review.status": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.campaign"`)
	}
	if _u.mutation.PrincipalCleared() && len(_u.mutation.PrincipalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.principal"`)
	}
	if _u.mutation.EntitlementCleared() && len(_u.mutation.EntitlementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.entitlement"`)
	}
	return nil
}

func (_u *ReviewUpdateOne) sqlSave(ctx context.Context) (_node *Review, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(review.Table, review.Columns, sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Review.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, review.FieldID)
		for _, f := range fields {
			if !review.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != review.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(review.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(review.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(review.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DecisionComment(); ok {
		_spec.SetField(review.FieldDecisionComment, field.TypeString, value)
	}
	if _u.mutation.DecisionCommentCleared() {
		_spec.ClearField(review.FieldDecisionComment, field.TypeString)
	}
	if value, ok := _u.mutation.RemediatedAt(); ok {
		_spec.SetField(review.FieldRemediatedAt, field.TypeTime, value)
	}
	if _u.mutation.RemediatedAtCleared() {
		_spec.ClearField(review.FieldRemediatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RiskExplanation(); ok {
		_spec.SetField(review.FieldRiskExplanation, field.TypeString, value)
	}
	if _u.mutation.RiskExplanationCleared() {
		_spec.ClearField(review.FieldRiskExplanation, field.TypeString)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.CampaignTable,
			Columns: []string{review.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.CampaignTable,
			Columns: []string{review.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PrincipalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.PrincipalTable,
			Columns: []string{review.PrincipalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(principal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrincipalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.PrincipalTable,
			Columns: []string{review.PrincipalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(principal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntitlementCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.EntitlementTable,
			Columns: []string{review.EntitlementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitlement.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitlementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.EntitlementTable,
			Columns: []string{review.EntitlementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitlement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Review{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{review.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

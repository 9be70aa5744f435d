// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/campaign"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/principal"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/google/uuid"
)

// ReviewCreate is the builder for creating a Review entity.
type ReviewCreate struct {
	config
	mutation *ReviewMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *ReviewCreate) SetCampaignID(v uuid.UUID) *ReviewCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetPrincipalID sets the "principal_id" field.
func (_c *ReviewCreate) SetPrincipalID(v string) *ReviewCreate {
	_c.mutation.SetPrincipalID(v)
	return _c
}

// SetEntitlementID sets the "entitlement_id" field.
func (_c *ReviewCreate) SetEntitlementID(v string) *ReviewCreate {
	_c.mutation.SetEntitlementID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReviewCreate) SetStatus(v review.Status) *ReviewCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableStatus(v *review.Status) *ReviewCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewCreate) SetCreatedAt(v time.Time) *ReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableCreatedAt(v *time.Time) *ReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *ReviewCreate) SetDecidedAt(v time.Time) *ReviewCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableDecidedAt(v *time.Time) *ReviewCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetDecisionComment sets the "decision_comment" field.
func (_c *ReviewCreate) SetDecisionComment(v string) *ReviewCreate {
	_c.mutation.SetDecisionComment(v)
	return _c
}

// SetNillableDecisionComment sets the "decision_comment" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableDecisionComment(v *string) *ReviewCreate {
	if v != nil {
		_c.SetDecisionComment(*v)
	}
	return _c
}

// SetRemediatedAt sets the "remediated_at" field.
func (_c *ReviewCreate) SetRemediatedAt(v time.Time) *ReviewCreate {
	_c.mutation.SetRemediatedAt(v)
	return _c
}

// SetNillableRemediatedAt sets the "remediated_at" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableRemediatedAt(v *time.Time) *ReviewCreate {
	if v != nil {
		_c.SetRemediatedAt(*v)
	}
	return _c
}

// SetRiskExplanation sets the "risk_explanation" field.
func (_c *ReviewCreate) SetRiskExplanation(v string) *ReviewCreate {
	_c.mutation.SetRiskExplanation(v)
	return _c
}

// SetNillableRiskExplanation sets the "risk_explanation" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableRiskExplanation(v *string) *ReviewCreate {
	if v != nil {
		_c.SetRiskExplanation(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReviewCreate) SetID(v uuid.UUID) *ReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableID(v *uuid.UUID) *ReviewCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *ReviewCreate) SetCampaign(v *Campaign) *ReviewCreate {
	return _c.SetCampaignID(v.ID)
}

// SetPrincipal sets the "principal" edge to the Principal entity.
func (_c *ReviewCreate) SetPrincipal(v *Principal) *ReviewCreate {
	return _c.SetPrincipalID(v.ID)
}

// SetEntitlement sets the "entitlement" edge to the Entitlement entity.
func (_c *ReviewCreate) SetEntitlement(v *Entitlement) *ReviewCreate {
	return _c.SetEntitlementID(v.ID)
}

// Mutation returns the ReviewMutation object of the builder.
func (_c *ReviewCreate) Mutation() *ReviewMutation {
	return _c.mutation
}

// Save creates the Review in the database.
func (_c *ReviewCreate) Save(ctx context.Context) (*Review, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewCreate) SaveX(ctx context.Context) *Review {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := review.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := review.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := review.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "Review.campaign_id"`)}
	}
	if _, ok := _c.mutation.PrincipalID(); !ok {
		return &ValidationError{Name: "principal_id", err: errors.New(`ent: missing required field "Review.principal_id"`)}
	}
	if v, ok := _c.mutation.PrincipalID(); ok {
		if err := review.PrincipalIDValidator(v); err != nil {
			return &ValidationError{Name: "principal_id", err: fmt.Errorf(`ent: validator failed for field "Review.principal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntitlementID(); !ok {
		return &ValidationError{Name: "entitlement_id", err: errors.New(`ent: missing required field "Review.entitlement_id"`)}
	}
	if v, ok := _c.mutation.EntitlementID(); ok {
		if err := review.EntitlementIDValidator(v); err != nil {
			return &ValidationError{Name: "entitlement_id", err: fmt.Errorf(`ent: validator failed for field "Review.entitlement_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Review.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := review.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Review.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Review.created_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "Review.campaign"`)}
	}
	if len(_c.mutation.PrincipalIDs()) == 0 {
		return &ValidationError{Name: "principal", err: errors.New(`ent: missing required edge "Review.principal"`)}
	}
	if len(_c.mutation.EntitlementIDs()) == 0 {
		return &ValidationError{Name: "entitlement", err: errors.New(`ent: missing required edge "Review.entitlement"`)}
	}
	return nil
}

func (_c *ReviewCreate) sqlSave(ctx context.Context) (*Review, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewCreate) createSpec() (*Review, *sqlgraph.CreateSpec) {
	var (
		_node = &Review{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(review.Table, sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(review.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(review.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(review.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.DecisionComment(); ok {
		_spec.SetField(review.FieldDecisionComment, field.TypeString, value)
		_node.DecisionComment = &value
	}
	if value, ok := _c.mutation.RemediatedAt(); ok {
		_spec.SetField(review.FieldRemediatedAt, field.TypeTime, value)
		_node.RemediatedAt = &value
	}
	if value, ok := _c.mutation.RiskExplanation(); ok {
		_spec.SetField(review.FieldRiskExplanation, field.TypeString, value)
		_node.RiskExplanation = &value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
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
		_node.CampaignID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PrincipalIDs(); len(nodes) > 0 {
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
		_node.PrincipalID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntitlementIDs(); len(nodes) > 0 {
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
		_node.EntitlementID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReviewCreateBulk is the builder for creating many Review entities in bulk.
type ReviewCreateBulk struct {
	config
	err      error
	builders []*ReviewCreate
}

// Save creates the Review entities in the database.
func (_c *ReviewCreateBulk) Save(ctx context.Context) ([]*Review, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Review, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewMutation)
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
func (_c *ReviewCreateBulk) SaveX(ctx context.Context) []*Review {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

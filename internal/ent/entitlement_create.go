// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/grant"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/google/uuid"
)

// EntitlementCreate is the builder for creating a Entitlement entity.
type EntitlementCreate struct {
	config
	mutation *EntitlementMutation
	hooks    []Hook
}

// SetDisplayName sets the "display_name" field.
func (_c *EntitlementCreate) SetDisplayName(v string) *EntitlementCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetRiskTier sets the "risk_tier" field.
func (_c *EntitlementCreate) SetRiskTier(v entitlement.RiskTier) *EntitlementCreate {
	_c.mutation.SetRiskTier(v)
	return _c
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_c *EntitlementCreate) SetNillableRiskTier(v *entitlement.RiskTier) *EntitlementCreate {
	if v != nil {
		_c.SetRiskTier(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntitlementCreate) SetID(v string) *EntitlementCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddGrantIDs adds the "grants" edge to the Grant entity by IDs.
func (_c *EntitlementCreate) AddGrantIDs(ids ...uuid.UUID) *EntitlementCreate {
	_c.mutation.AddGrantIDs(ids...)
	return _c
}

// AddGrants adds the "grants" edges to the Grant entity.
func (_c *EntitlementCreate) AddGrants(v ...*Grant) *EntitlementCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGrantIDs(ids...)
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_c *EntitlementCreate) AddReviewIDs(ids ...uuid.UUID) *EntitlementCreate {
	_c.mutation.AddReviewIDs(ids...)
	return _c
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_c *EntitlementCreate) AddReviews(v ...*Review) *EntitlementCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReviewIDs(ids...)
}

// Mutation returns the EntitlementMutation object of the builder.
func (_c *EntitlementCreate) Mutation() *EntitlementMutation {
	return _c.mutation
}

// Save creates the Entitlement in the database.
func (_c *EntitlementCreate) Save(ctx context.Context) (*Entitlement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntitlementCreate) SaveX(ctx context.Context) *Entitlement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitlementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitlementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntitlementCreate) defaults() {
	if _, ok := _c.mutation.RiskTier(); !ok {
		v := entitlement.DefaultRiskTier
		_c.mutation.SetRiskTier(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntitlementCreate) check() error {
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Entitlement.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := entitlement.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Entitlement.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		return &ValidationError{Name: "risk_tier", err: errors.New(`ent: missing required field "Entitlement.risk_tier"`)}
	}
	if v, ok := _c.mutation.RiskTier(); ok {
		if err := entitlement.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "Entitlement.risk_tier": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := entitlement.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Entitlement.id": %w`, err)}
		}
	}
	return nil
}

func (_c *EntitlementCreate) sqlSave(ctx context.Context) (*Entitlement, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Entitlement.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntitlementCreate) createSpec() (*Entitlement, *sqlgraph.CreateSpec) {
	var (
		_node = &Entitlement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitlement.Table, sqlgraph.NewFieldSpec(entitlement.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(entitlement.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.RiskTier(); ok {
		_spec.SetField(entitlement.FieldRiskTier, field.TypeEnum, value)
		_node.RiskTier = value
	}
	if nodes := _c.mutation.GrantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entitlement.GrantsTable,
			Columns: []string{entitlement.GrantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(grant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   entitlement.ReviewsTable,
			Columns: []string{entitlement.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EntitlementCreateBulk is the builder for creating many Entitlement entities in bulk.
type EntitlementCreateBulk struct {
	config
	err      error
	builders []*EntitlementCreate
}

// Save creates the Entitlement entities in the database.
func (_c *EntitlementCreateBulk) Save(ctx context.Context) ([]*Entitlement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Entitlement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntitlementMutation)
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
func (_c *EntitlementCreateBulk) SaveX(ctx context.Context) []*Entitlement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitlementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitlementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/grant"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/principal"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/google/uuid"
)

// PrincipalCreate is the builder for creating a Principal entity.
type PrincipalCreate struct {
	config
	mutation *PrincipalMutation
	hooks    []Hook
}

// SetDisplayName sets the "display_name" field.
func (_c *PrincipalCreate) SetDisplayName(v string) *PrincipalCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetReference sets the "reference" field.
func (_c *PrincipalCreate) SetReference(v string) *PrincipalCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetDiscoveredAt sets the "discovered_at" field.
func (_c *PrincipalCreate) SetDiscoveredAt(v time.Time) *PrincipalCreate {
	_c.mutation.SetDiscoveredAt(v)
	return _c
}

// SetNillableDiscoveredAt sets the "discovered_at" field if the given value is not nil.
func (_c *PrincipalCreate) SetNillableDiscoveredAt(v *time.Time) *PrincipalCreate {
	if v != nil {
		_c.SetDiscoveredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PrincipalCreate) SetID(v string) *PrincipalCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddGrantIDs adds the "grants" edge to the Grant entity by IDs.
func (_c *PrincipalCreate) AddGrantIDs(ids ...uuid.UUID) *PrincipalCreate {
	_c.mutation.AddGrantIDs(ids...)
	return _c
}

// AddGrants adds the "grants" edges to the Grant entity.
func (_c *PrincipalCreate) AddGrants(v ...*Grant) *PrincipalCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGrantIDs(ids...)
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_c *PrincipalCreate) AddReviewIDs(ids ...uuid.UUID) *PrincipalCreate {
	_c.mutation.AddReviewIDs(ids...)
	return _c
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_c *PrincipalCreate) AddReviews(v ...*Review) *PrincipalCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReviewIDs(ids...)
}

// Mutation returns the PrincipalMutation object of the builder.
func (_c *PrincipalCreate) Mutation() *PrincipalMutation {
	return _c.mutation
}

// Save creates the Principal in the database.
func (_c *PrincipalCreate) Save(ctx context.Context) (*Principal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrincipalCreate) SaveX(ctx context.Context) *Principal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrincipalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrincipalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PrincipalCreate) defaults() {
	if _, ok := _c.mutation.DiscoveredAt(); !ok {
		v := principal.DefaultDiscoveredAt()
		_c.mutation.SetDiscoveredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrincipalCreate) check() error {
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Principal.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := principal.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Principal.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reference(); !ok {
		return &ValidationError{Name: "reference", err: errors.New(`ent: missing required field "Principal.reference"`)}
	}
	if v, ok := _c.mutation.Reference(); ok {
		if err := principal.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "Principal.reference": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscoveredAt(); !ok {
		return &ValidationError{Name: "discovered_at", err: errors.New(`ent: missing required field "Principal.discovered_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := principal.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Principal.id": %w`, err)}
		}
	}
	return nil
}

func (_c *PrincipalCreate) sqlSave(ctx context.Context) (*Principal, error) {
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
			return nil, fmt.Errorf("unexpected Principal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PrincipalCreate) createSpec() (*Principal, *sqlgraph.CreateSpec) {
	var (
		_node = &Principal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(principal.Table, sqlgraph.NewFieldSpec(principal.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(principal.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(principal.FieldReference, field.TypeString, value)
		_node.Reference = value
	}
	if value, ok := _c.mutation.DiscoveredAt(); ok {
		_spec.SetField(principal.FieldDiscoveredAt, field.TypeTime, value)
		_node.DiscoveredAt = value
	}
	if nodes := _c.mutation.GrantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   principal.GrantsTable,
			Columns: []string{principal.GrantsColumn},
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
			Table:   principal.ReviewsTable,
			Columns: []string{principal.ReviewsColumn},
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

// PrincipalCreateBulk is the builder for creating many Principal entities in bulk.
type PrincipalCreateBulk struct {
	config
	err      error
	builders []*PrincipalCreate
}

// Save creates the Principal entities in the database.
func (_c *PrincipalCreateBulk) Save(ctx context.Context) ([]*Principal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Principal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrincipalMutation)
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
func (_c *PrincipalCreateBulk) SaveX(ctx context.Context) []*Principal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrincipalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrincipalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

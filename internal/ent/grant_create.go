// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/grant"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/principal"
	"github.com/google/uuid"
)

// GrantCreate is the builder for creating a Grant entity.
type GrantCreate struct {
	config
	mutation *GrantMutation
	hooks    []Hook
}

// SetPrincipalID sets the "principal_id" field.
func (_c *GrantCreate) SetPrincipalID(v string) *GrantCreate {
	_c.mutation.SetPrincipalID(v)
	return _c
}

// SetEntitlementID sets the "entitlement_id" field.
func (_c *GrantCreate) SetEntitlementID(v string) *GrantCreate {
	_c.mutation.SetEntitlementID(v)
	return _c
}

// SetDiscoveredAt sets the "discovered_at" field.
func (_c *GrantCreate) SetDiscoveredAt(v time.Time) *GrantCreate {
	_c.mutation.SetDiscoveredAt(v)
	return _c
}

// SetNillableDiscoveredAt sets the "discovered_at" field if the given value is not nil.
func (_c *GrantCreate) SetNillableDiscoveredAt(v *time.Time) *GrantCreate {
	if v != nil {
		_c.SetDiscoveredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GrantCreate) SetID(v uuid.UUID) *GrantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GrantCreate) SetNillableID(v *uuid.UUID) *GrantCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPrincipal sets the "principal" edge to the Principal entity.
func (_c *GrantCreate) SetPrincipal(v *Principal) *GrantCreate {
	return _c.SetPrincipalID(v.ID)
}

// SetEntitlement sets the "entitlement" edge to the Entitlement entity.
func (_c *GrantCreate) SetEntitlement(v *Entitlement) *GrantCreate {
	return _c.SetEntitlementID(v.ID)
}

// Mutation returns the GrantMutation object of the builder.
func (_c *GrantCreate) Mutation() *GrantMutation {
	return _c.mutation
}

// Save creates the Grant in the database.
func (_c *GrantCreate) Save(ctx context.Context) (*Grant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GrantCreate) SaveX(ctx context.Context) *Grant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GrantCreate) defaults() {
	if _, ok := _c.mutation.DiscoveredAt(); !ok {
		v := grant.DefaultDiscoveredAt()
		_c.mutation.SetDiscoveredAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := grant.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GrantCreate) check() error {
	if _, ok := _c.mutation.PrincipalID(); !ok {
		return &ValidationError{Name: "principal_id", err: errors.New(`ent: missing required field "Grant.principal_id"`)}
	}
	if v, ok := _c.mutation.PrincipalID(); ok {
		if err := grant.PrincipalIDValidator(v); err != nil {
			return &ValidationError{Name: "principal_id", err: fmt.Errorf(`ent: validator failed for field "Grant.principal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntitlementID(); !ok {
		return &ValidationError{Name: "entitlement_id", err: errors.New(`ent: missing required field "Grant.entitlement_id"`)}
	}
	if v, ok := _c.mutation.EntitlementID(); ok {
		if err := grant.EntitlementIDValidator(v); err != nil {
			return &ValidationError{Name: "entitlement_id", err: fmt.Errorf(`ent: validator failed for field "Grant.entitlement_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscoveredAt(); !ok {
		return &ValidationError{Name: "discovered_at", err: errors.New(`ent: missing required field "Grant.discovered_at"`)}
	}
	if len(_c.mutation.PrincipalIDs()) == 0 {
		return &ValidationError{Name: "principal", err: errors.New(`ent: missing required edge "Grant.principal"`)}
	}
	if len(_c.mutation.EntitlementIDs()) == 0 {
		return &ValidationError{Name: "entitlement", err: errors.New(`ent: missing required edge "Grant.entitlement"`)}
	}
	return nil
}

func (_c *GrantCreate) sqlSave(ctx context.Context) (*Grant, error) {
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

func (_c *GrantCreate) createSpec() (*Grant, *sqlgraph.CreateSpec) {
	var (
		_node = &Grant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(grant.Table, sqlgraph.NewFieldSpec(grant.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DiscoveredAt(); ok {
		_spec.SetField(grant.FieldDiscoveredAt, field.TypeTime, value)
		_node.DiscoveredAt = value
	}
	if nodes := _c.mutation.PrincipalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   grant.PrincipalTable,
			Columns: []string{grant.PrincipalColumn},
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
			Table:   grant.EntitlementTable,
			Columns: []string{grant.EntitlementColumn},
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

// GrantCreateBulk is the builder for creating many Grant entities in bulk.
type GrantCreateBulk struct {
	config
	err      error
	builders []*GrantCreate
}

// Save creates the Grant entities in the database.
func (_c *GrantCreateBulk) Save(ctx context.Context) ([]*Grant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Grant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GrantMutation)
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
func (_c *GrantCreateBulk) SaveX(ctx context.Context) []*Grant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GrantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GrantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

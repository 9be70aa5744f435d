// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/grant"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/predicate"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/principal"
)

// GrantUpdate is the builder for updating Grant entities.
type GrantUpdate struct {
	config
	hooks    []Hook
	mutation *GrantMutation
}

// Where appends a list predicates to the GrantUpdate builder.
func (_u *GrantUpdate) Where(ps ...predicate.Grant) *GrantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPrincipalID sets the "principal_id" field.
func (_u *GrantUpdate) SetPrincipalID(v string) *GrantUpdate {
	_u.mutation.SetPrincipalID(v)
	return _u
}

// SetNillablePrincipalID sets the "principal_id" field if the given value is not nil.
func (_u *GrantUpdate) SetNillablePrincipalID(v *string) *GrantUpdate {
	if v != nil {
		_u.SetPrincipalID(*v)
	}
	return _u
}

// SetEntitlementID sets the "entitlement_id" field.
func (_u *GrantUpdate) SetEntitlementID(v string) *GrantUpdate {
	_u.mutation.SetEntitlementID(v)
	return _u
}

// SetNillableEntitlementID sets the "entitlement_id" field if the given value is not nil.
func (_u *GrantUpdate) SetNillableEntitlementID(v *string) *GrantUpdate {
	if v != nil {
		_u.SetEntitlementID(*v)
	}
	return _u
}

// SetPrincipal sets the "principal" edge to the Principal entity.
func (_u *GrantUpdate) SetPrincipal(v *Principal) *GrantUpdate {
	return _u.SetPrincipalID(v.ID)
}

// SetEntitlement sets the "entitlement" edge to the Entitlement entity.
func (_u *GrantUpdate) SetEntitlement(v *Entitlement) *GrantUpdate {
	return _u.SetEntitlementID(v.ID)
}

// Mutation returns the GrantMutation object of the builder.
func (_u *GrantUpdate) Mutation() *GrantMutation {
	return _u.mutation
}

// ClearPrincipal clears the "principal" edge to the Principal entity.
func (_u *GrantUpdate) ClearPrincipal() *GrantUpdate {
	_u.mutation.ClearPrincipal()
	return _u
}

// ClearEntitlement clears the "entitlement" edge to the Entitlement entity.
func (_u *GrantUpdate) ClearEntitlement() *GrantUpdate {
	_u.mutation.ClearEntitlement()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GrantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GrantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrantUpdate) check() error {
	if v, ok := _u.mutation.PrincipalID(); ok {
		if err := grant.PrincipalIDValidator(v); err != nil {
			return &ValidationError{Name: "principal_id", err: fmt.Errorf(`ent: validator failed for field "Grant.principal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntitlementID(); ok {
		if err := grant.EntitlementIDValidator(v); err != nil {
			return &ValidationError{Name: "entitlement_id", err: fmt.Errorf(`ent: validator failed for field "Grant.entitlement_id": %w`, err)}
		}
	}
	if _u.mutation.PrincipalCleared() && len(_u.mutation.PrincipalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Grant.principal"`)
	}
	if _u.mutation.EntitlementCleared() && len(_u.mutation.EntitlementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Grant.entitlement"`)
	}
	return nil
}

func (_u *GrantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grant.Table, grant.Columns, sqlgraph.NewFieldSpec(grant.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PrincipalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrincipalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntitlementCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitlementIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GrantUpdateOne is the builder for updating a single Grant entity.
type GrantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GrantMutation
}

// SetPrincipalID sets the "principal_id" field.
func (_u *GrantUpdateOne) SetPrincipalID(v string) *GrantUpdateOne {
	_u.mutation.SetPrincipalID(v)
	return _u
}

// SetNillablePrincipalID sets the "principal_id" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillablePrincipalID(v *string) *GrantUpdateOne {
	if v != nil {
		_u.SetPrincipalID(*v)
	}
	return _u
}

// SetEntitlementID sets the "entitlement_id" field.
func (_u *GrantUpdateOne) SetEntitlementID(v string) *GrantUpdateOne {
	_u.mutation.SetEntitlementID(v)
	return _u
}

// SetNillableEntitlementID sets the "entitlement_id" field if the given value is not nil.
func (_u *GrantUpdateOne) SetNillableEntitlementID(v *string) *GrantUpdateOne {
	if v != nil {
		_u.SetEntitlementID(*v)
	}
	return _u
}

// SetPrincipal sets the "principal" edge to the Principal entity.
func (_u *GrantUpdateOne) SetPrincipal(v *Principal) *GrantUpdateOne {
	return _u.SetPrincipalID(v.ID)
}

// SetEntitlement sets the "entitlement" edge to the Entitlement entity.
func (_u *GrantUpdateOne) SetEntitlement(v *Entitlement) *GrantUpdateOne {
	return _u.SetEntitlementID(v.ID)
}

// Mutation returns the GrantMutation object of the builder.
func (_u *GrantUpdateOne) Mutation() *GrantMutation {
	return _u.mutation
}

// ClearPrincipal clears the "principal" edge to the Principal entity.
func (_u *GrantUpdateOne) ClearPrincipal() *GrantUpdateOne {
	_u.mutation.ClearPrincipal()
	return _u
}

// ClearEntitlement clears the "entitlement" edge to the Entitlement entity.
func (_u *GrantUpdateOne) ClearEntitlement() *GrantUpdateOne {
	_u.mutation.ClearEntitlement()
	return _u
}

// Where appends a list predicates to the GrantUpdate builder.
func (_u *GrantUpdateOne) Where(ps ...predicate.Grant) *GrantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GrantUpdateOne) Select(field string, fields ...string) *GrantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Grant entity.
func (_u *GrantUpdateOne) Save(ctx context.Context) (*Grant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GrantUpdateOne) SaveX(ctx context.Context) *Grant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GrantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GrantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GrantUpdateOne) check() error {
	if v, ok := _u.mutation.PrincipalID(); ok {
		if err := grant.PrincipalIDValidator(v); err != nil {
			return &ValidationError{Name: "principal_id", err: fmt.Errorf(`ent: validator failed for field "Grant.principal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntitlementID(); ok {
		if err := grant.EntitlementIDValidator(v); err != nil {
			return &ValidationError{Name: "entitlement_id", err: fmt.Errorf(`ent: validator failed for field "Grant.entitlement_id": %w`, err)}
		}
	}
	if _u.mutation.PrincipalCleared() && len(_u.mutation.PrincipalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Grant.principal"`)
	}
	if _u.mutation.EntitlementCleared() && len(_u.mutation.EntitlementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Grant.entitlement"`)
	}
	return nil
}

func (_u *GrantUpdateOne) sqlSave(ctx context.Context) (_node *Grant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grant.Table, grant.Columns, sqlgraph.NewFieldSpec(grant.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Grant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grant.FieldID)
		for _, f := range fields {
			if !grant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != grant.FieldID {
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
	if _u.mutation.PrincipalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrincipalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntitlementCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntitlementIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Grant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

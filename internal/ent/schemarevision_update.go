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
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/predicate"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/schemarevision"
)

// SchemaRevisionUpdate is the builder for updating SchemaRevision entities.
type SchemaRevisionUpdate struct {
	config
	hooks    []Hook
	mutation *SchemaRevisionMutation
}

// Where appends a list predicates to the SchemaRevisionUpdate builder.
func (_u *SchemaRevisionUpdate) Where(ps ...predicate.SchemaRevision) *SchemaRevisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *SchemaRevisionUpdate) SetVersion(v string) *SchemaRevisionUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SchemaRevisionUpdate) SetNillableVersion(v *string) *SchemaRevisionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *SchemaRevisionUpdate) SetAppliedAt(v time.Time) *SchemaRevisionUpdate {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// Mutation returns the SchemaRevisionMutation object of the builder.
func (_u *SchemaRevisionUpdate) Mutation() *SchemaRevisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchemaRevisionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchemaRevisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchemaRevisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchemaRevisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SchemaRevisionUpdate) defaults() {
	if _, ok := _u.mutation.AppliedAt(); !ok {
		v := schemarevision.UpdateDefaultAppliedAt()
		_u.mutation.SetAppliedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchemaRevisionUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := schemarevision.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "SchemaRevision.version": %w`, err)}
		}
	}
	return nil
}

func (_u *SchemaRevisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schemarevision.Table, schemarevision.Columns, sqlgraph.NewFieldSpec(schemarevision.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(schemarevision.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(schemarevision.FieldAppliedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schemarevision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchemaRevisionUpdateOne is the builder for updating a single SchemaRevision entity.
type SchemaRevisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchemaRevisionMutation
}

// SetVersion sets the "version" field.
func (_u *SchemaRevisionUpdateOne) SetVersion(v string) *SchemaRevisionUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SchemaRevisionUpdateOne) SetNillableVersion(v *string) *SchemaRevisionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *SchemaRevisionUpdateOne) SetAppliedAt(v time.Time) *SchemaRevisionUpdateOne {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// Mutation returns the SchemaRevisionMutation object of the builder.
func (_u *SchemaRevisionUpdateOne) Mutation() *SchemaRevisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SchemaRevisionUpdate builder.
func (_u *SchemaRevisionUpdateOne) Where(ps ...predicate.SchemaRevision) *SchemaRevisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchemaRevisionUpdateOne) Select(field string, fields ...string) *SchemaRevisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SchemaRevision entity.
func (_u *SchemaRevisionUpdateOne) Save(ctx context.Context) (*SchemaRevision, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchemaRevisionUpdateOne) SaveX(ctx context.Context) *SchemaRevision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchemaRevisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchemaRevisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SchemaRevisionUpdateOne) defaults() {
	if _, ok := _u.mutation.AppliedAt(); !ok {
		v := schemarevision.UpdateDefaultAppliedAt()
		_u.mutation.SetAppliedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SchemaRevisionUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := schemarevision.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "SchemaRevision.version": %w`, err)}
		}
	}
	return nil
}

func (_u *SchemaRevisionUpdateOne) sqlSave(ctx context.Context) (_node *SchemaRevision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(schemarevision.Table, schemarevision.Columns, sqlgraph.NewFieldSpec(schemarevision.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SchemaRevision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schemarevision.FieldID)
		for _, f := range fields {
			if !schemarevision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schemarevision.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(schemarevision.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(schemarevision.FieldAppliedAt, field.TypeTime, value)
	}
	_node = &SchemaRevision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schemarevision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/schemarevision"
)

// SchemaRevisionCreate is the builder for creating a SchemaRevision entity.
type SchemaRevisionCreate struct {
	config
	mutation *SchemaRevisionMutation
	hooks    []Hook
}

// SetVersion sets the "version" field.
func (_c *SchemaRevisionCreate) SetVersion(v string) *SchemaRevisionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetAppliedAt sets the "applied_at" field.
func (_c *SchemaRevisionCreate) SetAppliedAt(v time.Time) *SchemaRevisionCreate {
	_c.mutation.SetAppliedAt(v)
	return _c
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_c *SchemaRevisionCreate) SetNillableAppliedAt(v *time.Time) *SchemaRevisionCreate {
	if v != nil {
		_c.SetAppliedAt(*v)
	}
	return _c
}

// Mutation returns the SchemaRevisionMutation object of the builder.
func (_c *SchemaRevisionCreate) Mutation() *SchemaRevisionMutation {
	return _c.mutation
}

// Save creates the SchemaRevision in the database.
func (_c *SchemaRevisionCreate) Save(ctx context.Context) (*SchemaRevision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchemaRevisionCreate) SaveX(ctx context.Context) *SchemaRevision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchemaRevisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchemaRevisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SchemaRevisionCreate) defaults() {
	if _, ok := _c.mutation.AppliedAt(); !ok {
		v := schemarevision.DefaultAppliedAt()
		_c.mutation.SetAppliedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchemaRevisionCreate) check() error {
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "SchemaRevision.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := schemarevision.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "SchemaRevision.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AppliedAt(); !ok {
		return &ValidationError{Name: "applied_at", err: errors.New(`ent: missing required field "SchemaRevision.applied_at"`)}
	}
	return nil
}

func (_c *SchemaRevisionCreate) sqlSave(ctx context.Context) (*SchemaRevision, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SchemaRevisionCreate) createSpec() (*SchemaRevision, *sqlgraph.CreateSpec) {
	var (
		_node = &SchemaRevision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schemarevision.Table, sqlgraph.NewFieldSpec(schemarevision.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(schemarevision.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.AppliedAt(); ok {
		_spec.SetField(schemarevision.FieldAppliedAt, field.TypeTime, value)
		_node.AppliedAt = value
	}
	return _node, _spec
}

// SchemaRevisionCreateBulk is the builder for creating many SchemaRevision entities in bulk.
type SchemaRevisionCreateBulk struct {
	config
	err      error
	builders []*SchemaRevisionCreate
}

// Save creates the SchemaRevision entities in the database.
func (_c *SchemaRevisionCreateBulk) Save(ctx context.Context) ([]*SchemaRevision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SchemaRevision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchemaRevisionMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *SchemaRevisionCreateBulk) SaveX(ctx context.Context) []*SchemaRevision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchemaRevisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchemaRevisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

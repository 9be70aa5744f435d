// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/schemarevision"
)

// SchemaRevision is the model entity for the SchemaRevision schema.
type SchemaRevision struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Version holds the value of the "version" field.
	Version string `json:"version,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt    time.Time `json:"applied_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SchemaRevision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schemarevision.FieldID:
			values[i] = new(sql.NullInt64)
		case schemarevision.FieldVersion:
			values[i] = new(sql.NullString)
		case schemarevision.FieldAppliedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SchemaRevision fields.
func (_m *SchemaRevision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schemarevision.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case schemarevision.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		case schemarevision.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				_m.AppliedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SchemaRevision.
// This includes values selected through modifiers, order, etc.
func (_m *SchemaRevision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SchemaRevision.
// Note that you need to call SchemaRevision.Unwrap() before calling this method if this SchemaRevision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SchemaRevision) Update() *SchemaRevisionUpdateOne {
	return NewSchemaRevisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SchemaRevision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SchemaRevision) Unwrap() *SchemaRevision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SchemaRevision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SchemaRevision) String() string {
	var builder strings.Builder
	builder.WriteString("SchemaRevision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
	builder.WriteString(", ")
	builder.WriteString("applied_at=")
	builder.WriteString(_m.AppliedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SchemaRevisions is a parsable slice of SchemaRevision.
type SchemaRevisions []*SchemaRevision

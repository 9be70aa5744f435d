// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/principal"
)

// Principal is the model entity for the Principal schema.
type Principal struct {
	config `json:"-"`
	// ID of the ent.
	// stable opaque identifier assigned by the identity provider
	ID string `json:"id,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// external reference, e.g. an ARN
	Reference string `json:"reference,omitempty"`
	// DiscoveredAt holds the value of the "discovered_at" field.
	DiscoveredAt time.Time `json:"discovered_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PrincipalQuery when eager-loading is set.
	Edges        PrincipalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PrincipalEdges holds the relations/edges for other nodes in the graph.
type PrincipalEdges struct {
	// Grants holds the value of the grants edge.
	Grants []*Grant `json:"grants,omitempty"`
	// Reviews holds the value of the reviews edge.
	Reviews []*Review `json:"reviews,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// GrantsOrErr returns the Grants value or an error if the edge
// was not loaded in eager-loading.
func (e PrincipalEdges) GrantsOrErr() ([]*Grant, error) {
	if e.loadedTypes[0] {
		return e.Grants, nil
	}
	return nil, &NotLoadedError{edge: "grants"}
}

// ReviewsOrErr returns the Reviews value or an error if the edge
// was not loaded in eager-loading.
func (e PrincipalEdges) ReviewsOrErr() ([]*Review, error) {
	if e.loadedTypes[1] {
		return e.Reviews, nil
	}
	return nil, &NotLoadedError{edge: "reviews"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Principal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case principal.FieldID, principal.FieldDisplayName, principal.FieldReference:
			values[i] = new(sql.NullString)
		case principal.FieldDiscoveredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Principal fields.
func (_m *Principal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case principal.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case principal.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case principal.FieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference", values[i])
			} else if value.Valid {
				_m.Reference = value.String
			}
		case principal.FieldDiscoveredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field discovered_at", values[i])
			} else if value.Valid {
				_m.DiscoveredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Principal.
// This includes values selected through modifiers, order, etc.
func (_m *Principal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGrants queries the "grants" edge of the Principal entity.
func (_m *Principal) QueryGrants() *GrantQuery {
	return NewPrincipalClient(_m.config).QueryGrants(_m)
}

// QueryReviews queries the "reviews" edge of the Principal entity.
func (_m *Principal) QueryReviews() *ReviewQuery {
	return NewPrincipalClient(_m.config).QueryReviews(_m)
}

// Update returns a builder for updating this Principal.
// Note that you need to call Principal.Unwrap() before calling this method if this Principal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Principal) Update() *PrincipalUpdateOne {
	return NewPrincipalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Principal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Principal) Unwrap() *Principal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Principal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Principal) String() string {
	var builder strings.Builder
	builder.WriteString("Principal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("reference=")
	builder.WriteString(_m.Reference)
	builder.WriteString(", ")
	builder.WriteString("discovered_at=")
	builder.WriteString(_m.DiscoveredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Principals is a parsable slice of Principal.
type Principals []*Principal

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/grant"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/principal"
	"github.com/google/uuid"
)

// Grant is the model entity for the Grant schema.
type Grant struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PrincipalID holds the value of the "principal_id" field.
	PrincipalID string `json:"principal_id,omitempty"`
	// EntitlementID holds the value of the "entitlement_id" field.
	EntitlementID string `json:"entitlement_id,omitempty"`
	// DiscoveredAt holds the value of the "discovered_at" field.
	DiscoveredAt time.Time `json:"discovered_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GrantQuery when eager-loading is set.
	Edges        GrantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GrantEdges holds the relations/edges for other nodes in the graph.
type GrantEdges struct {
	// Principal holds the value of the principal edge.
	Principal *Principal `json:"principal,omitempty"`
	// Entitlement holds the value of the entitlement edge.
	Entitlement *Entitlement `json:"entitlement,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PrincipalOrErr returns the Principal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GrantEdges) PrincipalOrErr() (*Principal, error) {
	if e.Principal != nil {
		return e.Principal, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: principal.Label}
	}
	return nil, &NotLoadedError{edge: "principal"}
}

// EntitlementOrErr returns the Entitlement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GrantEdges) EntitlementOrErr() (*Entitlement, error) {
	if e.Entitlement != nil {
		return e.Entitlement, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: entitlement.Label}
	}
	return nil, &NotLoadedError{edge: "entitlement"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Grant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case grant.FieldPrincipalID, grant.FieldEntitlementID:
			values[i] = new(sql.NullString)
		case grant.FieldDiscoveredAt:
			values[i] = new(sql.NullTime)
		case grant.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Grant fields.
func (_m *Grant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case grant.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case grant.FieldPrincipalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field principal_id", values[i])
			} else if value.Valid {
				_m.PrincipalID = value.String
			}
		case grant.FieldEntitlementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entitlement_id", values[i])
			} else if value.Valid {
				_m.EntitlementID = value.String
			}
		case grant.FieldDiscoveredAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Grant.
// This includes values selected through modifiers, order, etc.
func (_m *Grant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPrincipal queries the "principal" edge of the Grant entity.
func (_m *Grant) QueryPrincipal() *PrincipalQuery {
	return NewGrantClient(_m.config).QueryPrincipal(_m)
}

// QueryEntitlement queries the "entitlement" edge of the Grant entity.
func (_m *Grant) QueryEntitlement() *EntitlementQuery {
	return NewGrantClient(_m.config).QueryEntitlement(_m)
}

// Update returns a builder for updating this Grant.
// Note that you need to call Grant.Unwrap() before calling this method if this Grant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Grant) Update() *GrantUpdateOne {
	return NewGrantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Grant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Grant) Unwrap() *Grant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Grant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Grant) String() string {
	var builder strings.Builder
	builder.WriteString("Grant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("principal_id=")
	builder.WriteString(_m.PrincipalID)
	builder.WriteString(", ")
	builder.WriteString("entitlement_id=")
	builder.WriteString(_m.EntitlementID)
	builder.WriteString(", ")
	builder.WriteString("discovered_at=")
	builder.WriteString(_m.DiscoveredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Grants is a parsable slice of Grant.
type Grants []*Grant

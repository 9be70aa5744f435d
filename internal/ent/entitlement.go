// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
)

// Entitlement is the model entity for the Entitlement schema.
type Entitlement struct {
	config `json:"-"`
	// ID of the ent.
	// external identifier, e.g. a policy ARN
	ID string `json:"id,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// RiskTier holds the value of the "risk_tier" field.
	RiskTier entitlement.RiskTier `json:"risk_tier,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntitlementQuery when eager-loading is set.
	Edges        EntitlementEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntitlementEdges holds the relations/edges for other nodes in the graph.
type EntitlementEdges struct {
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
func (e EntitlementEdges) GrantsOrErr() ([]*Grant, error) {
	if e.loadedTypes[0] {
		return e.Grants, nil
	}
	return nil, &NotLoadedError{edge: "grants"}
}

// ReviewsOrErr returns the Reviews value or an error if the edge
// was not loaded in eager-loading.
func (e EntitlementEdges) ReviewsOrErr() ([]*Review, error) {
	if e.loadedTypes[1] {
		return e.Reviews, nil
	}
	return nil, &NotLoadedError{edge: "reviews"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Entitlement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitlement.FieldID, entitlement.FieldDisplayName, entitlement.FieldRiskTier:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Entitlement fields.
func (_m *Entitlement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitlement.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entitlement.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case entitlement.FieldRiskTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_tier", values[i])
			} else if value.Valid {
				_m.RiskTier = entitlement.RiskTier(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Entitlement.
// This includes values selected through modifiers, order, etc.
func (_m *Entitlement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGrants queries the "grants" edge of the Entitlement entity.
func (_m *Entitlement) QueryGrants() *GrantQuery {
	return NewEntitlementClient(_m.config).QueryGrants(_m)
}

// QueryReviews queries the "reviews" edge of the Entitlement entity.
func (_m *Entitlement) QueryReviews() *ReviewQuery {
	return NewEntitlementClient(_m.config).QueryReviews(_m)
}

// Update returns a builder for updating this Entitlement.
// Note that you need to call Entitlement.Unwrap() before calling this method if this Entitlement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Entitlement) Update() *EntitlementUpdateOne {
	return NewEntitlementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Entitlement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Entitlement) Unwrap() *Entitlement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Entitlement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Entitlement) String() string {
	var builder strings.Builder
	builder.WriteString("Entitlement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("risk_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskTier))
	builder.WriteByte(')')
	return builder.String()
}

// Entitlements is a parsable slice of Entitlement.
type Entitlements []*Entitlement

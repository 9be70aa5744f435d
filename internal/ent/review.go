// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/campaign"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/principal"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/google/uuid"
)

// Review is the model entity for the Review schema.
type Review struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID uuid.UUID `json:"campaign_id,omitempty"`
	// PrincipalID holds the value of the "principal_id" field.
	PrincipalID string `json:"principal_id,omitempty"`
	// EntitlementID holds the value of the "entitlement_id" field.
	EntitlementID string `json:"entitlement_id,omitempty"`
	// Status holds the value of the "status" field.
	Status review.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DecidedAt holds the value of the "decided_at" field.
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	// DecisionComment holds the value of the "decision_comment" field.
	DecisionComment *string `json:"decision_comment,omitempty"`
	// RemediatedAt holds the value of the "remediated_at" field.
	RemediatedAt *time.Time `json:"remediated_at,omitempty"`
	// RiskExplanation holds the value of the "risk_explanation" field.
	RiskExplanation *string `json:"risk_explanation,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReviewQuery when eager-loading is set.
	Edges        ReviewEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReviewEdges holds the relations/edges for other nodes in the graph.
type ReviewEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// Principal holds the value of the principal edge.
	Principal *Principal `json:"principal,omitempty"`
	// Entitlement holds the value of the entitlement edge.
	Entitlement *Entitlement `json:"entitlement,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReviewEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// PrincipalOrErr returns the Principal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReviewEdges) PrincipalOrErr() (*Principal, error) {
	if e.Principal != nil {
		return e.Principal, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: principal.Label}
	}
	return nil, &NotLoadedError{edge: "principal"}
}

// EntitlementOrErr returns the Entitlement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReviewEdges) EntitlementOrErr() (*Entitlement, error) {
	if e.Entitlement != nil {
		return e.Entitlement, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: entitlement.Label}
	}
	return nil, &NotLoadedError{edge: "entitlement"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Review) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case review.FieldPrincipalID, review.FieldEntitlementID, review.FieldStatus, review.FieldDecisionComment, review.FieldRiskExplanation:
			values[i] = new(sql.NullString)
		case review.FieldCreatedAt, review.FieldDecidedAt, review.FieldRemediatedAt:
			values[i] = new(sql.NullTime)
		case review.FieldID, review.FieldCampaignID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Review fields.
func (_m *Review) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case review.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case review.FieldCampaignID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value != nil {
				_m.CampaignID = *value
			}
		case review.FieldPrincipalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field principal_id", values[i])
			} else if value.Valid {
				_m.PrincipalID = value.String
			}
		case review.FieldEntitlementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entitlement_id", values[i])
			} else if value.Valid {
				_m.EntitlementID = value.String
			}
		case review.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = review.Status(value.String)
			}
		case review.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case review.FieldDecidedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decided_at", values[i])
			} else if value.Valid {
				_m.DecidedAt = new(time.Time)
				*_m.DecidedAt = value.Time
			}
		case review.FieldDecisionComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_comment", values[i])
			} else if value.Valid {
				_m.DecisionComment = new(string)
				*_m.DecisionComment = value.String
			}
		case review.FieldRemediatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field remediated_at", values[i])
			} else if value.Valid {
				_m.RemediatedAt = new(time.Time)
				*_m.RemediatedAt = value.Time
			}
		case review.FieldRiskExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_explanation", values[i])
			} else if value.Valid {
				_m.RiskExplanation = new(string)
				*_m.RiskExplanation = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Review.
// This includes values selected through modifiers, order, etc.
func (_m *Review) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the Review entity.
func (_m *Review) QueryCampaign() *CampaignQuery {
	return NewReviewClient(_m.config).QueryCampaign(_m)
}

// QueryPrincipal queries the "principal" edge of the Review entity.
func (_m *Review) QueryPrincipal() *PrincipalQuery {
	return NewReviewClient(_m.config).QueryPrincipal(_m)
}

// QueryEntitlement queries the "entitlement" edge of the Review entity.
func (_m *Review) QueryEntitlement() *EntitlementQuery {
	return NewReviewClient(_m.config).QueryEntitlement(_m)
}

// Update returns a builder for updating this Review.
// Note that you need to call Review.Unwrap() before calling this method if this Review
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Review) Update() *ReviewUpdateOne {
	return NewReviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Review entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Review) Unwrap() *Review {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Review is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Review) String() string {
	var builder strings.Builder
	builder.WriteString("Review(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CampaignID))
	builder.WriteString(", ")
	builder.WriteString("principal_id=")
	builder.WriteString(_m.PrincipalID)
	builder.WriteString(", ")
	builder.WriteString("entitlement_id=")
	builder.WriteString(_m.EntitlementID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DecidedAt; v != nil {
		builder.WriteString("decided_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DecisionComment; v != nil {
		builder.WriteString("decision_comment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RemediatedAt; v != nil {
		builder.WriteString("remediated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RiskExplanation; v != nil {
		builder.WriteString("risk_explanation=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Reviews is a parsable slice of Review.
type Reviews []*Review

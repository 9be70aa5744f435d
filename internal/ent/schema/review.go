package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Review tracks the certification decision for one grant. Lifecycle:
// PENDING -> APPROVED | REVOKED, decided exactly once; REVOKED reviews are
// finalized by the remediation scan setting remediated_at exactly once.
type Review struct {
	ent.Schema
}

// Fields of the Review.
func (Review) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("campaign_id", uuid.UUID{}),
		field.String("principal_id").
			NotEmpty(),
		field.String("entitlement_id").
			NotEmpty(),
		field.Enum("status").
			Values("PENDING", "APPROVED", "REVOKED").
			Default("PENDING"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("decided_at").
			Optional().
			Nillable(),
		field.String("decision_comment").
			Optional().
			Nillable(),
		field.Time("remediated_at").
			Optional().
			Nillable(),
		field.String("risk_explanation").
			Optional().
			Nillable(),
	}
}

// Edges of the Review.
func (Review) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("reviews").
			Field("campaign_id").
			Required().
			Unique(),
		edge.From("principal", Principal.Type).
			Ref("reviews").
			Field("principal_id").
			Required().
			Unique(),
		edge.From("entitlement", Entitlement.Type).
			Ref("reviews").
			Field("entitlement_id").
			Required().
			Unique(),
	}
}

// Indexes of the Review. The partial unique index closes the
// check-then-insert race between concurrent generation passes: at most one
// PENDING review may exist per (principal, entitlement) pair.
func (Review) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("principal_id", "entitlement_id").
			Annotations(entsql.IndexWhere("status = 'PENDING'")).
			Unique(),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}

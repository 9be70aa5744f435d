package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Entitlement is a grantable permission set (role/policy). Ingestion creates
// rows with the LOW default; the risk classifier is the only writer of
// risk_tier afterwards.
type Entitlement struct {
	ent.Schema
}

// Fields of the Entitlement.
func (Entitlement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("external identifier, e.g. a policy ARN"),
		field.String("display_name").
			NotEmpty(),
		field.Enum("risk_tier").
			Values("LOW", "MEDIUM", "HIGH").
			Default("LOW"),
	}
}

// Edges of the Entitlement.
func (Entitlement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("grants", Grant.Type),
		edge.To("reviews", Review.Type),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Principal is an identity (user or service) discovered from the identity
// provider. Rows are created by ingestion and never mutated or deleted by the
// engine.
type Principal struct {
	ent.Schema
}

// Fields of the Principal.
func (Principal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("stable opaque identifier assigned by the identity provider"),
		field.String("display_name").
			NotEmpty(),
		field.String("reference").
			NotEmpty().
			Comment("external reference, e.g. an ARN"),
		field.Time("discovered_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Principal.
func (Principal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("grants", Grant.Type),
		edge.To("reviews", Review.Type),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Grant records that a principal currently holds an entitlement, as last
// observed by ingestion. Duplicate observations are no-ops, enforced by the
// unique (principal_id, entitlement_id) index.
type Grant struct {
	ent.Schema
}

// Fields of the Grant.
func (Grant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("principal_id").
			NotEmpty(),
		field.String("entitlement_id").
			NotEmpty(),
		field.Time("discovered_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Grant.
func (Grant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("principal", Principal.Type).
			Ref("grants").
			Field("principal_id").
			Required().
			Unique(),
		edge.From("entitlement", Entitlement.Type).
			Ref("grants").
			Field("entitlement_id").
			Required().
			Unique(),
	}
}

// Indexes of the Grant.
func (Grant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("principal_id", "entitlement_id").
			Unique(),
	}
}

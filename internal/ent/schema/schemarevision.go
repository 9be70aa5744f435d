package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SchemaRevision is the single-row marker recording which logical schema
// revision the store carries. It is written by migrations and consulted at
// startup.
type SchemaRevision struct {
	ent.Schema
}

// Fields of the SchemaRevision.
func (SchemaRevision) Fields() []ent.Field {
	return []ent.Field{
		field.String("version").
			NotEmpty().
			Unique(),
		field.Time("applied_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

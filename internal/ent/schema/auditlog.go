package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AuditLog stores immutable governance events. Entries are append-only; no
// update or delete path exists anywhere in the engine.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("level").
			Default("INFO").
			Immutable(),
		field.String("action").
			NotEmpty().
			Immutable(),
		field.String("status").
			NotEmpty().
			Immutable(),
		field.String("message").
			Immutable(),
		field.String("entity_type").
			Optional().
			Immutable(),
		field.String("entity_id").
			Optional().
			Immutable(),
		field.JSON("details", map[string]any{}).
			Optional().
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("action"),
	}
}

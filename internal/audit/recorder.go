package audit

import (
	"context"

	"github.com/Prachet0806/iam-access-certification-engine/internal/ent"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent/auditlog"
	"go.uber.org/zap"
)

// Levels accepted on audit entries.
const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Entry represents a structured governance event.
type Entry struct {
	Level      string
	Action     string
	Status     string
	Message    string
	EntityType string
	EntityID   string
	Details    map[string]any
}

// Recorder appends immutable audit entries to the store. Sink failures are
// reported on the fallback log channel and never surfaced to callers; the
// evidentiary record must not be able to break governance flows.
type Recorder struct {
	client *ent.Client
	logger *zap.Logger
}

// New constructs a Recorder.
func New(client *ent.Client, logger *zap.Logger) *Recorder {
	return &Recorder{client: client, logger: logger}
}

// Record persists one audit entry.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	if entry.Action == "" {
		return
	}
	if entry.Level == "" {
		entry.Level = LevelInfo
	}

	builder := r.client.AuditLog.Create().
		SetLevel(entry.Level).
		SetAction(entry.Action).
		SetStatus(entry.Status).
		SetMessage(entry.Message)

	if entry.EntityType != "" {
		builder.SetEntityType(entry.EntityType)
	}
	if entry.EntityID != "" {
		builder.SetEntityID(entry.EntityID)
	}
	if entry.Details != nil {
		builder.SetDetails(entry.Details)
	}

	if err := builder.Exec(ctx); err != nil {
		r.logger.Warn("failed to persist audit entry",
			zap.String("action", entry.Action),
			zap.String("status", entry.Status),
			zap.Error(err),
		)
		return
	}

	r.logger.Debug("audit entry recorded",
		zap.String("action", entry.Action),
		zap.String("status", entry.Status),
		zap.String("message", entry.Message),
	)
}

// ListRecent retrieves the most recent entries for the operator API.
func (r *Recorder) ListRecent(ctx context.Context, limit int) ([]*ent.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.client.AuditLog.
		Query().
		Order(ent.Desc(auditlog.FieldTimestamp)).
		Limit(limit).
		All(ctx)
}

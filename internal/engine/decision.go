package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/Prachet0806/iam-access-certification-engine/internal/audit"
	entreview "github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/google/uuid"
)

// Decision is a reviewer's verdict on a pending review.
type Decision string

// Legal decision values.
const (
	DecisionApproved Decision = "APPROVED"
	DecisionRevoked  Decision = "REVOKED"
)

// DecideInput carries one decision event.
type DecideInput struct {
	ReviewID  uuid.UUID
	Decision  Decision
	Comment   string
	DecidedBy string
}

// Decide transitions a PENDING review to APPROVED or REVOKED, exactly once.
// The engine never chooses outcomes; it only enforces that the transition is
// legal and timestamps it. A decision against a non-PENDING review is
// rejected with ErrInvalidTransition, never silently ignored.
func (e *Engine) Decide(ctx context.Context, input DecideInput) error {
	var target entreview.Status
	switch input.Decision {
	case DecisionApproved:
		target = entreview.StatusAPPROVED
	case DecisionRevoked:
		target = entreview.StatusREVOKED
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidDecision, input.Decision)
	}

	// Conditional update: the WHERE clause makes check and transition one
	// atomic statement, so two racing decisions cannot both win.
	builder := e.client.Review.Update().
		Where(
			entreview.ID(input.ReviewID),
			entreview.StatusEQ(entreview.StatusPENDING),
		).
		SetStatus(target).
		SetDecidedAt(time.Now().UTC())
	if input.Comment != "" {
		builder.SetDecisionComment(input.Comment)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("record decision: %w", err)
	}
	if n == 0 {
		existing, err := e.client.Review.Query().
			Where(entreview.ID(input.ReviewID)).
			Only(ctx)
		if err != nil {
			return ErrReviewNotFound
		}
		return fmt.Errorf("%w: review %s is %s", ErrInvalidTransition, input.ReviewID, existing.Status)
	}

	e.metrics.DecisionsRecorded.Inc()
	e.auditor.Record(ctx, audit.Entry{
		Action:     "review_decision",
		Status:     "success",
		Message:    fmt.Sprintf("Review transitioned to %s", target),
		EntityType: "access_review",
		EntityID:   input.ReviewID.String(),
		Details: map[string]any{
			"decision":   string(input.Decision),
			"comment":    input.Comment,
			"decided_by": input.DecidedBy,
		},
	})
	return nil
}

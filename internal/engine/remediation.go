package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/Prachet0806/iam-access-certification-engine/internal/audit"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent"
	entreview "github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const planPreviewLimit = 10

// RemediationSummary reports the outcome of one remediation scan.
type RemediationSummary struct {
	Candidates int
	Executed   int // live revoke calls that succeeded
	Skipped    int // finalized without a live call (gate, dry-run, disabled)
	Failed     int // revoke errors; left eligible for retry
	LiveMode   bool
}

// RemediationScan walks all REVOKED reviews not yet remediated, oldest
// first, and applies the safety gate to each. A live revoke call happens
// only when dry-run is off AND remediation is enabled AND the policy allows
// the entitlement; every other combination is a logged no-op that still
// finalizes the review, which is what makes repeated scans idempotent. Only
// a failed revoke call leaves remediated_at unset so the review stays
// eligible for a retry pass.
func (e *Engine) RemediationScan(ctx context.Context) (*RemediationSummary, error) {
	live := e.policy.LiveMode()

	e.auditor.Record(ctx, auditEntry("remediate_access", "start",
		"Starting access remediation scan",
		map[string]any{
			"dry_run":             e.policy.DryRun,
			"remediation_enabled": e.policy.Enabled,
		}))

	candidates, err := e.client.Review.Query().
		Where(
			entreview.StatusEQ(entreview.StatusREVOKED),
			entreview.RemediatedAtIsNil(),
		).
		WithPrincipal().
		WithEntitlement().
		Order(ent.Asc(entreview.FieldCreatedAt), ent.Asc(entreview.FieldID)).
		All(ctx)
	if err != nil {
		e.auditor.Record(ctx, auditError("remediate_access",
			fmt.Sprintf("Listing revocations failed: %v", err), "", ""))
		return nil, fmt.Errorf("list revocations: %w", err)
	}

	summary := &RemediationSummary{Candidates: len(candidates), LiveMode: live}

	if !live {
		preview := make([]map[string]any, 0, planPreviewLimit)
		for i, r := range candidates {
			if i == planPreviewLimit {
				break
			}
			preview = append(preview, map[string]any{
				"review_id":      r.ID.String(),
				"principal_id":   r.PrincipalID,
				"entitlement_id": r.EntitlementID,
			})
		}
		e.auditor.Record(ctx, auditEntry("remediate_access", "plan",
			"Preflight only; no detachments will be executed",
			map[string]any{
				"total_pending": len(candidates),
				"preview":       preview,
			}))
	}

	for _, review := range candidates {
		principal, entitlement := review.Edges.Principal, review.Edges.Entitlement
		if principal == nil || entitlement == nil {
			e.auditor.Record(ctx, auditError("remediate_access",
				"Review references a missing principal or entitlement",
				"access_review", review.ID.String()))
			summary.Failed++
			continue
		}

		e.auditor.Record(ctx, audit.Entry{
			Action:     "remediate_access",
			Status:     "processing",
			Message:    fmt.Sprintf("Processing revocation: %s -> %s", principal.DisplayName, entitlement.DisplayName),
			EntityType: "access_review",
			EntityID:   review.ID.String(),
			Details: map[string]any{
				"principal_name":   principal.DisplayName,
				"entitlement_name": entitlement.DisplayName,
			},
		})

		// Denylist first, unconditionally; allowlist can never override it.
		allowed, reason := e.policy.ShouldAct(entitlement.DisplayName)

		switch {
		case !allowed:
			e.auditor.Record(ctx, audit.Entry{
				Action:     "remediate_access",
				Status:     "skip",
				Message:    reason,
				EntityType: "access_review",
				EntityID:   review.ID.String(),
			})
			e.finalize(ctx, review.ID, summary)

		case !live:
			e.auditor.Record(ctx, audit.Entry{
				Action:     "remediate_access",
				Status:     "dry_run",
				Message:    fmt.Sprintf("Would detach %s from %s", entitlement.DisplayName, principal.DisplayName),
				EntityType: "access_review",
				EntityID:   review.ID.String(),
			})
			e.finalize(ctx, review.ID, summary)

		default:
			if err := e.revoker.Revoke(ctx, principal.Reference, entitlement.ID); err != nil {
				// Leave remediated_at unset: the review stays eligible for
				// the next scan. One failure never aborts the batch.
				e.logger.Error("revoke call failed",
					zap.String("review_id", review.ID.String()),
					zap.String("principal", principal.DisplayName),
					zap.Error(err),
				)
				e.auditor.Record(ctx, auditError("remediate_access",
					fmt.Sprintf("Remediation failed for %s: %v", principal.DisplayName, err),
					"access_review", review.ID.String()))
				e.metrics.RemediationsFailed.Inc()
				summary.Failed++
				continue
			}

			e.auditor.Record(ctx, audit.Entry{
				Action:     "remediate_access",
				Status:     "success",
				Message:    "Entitlement detached",
				EntityType: "access_review",
				EntityID:   review.ID.String(),
			})
			if e.finalizeOnce(ctx, review.ID) {
				e.metrics.RemediationsExecuted.Inc()
				summary.Executed++
			}
		}
	}

	e.auditor.Record(ctx, auditEntry("remediate_access", "complete",
		fmt.Sprintf("Remediation complete; processed %d access revocations", summary.Executed+summary.Skipped),
		map[string]any{
			"executed": summary.Executed,
			"skipped":  summary.Skipped,
			"failed":   summary.Failed,
			"dry_run":  e.policy.DryRun,
		}))
	return summary, nil
}

// finalize marks a review processed in a no-op path and counts it skipped.
func (e *Engine) finalize(ctx context.Context, reviewID uuid.UUID, summary *RemediationSummary) {
	if e.finalizeOnce(ctx, reviewID) {
		e.metrics.RemediationsSkipped.Inc()
		summary.Skipped++
	}
}

// finalizeOnce sets remediated_at if and only if it is still unset. The
// conditional update makes finalization idempotent under concurrent scans.
func (e *Engine) finalizeOnce(ctx context.Context, reviewID uuid.UUID) bool {
	n, err := e.client.Review.Update().
		Where(
			entreview.ID(reviewID),
			entreview.RemediatedAtIsNil(),
		).
		SetRemediatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		e.logger.Error("failed to finalize review", zap.String("review_id", reviewID.String()), zap.Error(err))
		e.auditor.Record(ctx, auditError("remediate_access",
			fmt.Sprintf("Failed to mark review remediated: %v", err),
			"access_review", reviewID.String()))
		return false
	}
	return n > 0
}

package engine

import (
	"context"
	"fmt"

	"github.com/Prachet0806/iam-access-certification-engine/internal/audit"
	ententitlement "github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	entreview "github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/Prachet0806/iam-access-certification-engine/internal/explain"
	"go.uber.org/zap"
)

// FallbackExplanation is stored when the explanation API is unreachable or
// returns an unusable answer. Enrichment must never block the review flow.
const FallbackExplanation = "High-risk access detected based on policy and role mismatch. Manual review recommended."

// ExplainHighRisk attaches a one-sentence risk explanation to every review of
// a HIGH-tier entitlement that has none yet. Explanations are advisory text
// only; they never influence classification, gating, or decisions. With no
// explainer configured the pass records that it is disabled and returns.
func (e *Engine) ExplainHighRisk(ctx context.Context) (*Report, error) {
	report := &Report{Pass: "explain_risk"}

	if e.explainer == nil {
		e.auditor.Record(ctx, auditEntry("explain_risk", "disabled",
			"Explanation enrichment is not configured; skipping", nil))
		return report, nil
	}

	e.auditor.Record(ctx, auditEntry("explain_risk", "start",
		"Starting high-risk explanation enrichment", nil))

	reviews, err := e.client.Review.Query().
		Where(
			entreview.HasEntitlementWith(ententitlement.RiskTierEQ(ententitlement.RiskTierHIGH)),
			entreview.Or(
				entreview.RiskExplanationIsNil(),
				entreview.RiskExplanationEQ(""),
			),
		).
		WithPrincipal().
		WithEntitlement().
		All(ctx)
	if err != nil {
		e.auditor.Record(ctx, auditError("explain_risk",
			fmt.Sprintf("Listing high-risk reviews failed: %v", err), "", ""))
		return report, fmt.Errorf("list high-risk reviews: %w", err)
	}

	for _, review := range reviews {
		principal, entitlement := review.Edges.Principal, review.Edges.Entitlement
		if principal == nil || entitlement == nil {
			report.add(review.ID.String(), ItemFailed, "missing principal or entitlement")
			continue
		}

		text, err := e.explainer.Explain(ctx,
			explain.PrincipalContext{ID: principal.ID, Name: principal.DisplayName},
			explain.EntitlementContext{
				ID:       entitlement.ID,
				Name:     entitlement.DisplayName,
				RiskTier: string(entitlement.RiskTier),
			},
		)
		if err != nil {
			e.logger.Warn("explanation api failed; storing fallback",
				zap.String("review_id", review.ID.String()),
				zap.Error(err),
			)
			text = FallbackExplanation
		}

		if err := e.client.Review.UpdateOne(review).SetRiskExplanation(text).Exec(ctx); err != nil {
			e.auditor.Record(ctx, auditError("explain_risk",
				fmt.Sprintf("Failed to store explanation: %v", err),
				"access_review", review.ID.String()))
			report.add(review.ID.String(), ItemFailed, err.Error())
			continue
		}

		e.metrics.ExplanationsGenerated.Inc()
		e.auditor.Record(ctx, audit.Entry{
			Action:     "explain_risk",
			Status:     "success",
			Message:    fmt.Sprintf("Explanation recorded for %s -> %s", principal.DisplayName, entitlement.DisplayName),
			EntityType: "access_review",
			EntityID:   review.ID.String(),
		})
		report.add(review.ID.String(), ItemSucceeded, "")
	}

	e.auditor.Record(ctx, auditEntry("explain_risk", "complete",
		fmt.Sprintf("Explanation enrichment complete; %d reviews annotated", report.Succeeded()),
		map[string]any{"reviews_annotated": report.Succeeded(), "failed": report.Failed}))
	return report, nil
}

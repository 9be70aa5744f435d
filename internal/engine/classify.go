package engine

import (
	"context"
	"fmt"

	"github.com/Prachet0806/iam-access-certification-engine/internal/audit"
	ententitlement "github.com/Prachet0806/iam-access-certification-engine/internal/ent/entitlement"
	"github.com/Prachet0806/iam-access-certification-engine/internal/risk"
	"go.uber.org/zap"
)

// ReclassifyAll re-evaluates every stored entitlement against the risk rules
// and updates risk_tier only where the deterministic output differs. The
// pass touches entitlements exclusively, never grants or reviews, so it is
// safe to run concurrently with campaign generation.
func (e *Engine) ReclassifyAll(ctx context.Context) (*Report, error) {
	report := &Report{Pass: "evaluate_risk"}

	e.auditor.Record(ctx, auditEntry("evaluate_risk", "start",
		"Starting entitlement risk evaluation", nil))

	entitlements, err := e.client.Entitlement.Query().All(ctx)
	if err != nil {
		e.auditor.Record(ctx, auditError("evaluate_risk",
			fmt.Sprintf("Listing entitlements failed: %v", err), "", ""))
		return report, fmt.Errorf("list entitlements: %w", err)
	}

	for _, ement := range entitlements {
		newTier := ententitlement.RiskTier(risk.Classify(ement.DisplayName))
		if newTier == ement.RiskTier {
			report.add(ement.ID, ItemSkipped, "unchanged")
			continue
		}

		err := e.client.Entitlement.UpdateOne(ement).SetRiskTier(newTier).Exec(ctx)
		if err != nil {
			e.logger.Error("failed to update risk tier",
				zap.String("entitlement_id", ement.ID),
				zap.Error(err),
			)
			e.auditor.Record(ctx, auditError("evaluate_risk",
				fmt.Sprintf("Error evaluating entitlement %s: %v", ement.DisplayName, err),
				"entitlement", ement.ID))
			report.add(ement.ID, ItemFailed, err.Error())
			continue
		}

		e.metrics.Reclassifications.Inc()
		e.auditor.Record(ctx, audit.Entry{
			Action:     "evaluate_risk",
			Status:     "reclassified",
			Message:    fmt.Sprintf("%s classified as %s", ement.DisplayName, newTier),
			EntityType: "entitlement",
			EntityID:   ement.ID,
			Details: map[string]any{
				"old_risk": string(ement.RiskTier),
				"new_risk": string(newTier),
			},
		})
		report.add(ement.ID, ItemSucceeded, "")
	}

	e.auditor.Record(ctx, auditEntry("evaluate_risk", "success",
		fmt.Sprintf("Risk evaluation complete; %d entitlements updated", report.Succeeded()),
		map[string]any{"entitlements_updated": report.Succeeded()}))
	return report, nil
}

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

// CampaignSummary reports the outcome of one generation pass.
type CampaignSummary struct {
	CampaignID     uuid.UUID
	CampaignName   string
	ReviewsCreated int
	Skipped        int
	Failed         int
}

// GenerateCampaign snapshots the current grants into a new review campaign,
// creating one PENDING review per grant that has none. The pass is safe to
// invoke on any schedule: the PENDING-deduplication check (backed by the
// partial unique index for the concurrent case) guarantees repeated runs
// never produce duplicate open reviews, and a failure on one grant is logged
// and skipped without aborting the campaign.
func (e *Engine) GenerateCampaign(ctx context.Context) (*CampaignSummary, error) {
	e.auditor.Record(ctx, auditEntry("generate_campaign", "start",
		"Starting access certification campaign generation", nil))

	name := fmt.Sprintf("Access Campaign %s", time.Now().UTC().Format("2006-01-02 15:04:05"))
	campaign, err := e.client.Campaign.Create().SetName(name).Save(ctx)
	if err != nil {
		e.auditor.Record(ctx, auditError("generate_campaign",
			fmt.Sprintf("Creating campaign failed: %v", err), "", ""))
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	grants, err := e.client.Grant.Query().All(ctx)
	if err != nil {
		e.auditor.Record(ctx, auditError("generate_campaign",
			fmt.Sprintf("Listing grants failed: %v", err), "campaign", campaign.ID.String()))
		return nil, fmt.Errorf("list grants: %w", err)
	}

	summary := &CampaignSummary{CampaignID: campaign.ID, CampaignName: name}

	for _, grant := range grants {
		pending, err := e.client.Review.Query().
			Where(
				entreview.PrincipalID(grant.PrincipalID),
				entreview.EntitlementID(grant.EntitlementID),
				entreview.StatusEQ(entreview.StatusPENDING),
			).
			Exist(ctx)
		if err != nil {
			e.logger.Error("failed to check pending reviews",
				zap.String("principal_id", grant.PrincipalID),
				zap.String("entitlement_id", grant.EntitlementID),
				zap.Error(err),
			)
			summary.Failed++
			continue
		}
		if pending {
			summary.Skipped++
			continue
		}

		err = e.client.Review.Create().
			SetCampaignID(campaign.ID).
			SetPrincipalID(grant.PrincipalID).
			SetEntitlementID(grant.EntitlementID).
			Exec(ctx)
		switch {
		case ent.IsConstraintError(err):
			// A concurrent generation pass created the pending review
			// between our check and insert; the index held the invariant.
			summary.Skipped++
			continue
		case err != nil:
			e.logger.Error("failed to create review",
				zap.String("principal_id", grant.PrincipalID),
				zap.String("entitlement_id", grant.EntitlementID),
				zap.Error(err),
			)
			e.auditor.Record(ctx, auditError("generate_campaign",
				fmt.Sprintf("Error creating review for grant %s->%s: %v",
					grant.PrincipalID, grant.EntitlementID, err),
				"grant", grant.ID.String()))
			summary.Failed++
			continue
		}

		e.metrics.ReviewsCreated.Inc()
		summary.ReviewsCreated++
	}

	e.auditor.Record(ctx, audit.Entry{
		Action:     "generate_campaign",
		Status:     "success",
		Message:    fmt.Sprintf("Campaign created with %d review tasks", summary.ReviewsCreated),
		EntityType: "campaign",
		EntityID:   campaign.ID.String(),
		Details: map[string]any{
			"campaign_id":     campaign.ID.String(),
			"reviews_created": summary.ReviewsCreated,
			"skipped":         summary.Skipped,
			"failed":          summary.Failed,
		},
	})
	return summary, nil
}

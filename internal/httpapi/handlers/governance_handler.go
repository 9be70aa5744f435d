package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Prachet0806/iam-access-certification-engine/internal/audit"
	"github.com/Prachet0806/iam-access-certification-engine/internal/engine"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent"
	entcampaign "github.com/Prachet0806/iam-access-certification-engine/internal/ent/campaign"
	entreview "github.com/Prachet0806/iam-access-certification-engine/internal/ent/review"
	"github.com/Prachet0806/iam-access-certification-engine/internal/httpapi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GovernanceHandler serves the reviewer-facing API: listing reviews and
// campaigns, recording decisions, and reading the audit trail.
type GovernanceHandler struct {
	client  *ent.Client
	engine  *engine.Engine
	auditor *audit.Recorder
	logger  *zap.Logger
}

// NewGovernanceHandler creates a new instance.
func NewGovernanceHandler(client *ent.Client, eng *engine.Engine, auditor *audit.Recorder, logger *zap.Logger) *GovernanceHandler {
	return &GovernanceHandler{client: client, engine: eng, auditor: auditor, logger: logger}
}

type reviewResponse struct {
	ID              string     `json:"id"`
	CampaignID      string     `json:"campaign_id"`
	PrincipalID     string     `json:"principal_id"`
	PrincipalName   string     `json:"principal_name,omitempty"`
	EntitlementID   string     `json:"entitlement_id"`
	EntitlementName string     `json:"entitlement_name,omitempty"`
	RiskTier        string     `json:"risk_tier,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	DecisionComment *string    `json:"decision_comment,omitempty"`
	RemediatedAt    *time.Time `json:"remediated_at,omitempty"`
	RiskExplanation *string    `json:"risk_explanation,omitempty"`
}

func toReviewResponse(r *ent.Review) reviewResponse {
	resp := reviewResponse{
		ID:              r.ID.String(),
		CampaignID:      r.CampaignID.String(),
		PrincipalID:     r.PrincipalID,
		EntitlementID:   r.EntitlementID,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		DecidedAt:       r.DecidedAt,
		DecisionComment: r.DecisionComment,
		RemediatedAt:    r.RemediatedAt,
		RiskExplanation: r.RiskExplanation,
	}
	if p := r.Edges.Principal; p != nil {
		resp.PrincipalName = p.DisplayName
	}
	if e := r.Edges.Entitlement; e != nil {
		resp.EntitlementName = e.DisplayName
		resp.RiskTier = string(e.RiskTier)
	}
	return resp
}

// ListReviews returns reviews, optionally filtered by status.
func (h *GovernanceHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	query := h.client.Review.Query().
		WithPrincipal().
		WithEntitlement().
		Order(ent.Desc(entreview.FieldCreatedAt)).
		Limit(queryLimit(r, 100, 500))

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := entreview.Status(raw)
		if err := entreview.StatusValidator(status); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_status", "status must be PENDING, APPROVED, or REVOKED", nil)
			return
		}
		query.Where(entreview.StatusEQ(status))
	}

	reviews, err := query.All(r.Context())
	if err != nil {
		h.logger.Error("failed to list reviews", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal", "failed to list reviews", nil)
		return
	}

	out := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}
	writeJSON(w, http.StatusOK, map[string]any{"reviews": out, "count": len(out)})
}

type decisionRequest struct {
	Decision string `json:"decision"`
	Comment  string `json:"comment,omitempty"`
}

// Decide records an APPROVED or REVOKED verdict on a pending review.
func (h *GovernanceHandler) Decide(w http.ResponseWriter, r *http.Request) {
	reviewID, err := uuid.Parse(chi.URLParam(r, "reviewID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "review id must be a UUID", nil)
		return
	}

	var req decisionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "invalid request body", nil)
		return
	}

	decidedBy := ""
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		decidedBy = claims.Subject
		if claims.Email != "" {
			decidedBy = claims.Email
		}
	}

	err = h.engine.Decide(r.Context(), engine.DecideInput{
		ReviewID:  reviewID,
		Decision:  engine.Decision(req.Decision),
		Comment:   req.Comment,
		DecidedBy: decidedBy,
	})
	switch {
	case errors.Is(err, engine.ErrInvalidDecision):
		writeError(w, http.StatusBadRequest, "invalid_decision", err.Error(), nil)
	case errors.Is(err, engine.ErrReviewNotFound):
		writeError(w, http.StatusNotFound, "not_found", "review not found", nil)
	case errors.Is(err, engine.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "already_decided", err.Error(), nil)
	case err != nil:
		h.logger.Error("failed to record decision", zap.String("review_id", reviewID.String()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal", "failed to record decision", nil)
	default:
		review, err := h.client.Review.Query().
			Where(entreview.ID(reviewID)).
			WithPrincipal().
			WithEntitlement().
			Only(r.Context())
		if err != nil {
			writeJSON(w, http.StatusOK, map[string]any{"id": reviewID.String(), "status": req.Decision})
			return
		}
		writeJSON(w, http.StatusOK, toReviewResponse(review))
	}
}

type campaignResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Reviews   int       `json:"reviews"`
}

// ListCampaigns returns campaigns newest first with their review counts.
func (h *GovernanceHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.client.Campaign.Query().
		Order(ent.Desc(entcampaign.FieldCreatedAt)).
		Limit(queryLimit(r, 50, 200)).
		All(r.Context())
	if err != nil {
		h.logger.Error("failed to list campaigns", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal", "failed to list campaigns", nil)
		return
	}

	out := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		count, err := h.client.Review.Query().
			Where(entreview.CampaignID(c.ID)).
			Count(r.Context())
		if err != nil {
			h.logger.Error("failed to count reviews", zap.String("campaign_id", c.ID.String()), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal", "failed to list campaigns", nil)
			return
		}
		out = append(out, campaignResponse{
			ID:        c.ID.String(),
			Name:      c.Name,
			CreatedAt: c.CreatedAt,
			Reviews:   count,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaigns": out, "count": len(out)})
}

// ListAudit returns the most recent audit entries.
func (h *GovernanceHandler) ListAudit(w http.ResponseWriter, r *http.Request) {
	entries, err := h.auditor.ListRecent(r.Context(), queryLimit(r, 50, 500))
	if err != nil {
		h.logger.Error("failed to list audit entries", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal", "failed to list audit entries", nil)
		return
	}

	out := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		item := map[string]any{
			"id":        entry.ID.String(),
			"timestamp": entry.Timestamp,
			"level":     entry.Level,
			"action":    entry.Action,
			"status":    entry.Status,
			"message":   entry.Message,
		}
		if entry.EntityType != "" {
			item["entity_type"] = entry.EntityType
		}
		if entry.EntityID != "" {
			item["entity_id"] = entry.EntityID
		}
		if entry.Details != nil {
			item["details"] = entry.Details
		}
		out = append(out, item)
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": out, "count": len(out)})
}

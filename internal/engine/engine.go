// Package engine implements the governance passes: discovery sync, risk
// reclassification, campaign generation, the review state machine, the
// remediation gate and executor, and high-risk explanation enrichment.
//
// Each pass is an independently schedulable batch that runs to completion or
// partial completion. Per-item failures become report rows, never aborts;
// every mutation is individually transactional, so a pass killed mid-way
// leaves the store valid and the next run picks up safely.
package engine

import (
	"errors"

	"github.com/Prachet0806/iam-access-certification-engine/internal/audit"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent"
	"github.com/Prachet0806/iam-access-certification-engine/internal/explain"
	"github.com/Prachet0806/iam-access-certification-engine/internal/identity"
	"github.com/Prachet0806/iam-access-certification-engine/internal/metrics"
	"github.com/Prachet0806/iam-access-certification-engine/internal/policy"
	"github.com/Prachet0806/iam-access-certification-engine/internal/revoke"
	"go.uber.org/zap"
)

var (
	// ErrReviewNotFound returned when a decision references an unknown review.
	ErrReviewNotFound = errors.New("review not found")
	// ErrInvalidTransition returned when a decision targets a non-PENDING review.
	ErrInvalidTransition = errors.New("review is not pending; decision already recorded")
	// ErrInvalidDecision returned for decision values outside APPROVED/REVOKED.
	ErrInvalidDecision = errors.New("decision must be APPROVED or REVOKED")
)

// ItemStatus classifies the outcome of one unit inside a batch pass.
type ItemStatus string

// Item outcomes.
const (
	ItemSucceeded ItemStatus = "succeeded"
	ItemSkipped   ItemStatus = "skipped"
	ItemFailed    ItemStatus = "failed"
)

// ItemResult is one row of a batch report.
type ItemResult struct {
	EntityID string
	Status   ItemStatus
	Reason   string
}

// Report summarises a batch pass.
type Report struct {
	Pass    string
	Items   []ItemResult
	Skipped int
	Failed  int
}

func (r *Report) add(id string, status ItemStatus, reason string) {
	r.Items = append(r.Items, ItemResult{EntityID: id, Status: status, Reason: reason})
	switch status {
	case ItemSkipped:
		r.Skipped++
	case ItemFailed:
		r.Failed++
	}
}

// Succeeded counts items that completed.
func (r *Report) Succeeded() int {
	return len(r.Items) - r.Skipped - r.Failed
}

// Engine runs the governance passes against a shared store.
type Engine struct {
	client    *ent.Client
	auditor   *audit.Recorder
	logger    *zap.Logger
	metrics   *metrics.Metrics
	source    identity.Source
	revoker   revoke.Revoker
	explainer explain.Explainer
	policy    policy.Remediation
}

// Dependencies aggregates constructor inputs. Source, Revoker, and Explainer
// are the pluggable external boundaries; Explainer may be nil (explanation
// passes then degrade to the canned fallback via the disabled path).
type Dependencies struct {
	Client    *ent.Client
	Auditor   *audit.Recorder
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	Source    identity.Source
	Revoker   revoke.Revoker
	Explainer explain.Explainer
	Policy    policy.Remediation
}

// New initialises the engine.
func New(deps Dependencies) *Engine {
	return &Engine{
		client:    deps.Client,
		auditor:   deps.Auditor,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		source:    deps.Source,
		revoker:   deps.Revoker,
		explainer: deps.Explainer,
		policy:    deps.Policy,
	}
}

// Policy returns the remediation policy the engine was wired with.
func (e *Engine) Policy() policy.Remediation { return e.policy }

func auditEntry(action, status, message string, details map[string]any) audit.Entry {
	return audit.Entry{
		Action:  action,
		Status:  status,
		Message: message,
		Details: details,
	}
}

func auditError(action, message, entityType, entityID string) audit.Entry {
	return audit.Entry{
		Level:      audit.LevelError,
		Action:     action,
		Status:     "error",
		Message:    message,
		EntityType: entityType,
		EntityID:   entityID,
	}
}

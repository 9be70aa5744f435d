// Package metrics exposes Prometheus instruments for the governance passes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's counters. Construct one per process with the
// registry the /metrics endpoint serves; tests pass their own registry.
type Metrics struct {
	PrincipalsDiscovered  prometheus.Counter
	Reclassifications     prometheus.Counter
	ReviewsCreated        prometheus.Counter
	DecisionsRecorded     prometheus.Counter
	RemediationsExecuted  prometheus.Counter
	RemediationsSkipped   prometheus.Counter
	RemediationsFailed    prometheus.Counter
	ExplanationsGenerated prometheus.Counter
	ExportsBuilt          prometheus.Counter
}

// New registers and returns the engine counters.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PrincipalsDiscovered: factory.NewCounter(prometheus.CounterOpts{
			Name: "governor_principals_discovered_total",
			Help: "Principals processed by discovery passes.",
		}),
		Reclassifications: factory.NewCounter(prometheus.CounterOpts{
			Name: "governor_entitlement_reclassifications_total",
			Help: "Entitlements whose risk tier changed during classification passes.",
		}),
		ReviewsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "governor_reviews_created_total",
			Help: "Pending reviews created by campaign generation.",
		}),
		DecisionsRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "governor_decisions_recorded_total",
			Help: "Review decisions accepted by the state machine.",
		}),
		RemediationsExecuted: factory.NewCounter(prometheus.CounterOpts{
			Name: "governor_remediations_executed_total",
			Help: "Live revoke calls completed successfully.",
		}),
		RemediationsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "governor_remediations_skipped_total",
			Help: "Remediation candidates finalized without a live revoke call.",
		}),
		RemediationsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "governor_remediations_failed_total",
			Help: "Revoke calls that failed and were left eligible for retry.",
		}),
		ExplanationsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "governor_explanations_generated_total",
			Help: "Risk explanations stored, including canned fallbacks.",
		}),
		ExportsBuilt: factory.NewCounter(prometheus.CounterOpts{
			Name: "governor_exports_built_total",
			Help: "Compliance export artifacts built successfully.",
		}),
	}
}

package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterDeps defines router construction dependencies.
type RouterDeps struct {
	HealthHandler      http.HandlerFunc
	Governance         GovernanceHandlers
	RequireAuthHandler func(http.Handler) http.Handler
	RequireDecideScope func(http.Handler) http.Handler
	RateLimitDecision  func(http.Handler) http.Handler
	MetricsHandler     http.Handler
}

// GovernanceHandlers groups the HTTP handlers for governance routes.
type GovernanceHandlers struct {
	ListReviews   http.HandlerFunc
	Decide        http.HandlerFunc
	ListCampaigns http.HandlerFunc
	ListAudit     http.HandlerFunc
}

// NewRouter wires HTTP routes. The decision route is only mounted when an
// auth middleware exists: without reviewer tokens there is no accountable
// identity to attribute decisions to.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if deps.HealthHandler != nil {
		r.Get("/healthz", deps.HealthHandler)
	}
	if deps.MetricsHandler != nil {
		r.Method("GET", "/metrics", deps.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/reviews", deps.Governance.ListReviews)
		r.Get("/campaigns", deps.Governance.ListCampaigns)
		r.Get("/audit", deps.Governance.ListAudit)

		if deps.RequireAuthHandler != nil {
			r.Group(func(r chi.Router) {
				r.Use(deps.RequireAuthHandler)
				if deps.RequireDecideScope != nil {
					r.Use(deps.RequireDecideScope)
				}
				if deps.RateLimitDecision != nil {
					r.Use(deps.RateLimitDecision)
				}
				r.Post("/reviews/{reviewID}/decision", deps.Governance.Decide)
			})
		}
	})

	return r
}

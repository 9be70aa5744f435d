package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Prachet0806/iam-access-certification-engine/internal/audit"
	"github.com/Prachet0806/iam-access-certification-engine/internal/cache"
	"github.com/Prachet0806/iam-access-certification-engine/internal/config"
	"github.com/Prachet0806/iam-access-certification-engine/internal/database"
	"github.com/Prachet0806/iam-access-certification-engine/internal/engine"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent"
	"github.com/Prachet0806/iam-access-certification-engine/internal/explain"
	"github.com/Prachet0806/iam-access-certification-engine/internal/export"
	"github.com/Prachet0806/iam-access-certification-engine/internal/httpapi"
	"github.com/Prachet0806/iam-access-certification-engine/internal/httpapi/handlers"
	httpmiddleware "github.com/Prachet0806/iam-access-certification-engine/internal/httpapi/middleware"
	"github.com/Prachet0806/iam-access-certification-engine/internal/identity"
	"github.com/Prachet0806/iam-access-certification-engine/internal/metrics"
	"github.com/Prachet0806/iam-access-certification-engine/internal/policy"
	"github.com/Prachet0806/iam-access-certification-engine/internal/revoke"
	"github.com/Prachet0806/iam-access-certification-engine/internal/scheduler"
	"github.com/Prachet0806/iam-access-certification-engine/internal/token"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App wires core dependencies and exposes server lifecycle controls.
type App struct {
	cfg        *config.Config
	logger     *zap.Logger
	entClient  *ent.Client
	redis      *redis.Client
	engine     *engine.Engine
	exporter   *export.Builder
	scheduler  *scheduler.Scheduler
	httpServer *http.Server
}

// New constructs the application.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	entClient, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if cfg.Database.RunMigrations {
		if err := database.RunMigrations(ctx, entClient); err != nil {
			return nil, err
		}
	}
	if err := database.VerifyRevision(ctx, entClient); err != nil {
		return nil, err
	}

	redisClient, err := cache.New(cfg.Redis)
	if err != nil {
		return nil, err
	}

	auditor := audit.New(entClient, logger)
	registry := prometheus.NewRegistry()
	meters := metrics.New(registry)

	source, err := newSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pol := policy.NewRemediation(
		cfg.Remediation.DryRun,
		cfg.Remediation.Enabled,
		cfg.Remediation.Denylist,
		cfg.Remediation.Allowlist,
	)
	var revoker revoke.Revoker = revoke.Noop{}
	if pol.LiveMode() {
		awsRevoker, err := revoke.NewAWSRevoker(ctx, cfg.AWS.Region, cfg.Remediation.Timeout)
		if err != nil {
			// Live remediation without a working revoker must degrade to
			// disabled, loudly, instead of starting with a broken boundary.
			logger.Warn("live remediation requested but revoker unavailable; disabling", zap.Error(err))
			pol = pol.Disabled()
			auditor.Record(ctx, audit.Entry{
				Level:   audit.LevelWarn,
				Action:  "remediate_access",
				Status:  "degraded",
				Message: fmt.Sprintf("Remediation disabled: revoker unavailable (%v)", err),
			})
		} else {
			revoker = awsRevoker
		}
	}

	var explainer explain.Explainer
	if cfg.Explain.Enabled && cfg.Explain.APIKey != "" {
		explainer = explain.NewClient(cfg.Explain.BaseURL, cfg.Explain.APIKey, cfg.Explain.Model, cfg.Explain.Timeout)
	}

	eng := engine.New(engine.Dependencies{
		Client:    entClient,
		Auditor:   auditor,
		Logger:    logger,
		Metrics:   meters,
		Source:    source,
		Revoker:   revoker,
		Explainer: explainer,
		Policy:    pol,
	})

	var uploader export.Uploader
	if cfg.Export.S3Bucket != "" && !cfg.Export.LocalOnly {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config for export: %w", err)
		}
		uploader = export.NewS3Uploader(s3.NewFromConfig(awsCfg), cfg.Export.S3Bucket, cfg.Export.S3Prefix)
	}
	exporter := export.NewBuilder(entClient, auditor, logger, meters, cfg.Export.Dir, uploader)

	governanceHandler := handlers.NewGovernanceHandler(entClient, eng, auditor, logger)
	routerDeps := httpapi.RouterDeps{
		HealthHandler:  handlers.Health,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Governance: httpapi.GovernanceHandlers{
			ListReviews:   governanceHandler.ListReviews,
			Decide:        governanceHandler.Decide,
			ListCampaigns: governanceHandler.ListCampaigns,
			ListAudit:     governanceHandler.ListAudit,
		},
	}

	if cfg.Token.Secret != "" {
		tokenSvc, err := token.NewService(cfg.Token)
		if err != nil {
			return nil, err
		}
		authMiddleware := httpmiddleware.NewAuth(tokenSvc)
		rateLimiter := httpmiddleware.NewRateLimiter(redisClient, cfg.Redis.Namespace)
		routerDeps.RequireAuthHandler = authMiddleware.RequireAuth
		routerDeps.RequireDecideScope = authMiddleware.RequireScope(token.ScopeDecide)
		routerDeps.RateLimitDecision = rateLimiter.Limit("decision", 60, time.Minute, httpapi.ClientIP)
	} else {
		logger.Warn("no token secret configured; decision API disabled")
	}

	router := httpapi.NewRouter(routerDeps)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	sched := scheduler.New(cfg.Schedule, logger, scheduler.Jobs{
		Discover: func(ctx context.Context) error {
			_, err := eng.DiscoverySync(ctx)
			return err
		},
		Classify: func(ctx context.Context) error {
			_, err := eng.ReclassifyAll(ctx)
			return err
		},
		Generate: func(ctx context.Context) error {
			_, err := eng.GenerateCampaign(ctx)
			return err
		},
		Remediate: func(ctx context.Context) error {
			_, err := eng.RemediationScan(ctx)
			return err
		},
		Explain: func(ctx context.Context) error {
			_, err := eng.ExplainHighRisk(ctx)
			return err
		},
		Export: func(ctx context.Context) error {
			_, err := exporter.Build(ctx)
			return err
		},
	})

	return &App{
		cfg:        cfg,
		logger:     logger,
		entClient:  entClient,
		redis:      redisClient,
		engine:     eng,
		exporter:   exporter,
		scheduler:  sched,
		httpServer: server,
	}, nil
}

// Engine exposes the governance engine for one-shot CLI passes.
func (a *App) Engine() *engine.Engine { return a.engine }

// Exporter exposes the export builder for one-shot CLI passes.
func (a *App) Exporter() *export.Builder { return a.exporter }

// Run starts the scheduler and the HTTP server.
func (a *App) Run() error {
	a.scheduler.Start()
	a.logger.Info("starting HTTP server", zap.String("addr", a.httpServer.Addr))
	return a.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the scheduler and HTTP server and closes
// resources.
func (a *App) Shutdown(ctx context.Context) error {
	a.scheduler.Stop()
	shutdownErr := a.httpServer.Shutdown(ctx)

	if err := a.entClient.Close(); err != nil {
		a.logger.Warn("failed to close ent client", zap.Error(err))
		if shutdownErr == nil {
			shutdownErr = err
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis client", zap.Error(err))
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}
	return shutdownErr
}

func newSource(ctx context.Context, cfg *config.Config) (identity.Source, error) {
	switch cfg.Discovery.Source {
	case "static":
		return identity.NewStaticSource(), nil
	case "aws":
		return identity.NewAWSSource(ctx, cfg.AWS.Region, cfg.Discovery.Timeout)
	case "http":
		return identity.NewHTTPSource(cfg.Discovery), nil
	default:
		return nil, fmt.Errorf("unsupported discovery source %q", cfg.Discovery.Source)
	}
}

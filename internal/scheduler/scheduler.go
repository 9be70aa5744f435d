// Package scheduler runs governance passes on cron schedules. Every pass can
// also be triggered once from the CLI; scheduling is purely additive.
package scheduler

import (
	"context"
	"time"

	"github.com/Prachet0806/iam-access-certification-engine/internal/config"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one schedulable governance pass.
type Job func(ctx context.Context) error

// Jobs names the passes the scheduler can drive. Nil entries are skipped.
type Jobs struct {
	Discover  Job
	Classify  Job
	Generate  Job
	Remediate Job
	Explain   Job
	Export    Job
}

// Scheduler wraps a cron runner over the configured pass schedules.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// New registers every pass with a non-empty cron spec. A malformed spec is
// logged and skipped; one bad schedule must not prevent the service from
// starting.
func New(cfg config.ScheduleConfig, logger *zap.Logger, jobs Jobs) *Scheduler {
	s := &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}

	s.register("discover", cfg.Discover, jobs.Discover)
	s.register("classify", cfg.Classify, jobs.Classify)
	s.register("generate", cfg.Generate, jobs.Generate)
	s.register("remediate", cfg.Remediate, jobs.Remediate)
	s.register("explain", cfg.Explain, jobs.Explain)
	s.register("export", cfg.Export, jobs.Export)
	return s
}

func (s *Scheduler) register(name, spec string, job Job) {
	if spec == "" || job == nil {
		return
	}
	_, err := s.cron.AddFunc(spec, func() {
		start := time.Now()
		s.logger.Info("scheduled pass starting", zap.String("pass", name))
		if err := job(context.Background()); err != nil {
			s.logger.Error("scheduled pass failed",
				zap.String("pass", name),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		s.logger.Info("scheduled pass complete",
			zap.String("pass", name),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
	if err != nil {
		s.logger.Warn("invalid cron spec; pass not scheduled",
			zap.String("pass", name),
			zap.String("spec", spec),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("pass scheduled", zap.String("pass", name), zap.String("spec", spec))
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop halts scheduling and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

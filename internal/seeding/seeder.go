// Package seeding loads the built-in demo fixture through the discovery
// path, so seeded data obeys the same idempotence rules as live syncs.
package seeding

import (
	"context"
	"fmt"

	"github.com/Prachet0806/iam-access-certification-engine/internal/engine"
	"github.com/Prachet0806/iam-access-certification-engine/internal/identity"
	"go.uber.org/zap"
)

// SeedDefaults syncs the demo principals into the store. Safe to run
// repeatedly; existing rows are left untouched.
func SeedDefaults(ctx context.Context, eng *engine.Engine, logger *zap.Logger) error {
	report, err := eng.SyncFrom(ctx, identity.NewStaticSource())
	if err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}
	if report.Failed > 0 {
		return fmt.Errorf("seed defaults: %d principals failed", report.Failed)
	}
	logger.Info("seeded demo identities", zap.Int("principals", report.Succeeded()))
	return nil
}

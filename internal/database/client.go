package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/Prachet0806/iam-access-certification-engine/internal/config"
	"github.com/Prachet0806/iam-access-certification-engine/internal/ent"
	_ "github.com/jackc/pgx/v5/stdlib"  // register pgx driver
	_ "github.com/mattn/go-sqlite3"     // register sqlite3 driver
)

// Revision is the logical schema revision the engine expects to find in the
// store. Migrations write it; VerifyRevision consults it at startup.
const Revision = "2026-08-governance-v1"

// ErrRevisionMismatch indicates the store carries a different schema revision
// than this build expects. Run migrations before starting passes.
var ErrRevisionMismatch = errors.New("schema revision mismatch")

// NewClient initialises an Ent client backed by the configured relational
// engine.
func NewClient(ctx context.Context, cfg config.DatabaseConfig) (*ent.Client, error) {
	var driverName, dialectName string
	switch cfg.Driver {
	case "postgres":
		driverName, dialectName = "pgx", dialect.Postgres
	case "sqlite3":
		driverName, dialectName = "sqlite3", dialect.SQLite
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sql.Open(driverName, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open %s connection: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}

	drv := entsql.OpenDB(dialectName, db)
	return ent.NewClient(ent.Driver(drv)), nil
}

// RunMigrations executes Ent schema migrations and stamps the schema
// revision marker.
func RunMigrations(ctx context.Context, client *ent.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return stampRevision(ctx, client)
}

func stampRevision(ctx context.Context, client *ent.Client) error {
	existing, err := client.SchemaRevision.Query().First(ctx)
	switch {
	case ent.IsNotFound(err):
		if err := client.SchemaRevision.Create().SetVersion(Revision).Exec(ctx); err != nil {
			return fmt.Errorf("stamp schema revision: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read schema revision: %w", err)
	}
	if existing.Version == Revision {
		return nil
	}
	if err := client.SchemaRevision.UpdateOne(existing).SetVersion(Revision).Exec(ctx); err != nil {
		return fmt.Errorf("update schema revision: %w", err)
	}
	return nil
}

// VerifyRevision confirms the store carries the revision this build expects.
func VerifyRevision(ctx context.Context, client *ent.Client) error {
	existing, err := client.SchemaRevision.Query().First(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: store has no revision marker (run `governor migrate`)", ErrRevisionMismatch)
	}
	if err != nil {
		return fmt.Errorf("read schema revision: %w", err)
	}
	if existing.Version != Revision {
		return fmt.Errorf("%w: store has %q, engine expects %q", ErrRevisionMismatch, existing.Version, Revision)
	}
	return nil
}

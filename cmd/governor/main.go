package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Prachet0806/iam-access-certification-engine/internal/app"
	"github.com/Prachet0806/iam-access-certification-engine/internal/config"
	"github.com/Prachet0806/iam-access-certification-engine/internal/database"
	"github.com/Prachet0806/iam-access-certification-engine/internal/logger"
	"github.com/Prachet0806/iam-access-certification-engine/internal/seeding"
	"github.com/Prachet0806/iam-access-certification-engine/internal/token"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "governor",
		Short:         "IAM access certification engine",
		Long:          "Discovers identities, classifies entitlement risk, runs certification campaigns, and remediates revoked access behind a layered safety gate.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newServeCmd(),
		newRunCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newMintTokenCmd(),
	)
	return root
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	zapLogger, err := logger.New(cfg.App.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, zapLogger, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and pass scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, zapLogger, err := bootstrap()
			if err != nil {
				return err
			}
			defer zapLogger.Sync() //nolint:errcheck // best effort

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			application, err := app.New(ctx, cfg, zapLogger)
			if err != nil {
				zapLogger.Error("failed to bootstrap application", logger.ZapError(err))
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				zapLogger.Error("server encountered error", logger.ZapError(err))
				return err
			case <-sigCh:
				zapLogger.Info("shutdown signal received")
			}

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer shutdownCancel()

			if err := application.Shutdown(shutdownCtx); err != nil {
				zapLogger.Error("graceful shutdown failed", logger.ZapError(err))
				return err
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "run {discover|classify|generate|remediate|explain|export}",
		Short:     "Run a single governance pass and exit",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"discover", "classify", "generate", "remediate", "explain", "export"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, zapLogger, err := bootstrap()
			if err != nil {
				return err
			}
			defer zapLogger.Sync() //nolint:errcheck // best effort

			ctx := cmd.Context()
			application, err := app.New(ctx, cfg, zapLogger)
			if err != nil {
				return err
			}
			defer func() {
				if err := application.Shutdown(context.Background()); err != nil {
					zapLogger.Warn("shutdown after pass failed", logger.ZapError(err))
				}
			}()

			eng := application.Engine()
			switch args[0] {
			case "discover":
				report, err := eng.DiscoverySync(ctx)
				if err != nil {
					return err
				}
				zapLogger.Info("discovery finished",
					zap.Int("succeeded", report.Succeeded()),
					zap.Int("failed", report.Failed),
				)
			case "classify":
				report, err := eng.ReclassifyAll(ctx)
				if err != nil {
					return err
				}
				zapLogger.Info("classification finished",
					zap.Int("updated", report.Succeeded()),
					zap.Int("unchanged", report.Skipped),
				)
			case "generate":
				summary, err := eng.GenerateCampaign(ctx)
				if err != nil {
					return err
				}
				zapLogger.Info("campaign generated",
					zap.String("campaign_id", summary.CampaignID.String()),
					zap.Int("reviews_created", summary.ReviewsCreated),
					zap.Int("skipped", summary.Skipped),
				)
			case "remediate":
				summary, err := eng.RemediationScan(ctx)
				if err != nil {
					return err
				}
				zapLogger.Info("remediation finished",
					zap.Bool("live", summary.LiveMode),
					zap.Int("executed", summary.Executed),
					zap.Int("skipped", summary.Skipped),
					zap.Int("failed", summary.Failed),
				)
			case "explain":
				report, err := eng.ExplainHighRisk(ctx)
				if err != nil {
					return err
				}
				zapLogger.Info("explanation finished",
					zap.Int("annotated", report.Succeeded()),
					zap.Int("failed", report.Failed),
				)
			case "export":
				artifact, err := application.Exporter().Build(ctx)
				if err != nil {
					return err
				}
				zapLogger.Info("export finished",
					zap.Int("records", artifact.Records),
					zap.String("csv", artifact.CSVPath),
					zap.String("csv_sha256", artifact.CSVSHA256),
					zap.String("json", artifact.JSONPath),
					zap.String("json_sha256", artifact.JSONSHA256),
				)
			default:
				return fmt.Errorf("unknown pass %q", args[0])
			}
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run schema migrations and stamp the revision marker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, zapLogger, err := bootstrap()
			if err != nil {
				return err
			}
			defer zapLogger.Sync() //nolint:errcheck // best effort

			client, err := database.NewClient(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer client.Close() //nolint:errcheck

			if err := database.RunMigrations(cmd.Context(), client); err != nil {
				return err
			}
			zapLogger.Info("migrations applied", zap.String("revision", database.Revision))
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in demo identities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, zapLogger, err := bootstrap()
			if err != nil {
				return err
			}
			defer zapLogger.Sync() //nolint:errcheck // best effort

			application, err := app.New(cmd.Context(), cfg, zapLogger)
			if err != nil {
				return err
			}
			defer func() {
				if err := application.Shutdown(context.Background()); err != nil {
					zapLogger.Warn("shutdown after seed failed", logger.ZapError(err))
				}
			}()

			return seeding.SeedDefaults(cmd.Context(), application.Engine(), zapLogger)
		},
	}
}

func newMintTokenCmd() *cobra.Command {
	var subject, email, scopes string

	cmd := &cobra.Command{
		Use:   "mint-token",
		Short: "Mint a reviewer JWT for the decision API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, zapLogger, err := bootstrap()
			if err != nil {
				return err
			}
			defer zapLogger.Sync() //nolint:errcheck // best effort

			svc, err := token.NewService(cfg.Token)
			if err != nil {
				return err
			}

			var scopeList []string
			for _, s := range strings.Split(scopes, ",") {
				if s = strings.TrimSpace(s); s != "" {
					scopeList = append(scopeList, s)
				}
			}

			signed, exp, err := svc.Mint(subject, email, scopeList)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			zapLogger.Info("token minted", zap.String("subject", subject), zap.Time("expires", exp))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "token subject (reviewer id)")
	cmd.Flags().StringVar(&email, "email", "", "reviewer email")
	cmd.Flags().StringVar(&scopes, "scopes", token.ScopeDecide, "comma-separated scopes")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

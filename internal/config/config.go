package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config aggregates all runtime settings.
type Config struct {
	App         AppConfig         `envPrefix:"GOV_"`
	HTTP        HTTPConfig        `envPrefix:"GOV_HTTP_"`
	Database    DatabaseConfig    `envPrefix:"GOV_DB_"`
	Redis       RedisConfig       `envPrefix:"GOV_REDIS_"`
	Token       TokenConfig       `envPrefix:"GOV_TOKEN_"`
	AWS         AWSConfig         `envPrefix:"GOV_AWS_"`
	Discovery   DiscoveryConfig   `envPrefix:"GOV_DISCOVERY_"`
	Remediation RemediationConfig `envPrefix:"GOV_REMEDIATION_"`
	Explain     ExplainConfig     `envPrefix:"GOV_EXPLAIN_"`
	Export      ExportConfig      `envPrefix:"GOV_EXPORT_"`
	Schedule    ScheduleConfig    `envPrefix:"GOV_SCHEDULE_"`
}

type AppConfig struct {
	Environment string `env:"ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"governor"`
}

type HTTPConfig struct {
	Host              string        `env:"HOST" envDefault:"0.0.0.0"`
	Port              int           `env:"PORT" envDefault:"4820"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"25s"`
}

type DatabaseConfig struct {
	// Driver selects the relational engine: "postgres" (pgx) or "sqlite3".
	Driver          string        `env:"DRIVER" envDefault:"sqlite3"`
	URL             string        `env:"URL" envDefault:"file:governor.db?_fk=1"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"30m"`
	RunMigrations   bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
}

// RedisConfig backs the decision-endpoint rate limiter. An empty Addr
// disables Redis entirely; the API then runs without rate limiting.
type RedisConfig struct {
	Addr      string `env:"ADDR"`
	Password  string `env:"PASSWORD"`
	DB        int    `env:"DB" envDefault:"0"`
	EnableTLS bool   `env:"ENABLE_TLS" envDefault:"false"`
	Namespace string `env:"NAMESPACE" envDefault:"governor"`
}

// TokenConfig configures reviewer JWTs for the decision API. An empty Secret
// disables the decision route.
type TokenConfig struct {
	Secret   string        `env:"SECRET"`
	Issuer   string        `env:"ISSUER" envDefault:"https://governor.local"`
	Audience string        `env:"AUDIENCE" envDefault:"governor"`
	TTL      time.Duration `env:"TTL" envDefault:"8h"`
}

type AWSConfig struct {
	Region string `env:"REGION" envDefault:"us-east-1"`
}

type DiscoveryConfig struct {
	// Source selects the ingestion boundary: "static", "aws", or "http".
	Source           string        `env:"SOURCE" envDefault:"static"`
	Timeout          time.Duration `env:"TIMEOUT" envDefault:"30s"`
	HTTPBaseURL      string        `env:"HTTP_BASE_URL"`
	HTTPTokenURL     string        `env:"HTTP_TOKEN_URL"`
	HTTPClientID     string        `env:"HTTP_CLIENT_ID"`
	HTTPClientSecret string        `env:"HTTP_CLIENT_SECRET"`
	HTTPScopes       []string      `env:"HTTP_SCOPES" envSeparator:","`
}

// RemediationConfig carries the layered safety switches. The defaults are
// deliberately inert: two independent opt-ins are required before any live
// revoke call, and the denylist is never empty.
type RemediationConfig struct {
	DryRun    bool          `env:"DRY_RUN" envDefault:"true"`
	Enabled   bool          `env:"ENABLED" envDefault:"false"`
	Denylist  []string      `env:"DENYLIST" envSeparator:","`
	Allowlist []string      `env:"ALLOWLIST" envSeparator:","`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

type ExplainConfig struct {
	Enabled bool          `env:"ENABLED" envDefault:"false"`
	BaseURL string        `env:"BASE_URL" envDefault:"https://api.openai.com/v1"`
	APIKey  string        `env:"API_KEY"`
	Model   string        `env:"MODEL" envDefault:"gpt-4o-mini"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"20s"`
}

type ExportConfig struct {
	Dir       string `env:"DIR" envDefault:"reports"`
	S3Bucket  string `env:"S3_BUCKET"`
	S3Prefix  string `env:"S3_PREFIX"`
	LocalOnly bool   `env:"LOCAL_ONLY" envDefault:"false"`
}

// ScheduleConfig holds cron specs per pass. An empty spec leaves that pass
// unscheduled; it can still be run once via the CLI.
type ScheduleConfig struct {
	Discover  string `env:"DISCOVER"`
	Classify  string `env:"CLASSIFY"`
	Generate  string `env:"GENERATE"`
	Remediate string `env:"REMEDIATE"`
	Explain   string `env:"EXPLAIN"`
	Export    string `env:"EXPORT"`
}

// defaultDenylist guarantees catastrophic entitlements can never be
// auto-revoked even when the operator clears the env var.
var defaultDenylist = []string{"administratoraccess", "breakglass", "break-glass"}

// Load parses environment variables into Config and performs validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Database.Driver {
	case "postgres", "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported GOV_DB_DRIVER %q", cfg.Database.Driver)
	}
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("GOV_DB_URL is required")
	}

	switch cfg.Discovery.Source {
	case "static", "aws":
	case "http":
		if cfg.Discovery.HTTPBaseURL == "" || cfg.Discovery.HTTPTokenURL == "" ||
			cfg.Discovery.HTTPClientID == "" || cfg.Discovery.HTTPClientSecret == "" {
			return nil, fmt.Errorf("http discovery requires HTTP_BASE_URL, HTTP_TOKEN_URL, HTTP_CLIENT_ID, and HTTP_CLIENT_SECRET")
		}
	default:
		return nil, fmt.Errorf("unsupported GOV_DISCOVERY_SOURCE %q", cfg.Discovery.Source)
	}

	cfg.Remediation.Denylist = normalizeList(cfg.Remediation.Denylist)
	cfg.Remediation.Allowlist = normalizeList(cfg.Remediation.Allowlist)
	if len(cfg.Remediation.Denylist) == 0 {
		cfg.Remediation.Denylist = defaultDenylist
	}

	return cfg, nil
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

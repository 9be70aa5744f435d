package cache

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/Prachet0806/iam-access-certification-engine/internal/config"
	"github.com/redis/go-redis/v9"
)

// New initialises a Redis client using the provided configuration. An empty
// Addr returns a nil client: Redis is optional and only backs rate limiting.
func New(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	opts := &redis.Options{
		Addr:            cfg.Addr,
		Password:        cfg.Password,
		DB:              cfg.DB,
		DisableIdentity: true,
	}

	if cfg.EnableTLS {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

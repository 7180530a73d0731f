package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jvedigdev/ai-job-ace/internal/adapter/dedup/memory"
	redisguard "github.com/jvedigdev/ai-job-ace/internal/adapter/dedup/redis"
	"github.com/jvedigdev/ai-job-ace/internal/config"
	"github.com/jvedigdev/ai-job-ace/internal/domain"
	"github.com/jvedigdev/ai-job-ace/internal/transport/rest"
)

type deliveryGuard interface {
	Claim(ctx context.Context, deliveryID string) (domain.DeliveryState, error)
	Complete(ctx context.Context, deliveryID string) error
	Release(ctx context.Context, deliveryID string) error
}

// newDeliveryGuard builds the configured guard. The "none" backend returns
// a nil guard. An unreachable redis at startup is not fatal since claims
// fail open; it is reported by /health instead.
func newDeliveryGuard(ctx context.Context, cfg *config.Config, logger *slog.Logger) (deliveryGuard, []rest.Check, func(), error) {
	noop := func() {}

	switch cfg.Webhook.DedupBackend {
	case config.DedupNone, "":
		return nil, nil, noop, nil

	case config.DedupMemory:
		logger.Info("webhook delivery guard enabled",
			slog.String("backend", config.DedupMemory),
			slog.Duration("ttl", cfg.Webhook.DedupTTL),
			slog.Duration("lease", cfg.Webhook.DedupLease),
		)
		return memory.New(cfg.Webhook.DedupTTL, cfg.Webhook.DedupLease), nil, noop, nil

	case config.DedupRedis:
		client := redisguard.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		g := redisguard.New(client, cfg.Redis.Prefix, cfg.Webhook.DedupTTL, cfg.Webhook.DedupLease)
		if err := g.Ping(ctx); err != nil {
			logger.Warn("redis delivery guard unreachable",
				slog.String("addr", cfg.Redis.Addr),
				slog.String("error", err.Error()),
			)
		}
		logger.Info("webhook delivery guard enabled",
			slog.String("backend", config.DedupRedis),
			slog.Duration("ttl", cfg.Webhook.DedupTTL),
			slog.Duration("lease", cfg.Webhook.DedupLease),
		)
		closeClient := func() {
			if err := client.Close(); err != nil {
				logger.Warn("close redis client", slog.String("error", err.Error()))
			}
		}
		return g, []rest.Check{{Name: "redis", Pinger: g, Optional: true}}, closeClient, nil

	default:
		return nil, nil, noop, fmt.Errorf("unknown webhook dedup backend %q", cfg.Webhook.DedupBackend)
	}
}

// Package redis implements a webhook delivery guard shared by all replicas.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	rdb "github.com/redis/go-redis/v9"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

// Guard keeps one key per delivery id so every replica sees the same state.
// The value is "pending" while an attempt runs and "done" once it succeeded.
type Guard struct {
	c      *rdb.Client
	prefix string
	ttl    time.Duration
	lease  time.Duration
}

// New wraps an existing client. Keys are "<prefix>webhook:<delivery id>".
// Pending keys expire after lease, done keys after ttl.
func New(c *rdb.Client, prefix string, ttl, lease time.Duration) *Guard {
	return &Guard{c: c, prefix: prefix, ttl: ttl, lease: lease}
}

// NewClient builds a go-redis client for the guard.
func NewClient(addr, password string, db int) *rdb.Client {
	return rdb.NewClient(&rdb.Options{Addr: addr, Password: password, DB: db})
}

func (g *Guard) key(deliveryID string) string {
	return g.prefix + "webhook:" + deliveryID
}

// Claim sets a pending claim with SET NX. When the key exists it reports
// the state stored there.
func (g *Guard) Claim(ctx context.Context, deliveryID string) (domain.DeliveryState, error) {
	key := g.key(deliveryID)

	ok, err := g.c.SetNX(ctx, key, string(domain.DeliveryPending), g.lease).Result()
	if err != nil {
		return "", fmt.Errorf("redis guard claim: %w", err)
	}
	if ok {
		return domain.DeliveryNew, nil
	}

	v, err := g.c.Get(ctx, key).Result()
	switch {
	case errors.Is(err, rdb.Nil):
		// Expired or released between the two calls; the retry will claim it.
		return domain.DeliveryPending, nil
	case err != nil:
		return "", fmt.Errorf("redis guard state: %w", err)
	case v == string(domain.DeliveryDone):
		return domain.DeliveryDone, nil
	default:
		return domain.DeliveryPending, nil
	}
}

// Complete marks deliveryID as applied for the rest of the ttl.
func (g *Guard) Complete(ctx context.Context, deliveryID string) error {
	if err := g.c.Set(ctx, g.key(deliveryID), string(domain.DeliveryDone), g.ttl).Err(); err != nil {
		return fmt.Errorf("redis guard complete: %w", err)
	}
	return nil
}

// Release drops the claim so the provider's retry is processed.
func (g *Guard) Release(ctx context.Context, deliveryID string) error {
	if err := g.c.Del(ctx, g.key(deliveryID)).Err(); err != nil {
		return fmt.Errorf("redis guard release: %w", err)
	}
	return nil
}

// Ping checks connectivity; used by the readiness probe.
func (g *Guard) Ping(ctx context.Context) error {
	return g.c.Ping(ctx).Err()
}

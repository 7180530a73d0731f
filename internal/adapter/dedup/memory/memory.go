// Package memory implements an in-process webhook delivery guard on go-cache.
// Claims are local to one replica.
package memory

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

// Guard tracks delivery ids as pending while an attempt runs and as done
// once it succeeded. Pending entries expire after the lease, done entries
// after the ttl.
type Guard struct {
	mu    sync.Mutex
	c     *gocache.Cache
	ttl   time.Duration
	lease time.Duration
}

// New creates a guard. lease bounds a pending claim whose holder never
// completes or releases it.
func New(ttl, lease time.Duration) *Guard {
	return &Guard{
		c:     gocache.New(ttl, time.Minute),
		ttl:   ttl,
		lease: lease,
	}
}

// Claim reports the state deliveryID had before the call. DeliveryNew means
// the caller now holds a pending claim.
func (g *Guard) Claim(_ context.Context, deliveryID string) (domain.DeliveryState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if v, ok := g.c.Get(deliveryID); ok {
		return v.(domain.DeliveryState), nil
	}
	g.c.Set(deliveryID, domain.DeliveryPending, g.lease)
	return domain.DeliveryNew, nil
}

// Complete marks deliveryID as applied for the rest of the ttl.
func (g *Guard) Complete(_ context.Context, deliveryID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.c.Set(deliveryID, domain.DeliveryDone, g.ttl)
	return nil
}

// Release forgets deliveryID so a retry of it is processed again.
func (g *Guard) Release(_ context.Context, deliveryID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.c.Delete(deliveryID)
	return nil
}

package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/jvedigdev/ai-job-ace/pkg/ctxutil"
)

// RateLimiter hands out one token bucket per client. Buckets idle for
// longer than the configured TTL are evicted.
type RateLimiter struct {
	clients *cache.Cache
	now     func() time.Time
}

// NewRateLimiter creates a limiter whose per-client state expires after
// idle. Expired entries are swept every idle/2.
func NewRateLimiter(idle time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: cache.New(idle, idle/2),
		now:     time.Now,
	}
}

// Limit returns middleware allowing maxPerMinute requests per client with
// bursts of up to maxPerMinute. Authenticated requests are keyed by
// profile, others by remote IP. A non-positive limit disables limiting.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		every := rate.Every(time.Minute / time.Duration(maxPerMinute))
		retryAfter := strconv.Itoa(int(math.Ceil(60 / float64(maxPerMinute))))
		prefix := strconv.Itoa(maxPerMinute) + "|"

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lim := rl.limiter(prefix+clientKey(r), every, maxPerMinute)
			if !lim.AllowN(rl.now(), 1) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// limiter returns the client's bucket, creating it on first use. Two racing
// first requests may each create one; the loser's single token is lost.
func (rl *RateLimiter) limiter(key string, every rate.Limit, burst int) *rate.Limiter {
	if v, ok := rl.clients.Get(key); ok {
		lim := v.(*rate.Limiter)
		rl.clients.SetDefault(key, lim)
		return lim
	}
	lim := rate.NewLimiter(every, burst)
	if err := rl.clients.Add(key, lim, cache.DefaultExpiration); err != nil {
		if v, ok := rl.clients.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return lim
}

func clientKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

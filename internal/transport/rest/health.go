package rest

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthCheckTimeout = 3 * time.Second

// Overall and per-component states reported by the probes.
const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

// pinger is anything with a cheap connectivity check.
type pinger interface {
	Ping(ctx context.Context) error
}

// Check is one dependency reported by the health endpoints. A failing
// optional check degrades /health but never fails /ready.
type Check struct {
	Name     string
	Pinger   pinger
	Optional bool
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	checks  []Check
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version, now: time.Now}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the result of one Check.
type CompStatus struct {
	Status   string `json:"status"`
	Latency  string `json:"latency,omitempty"`
	Error    string `json:"error,omitempty"`
	optional bool
}

// Live handles GET /live. It never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.now()})
}

// Ready handles GET /ready: 503 when any required check fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, code := statusOK, http.StatusOK
	for _, c := range h.run(r.Context()) {
		if c.Status != statusOK && !c.optional {
			status, code = statusDown, http.StatusServiceUnavailable
			break
		}
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: h.now()})
}

// Health handles GET /health with per-component detail and the build
// version. Failing optional checks report "degraded" with a 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.run(r.Context())

	overall := statusOK
	for _, c := range components {
		if c.Status == statusOK {
			continue
		}
		if !c.optional {
			overall = statusDown
			break
		}
		overall = statusDegraded
	}

	code := http.StatusOK
	if overall == statusDown {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

// run pings every check concurrently under a shared timeout.
func (h *HealthHandler) run(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	results := make([]CompStatus, len(h.checks))
	var g errgroup.Group
	for i, c := range h.checks {
		g.Go(func() error {
			start := time.Now()
			err := c.Pinger.Ping(ctx)
			res := CompStatus{Status: statusOK, Latency: time.Since(start).String(), optional: c.Optional}
			if err != nil {
				res = CompStatus{Status: statusDown, Error: err.Error(), optional: c.Optional}
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]CompStatus, len(h.checks))
	for i, c := range h.checks {
		out[c.Name] = results[i]
	}
	return out
}

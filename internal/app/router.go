package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jvedigdev/ai-job-ace/internal/config"
	"github.com/jvedigdev/ai-job-ace/internal/transport/middleware"
	"github.com/jvedigdev/ai-job-ace/internal/transport/rest"
)

// WebhookPath is where the identity provider delivers user events.
const WebhookPath = "/webhooks/identity"

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type httpRecorder interface {
	ObserveHTTPRequest(method, route string, status int, d time.Duration)
}

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health       *rest.HealthHandler
	Webhook      *rest.WebhookHandler
	Applications *rest.ApplicationHandler
	Documents    *rest.DocumentHandler
	Me           *rest.MeHandler
	Metrics      http.Handler
}

// RouterConfig holds the transport settings of the /api routes.
type RouterConfig struct {
	CORS         config.CORSConfig
	APIPerMinute int
}

// NewRouter mounts every route on a ServeMux.
//
// Every request passes through recovery, request id and access logging.
// The webhook route additionally carries the permissive webhook CORS
// headers. /api routes get CORS, bearer authentication, per-client rate
// limiting and request metrics.
func NewRouter(
	h Handlers,
	cfg RouterConfig,
	sessions tokenValidator,
	limiter *middleware.RateLimiter,
	rec httpRecorder,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Operational endpoints.
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	// Identity-sync webhook.
	webhook := func(pattern string, next http.Handler) {
		mux.Handle(pattern, middleware.Chain(
			middleware.Metrics(rec, WebhookPath),
			middleware.WebhookCORS,
		)(next))
	}
	webhook("POST "+WebhookPath, h.Webhook)
	webhook("OPTIONS "+WebhookPath, h.Webhook)
	webhook(WebhookPath, http.HandlerFunc(methodNotAllowed))

	// Authenticated API.
	cors := middleware.CORS(cfg.CORS)
	api := func(pattern string, next http.HandlerFunc) {
		mux.Handle(pattern, middleware.Chain(
			middleware.Metrics(rec, pattern),
			cors,
			middleware.Auth(sessions, logger),
			limiter.Limit(cfg.APIPerMinute),
		)(next))
	}

	// Preflight requests never reach a handler.
	mux.Handle("OPTIONS /api/", cors(http.NotFoundHandler()))

	api("GET /api/me", h.Me.Get)

	api("POST /api/applications", h.Applications.Create)
	api("GET /api/applications", h.Applications.List)
	api("GET /api/applications/{id}", h.Applications.Get)
	api("DELETE /api/applications/{id}", h.Applications.Delete)

	api("POST /api/documents", h.Documents.Upload)
	api("GET /api/documents", h.Documents.List)
	api("GET /api/documents/{id}/content", h.Documents.Content)
	api("DELETE /api/documents/{id}", h.Documents.Delete)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	)(mux)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", "POST, OPTIONS")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusMethodNotAllowed)
	_, _ = w.Write([]byte("Method not allowed"))
}

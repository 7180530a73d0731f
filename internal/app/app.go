package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jvedigdev/ai-job-ace/internal/adapter/postgres"
	applicationrepo "github.com/jvedigdev/ai-job-ace/internal/adapter/postgres/application"
	documentrepo "github.com/jvedigdev/ai-job-ace/internal/adapter/postgres/document"
	profilerepo "github.com/jvedigdev/ai-job-ace/internal/adapter/postgres/profile"
	"github.com/jvedigdev/ai-job-ace/internal/adapter/storage/fs"
	"github.com/jvedigdev/ai-job-ace/internal/auth"
	"github.com/jvedigdev/ai-job-ace/internal/config"
	"github.com/jvedigdev/ai-job-ace/internal/metrics"
	applicationsvc "github.com/jvedigdev/ai-job-ace/internal/service/application"
	documentsvc "github.com/jvedigdev/ai-job-ace/internal/service/document"
	"github.com/jvedigdev/ai-job-ace/internal/service/identitysync"
	profilesvc "github.com/jvedigdev/ai-job-ace/internal/service/profile"
	"github.com/jvedigdev/ai-job-ace/internal/transport/middleware"
	"github.com/jvedigdev/ai-job-ace/internal/transport/rest"
)

const readHeaderTimeout = 5 * time.Second

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled. Shutdown drains in-flight requests for at most
// server.shutdown_timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("addr", cfg.Server.Addr()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("dedup_backend", cfg.Webhook.DedupBackend),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	if err := metrics.RegisterPool(reg, pool); err != nil {
		return fmt.Errorf("register pool metrics: %w", err)
	}

	guard, guardChecks, closeGuard, err := newDeliveryGuard(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeGuard()

	blobs, err := fs.New(cfg.Storage.Dir)
	if err != nil {
		return fmt.Errorf("open blob store: %w", err)
	}

	// Repositories.
	profiles := profilerepo.New(pool)
	applications := applicationrepo.New(pool)
	documents := documentrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services.
	syncService := identitysync.NewService(logger, profiles, guard, m)
	sessions := profilesvc.NewService(logger, auth.NewSessionVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer), profiles)
	applicationService := applicationsvc.NewService(logger, applications)
	documentService := documentsvc.NewService(logger, documents, blobs, txm, cfg.Storage.MaxUploadBytes)

	// Handlers.
	checks := append([]rest.Check{{Name: "database", Pinger: pool}}, guardChecks...)
	handlers := Handlers{
		Health:       rest.NewHealthHandler(Version, checks...),
		Webhook:      rest.NewWebhookHandler(syncService, cfg.Webhook.SigningSecret, cfg.Webhook.MaxBodyBytes, m, logger),
		Applications: rest.NewApplicationHandler(applicationService, logger),
		Documents:    rest.NewDocumentHandler(documentService, cfg.Storage.MaxUploadBytes, logger),
		Me:           rest.NewMeHandler(sessions, logger),
		Metrics:      m.Handler(),
	}

	limiter := middleware.NewRateLimiter(10 * time.Minute)

	router := NewRouter(handlers, RouterConfig{
		CORS:         cfg.CORS,
		APIPerMinute: cfg.RateLimit.APIPerMinute,
	}, sessions, limiter, m, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("application stopped")
	return nil
}

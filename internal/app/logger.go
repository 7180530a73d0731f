package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jvedigdev/ai-job-ace/internal/config"
	"github.com/jvedigdev/ai-job-ace/pkg/ctxutil"
)

// NewLogger builds the process logger from LogConfig and installs it as the
// slog default. Output goes to stderr.
//
// Format "json" is meant for production. Any other value produces text
// output with source locations. Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	json := strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !json,
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(contextHandler{handler}).With(slog.String("version", Version))
}

// contextHandler adds the request and webhook delivery ids found in the
// record's context, unless the caller already logged them.
type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	hasRequest, hasDelivery := false, false
	r.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			hasRequest = true
		case "delivery_id":
			hasDelivery = true
		}
		return true
	})

	if id := ctxutil.RequestIDFromCtx(ctx); id != "" && !hasRequest {
		r.AddAttrs(slog.String("request_id", id))
	}
	if id := ctxutil.DeliveryIDFromCtx(ctx); id != "" && !hasDelivery {
		r.AddAttrs(slog.String("delivery_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h.Handler.WithGroup(name)}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

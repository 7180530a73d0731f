package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jvedigdev/ai-job-ace/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, user_id).
// The user id is read from the request the inner handlers saw, so Auth may
// run inside Logger.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			holder := &userHolder{}

			next.ServeHTTP(sw, r.WithContext(withUserHolder(r.Context(), holder)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			} else if holder.id != "" {
				attrs = append(attrs, slog.String("user_id", holder.id))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// userHolder carries the authenticated user id from Auth back out to Logger.
type userHolder struct {
	id string
}

type userHolderKey struct{}

func withUserHolder(ctx context.Context, h *userHolder) context.Context {
	return context.WithValue(ctx, userHolderKey{}, h)
}

func recordUser(ctx context.Context, id string) {
	if h, ok := ctx.Value(userHolderKey{}).(*userHolder); ok {
		h.id = id
	}
}

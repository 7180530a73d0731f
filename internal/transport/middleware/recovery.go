package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
)

// Recovery turns a handler panic into a 500. API routes get the JSON error
// body, every other route the plain-text body the webhook sender expects.
// When the handler already started the response nothing more is written.
// http.ErrAbortHandler is re-raised so the server aborts the connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("headers_sent", sw.wroteHeader),
				)

				if sw.wroteHeader {
					return
				}
				if strings.HasPrefix(r.URL.Path, "/api/") {
					writeError(sw, http.StatusInternalServerError, "internal server error")
					return
				}
				http.Error(sw, "Internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(sw, r)
		})
	}
}

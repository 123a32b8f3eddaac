package router

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.status == 0 {
		sr.status = code
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	return sr.ResponseWriter.Write(b)
}

// newRequestLoggingMiddleware attaches a request-scoped logger to the context,
// recovers handler panics as 500s and logs one line per request.
func newRequestLoggingMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			logger := base.With("request_id", uuid.New().String())
			ctx := domain.ContextWithLogger(r.Context(), logger)
			r = r.WithContext(ctx)
			rec := &statusRecorder{ResponseWriter: w}

			defer func() {
				if p := recover(); p != nil {
					logger.ErrorContext(ctx, "panic serving request",
						"panic", p, "stack", string(debug.Stack()))
					if rec.status == 0 {
						rec.WriteHeader(http.StatusInternalServerError)
					}
				}

				status := rec.status
				if status == 0 {
					status = http.StatusOK
				}

				level := slog.LevelInfo
				switch {
				case status >= 500:
					level = slog.LevelError
				case status >= 400:
					level = slog.LevelWarn
				}
				logger.Log(ctx, level, "http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", status,
					"duration_ms", time.Since(start).Milliseconds())
			}()

			next.ServeHTTP(rec, r)
		})
	}
}

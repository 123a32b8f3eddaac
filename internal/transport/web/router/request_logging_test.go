package router

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	cases := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantLog    []string
	}{
		{
			name: "implicit_ok",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantStatus: http.StatusOK,
			wantLog:    []string{"level=INFO", "status=200", "request_id="},
		},
		{
			name: "client_error_logged_as_warning",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantLog:    []string{"level=WARN", "status=404"},
		},
		{
			name: "panic_recovered",
			handler: func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			},
			wantStatus: http.StatusInternalServerError,
			wantLog:    []string{"panic serving request", "panic=boom", "level=ERROR", "status=500"},
		},
		{
			name: "handler_gets_request_logger",
			handler: func(w http.ResponseWriter, r *http.Request) {
				domain.LoggerFromContext(r.Context()).InfoContext(r.Context(), "inside handler")
			},
			wantStatus: http.StatusOK,
			wantLog:    []string{"inside handler"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			handler := newRequestLoggingMiddleware(logger)(c.handler)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products", nil))

			assert.Equal(t, c.wantStatus, rec.Code)
			for _, want := range c.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

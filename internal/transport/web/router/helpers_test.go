package router

import (
	"log/slog"
	"net/http"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func withUser(r *http.Request, userID string) *http.Request {
	ctx := domain.ContextWithLogger(r.Context(), testLogger())
	if userID != "" {
		ctx = domain.ContextWithUserID(ctx, userID)
	}
	return r.WithContext(ctx)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(domain.UserIDFromContext(r.Context())))
	})
}

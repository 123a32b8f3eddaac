package controller

import (
	"log/slog"
	"net/http"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

func testContext() func(*http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(*http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

func withUser(r *http.Request, userID string) *http.Request {
	if userID == "" {
		return testContext()(r)
	}
	return testContextWithUserID(userID)(r)
}

func ptr[T any](v T) *T {
	return &v
}


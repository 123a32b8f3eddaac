package controller

import (
	"net/http"

	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// FeedGet handles GET /v1/feed. Once the caller is identified it always
// responds 200; an internal failure degrades to an empty feed.
type FeedGet struct {
	Command command.Command[command.GenerateFeedRequest, domain.FeedResult]
}

func (c FeedGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	result, err := c.Command.Execute(ctx, command.GenerateFeedRequest{UserID: userID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to generate feed", "error", err)
		result = domain.FeedResult{}
	}
	if result.Items == nil {
		result.Items = []domain.FeedItem{}
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, result)
}

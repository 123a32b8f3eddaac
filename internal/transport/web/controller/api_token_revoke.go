package controller

import (
	"errors"
	"net/http"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/gorilla/mux"
)

// APITokenRevoke handles DELETE /v1/tokens/{token_id}. Tokens owned by
// another user are reported as missing.
type APITokenRevoke struct {
	TokenRevoker datasources.APITokenRevoker
}

func (c APITokenRevoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		writeError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	tokenID := mux.Vars(r)["token_id"]
	if tokenID == "" {
		writeError(w, r, http.StatusBadRequest, "token id is required")
		return
	}

	switch err := c.TokenRevoker.RevokeAPIToken(ctx, tokenID, userID); {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "token not found")
	case err != nil:
		domain.LoggerFromContext(ctx).ErrorContext(ctx, "unable to revoke API token",
			"error", err, "token_id", tokenID, "user_id", userID)
		writeError(w, r, http.StatusInternalServerError, "internal error")
	default:
		domain.LoggerFromContext(ctx).InfoContext(ctx, "revoked API token", "token_id", tokenID)
		w.WriteHeader(http.StatusNoContent)
	}
}

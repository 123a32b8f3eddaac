package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

type APITokenListItem struct {
	ID         string     `json:"id"`
	Prefix     string     `json:"prefix"`
	Name       *string    `json:"name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Revoked    bool       `json:"revoked"`
	Active     bool       `json:"active"`
}

type APITokenListResponse struct {
	Data []APITokenListItem `json:"data"`
}

// APITokenList handles GET /v1/tokens. ?active_only=true hides revoked and expired tokens.
type APITokenList struct {
	TokenLister datasources.UserAPITokenLister
}

func (c APITokenList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	activeOnly := false
	if v := r.URL.Query().Get("active_only"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid active_only value")
			return
		}
		activeOnly = parsed
	}

	tokens, err := c.TokenLister.ListUserAPITokens(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list API tokens", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	now := time.Now()
	items := make([]APITokenListItem, 0, len(tokens))
	for _, token := range tokens {
		active := token.IsActiveAt(now)
		if activeOnly && !active {
			continue
		}
		items = append(items, APITokenListItem{
			ID:         token.ID,
			Prefix:     token.Prefix,
			Name:       token.Name,
			CreatedAt:  token.CreatedAt,
			LastUsedAt: token.LastUsedAt,
			ExpiresAt:  token.ExpiresAt,
			Revoked:    token.RevokedAt != nil,
			Active:     active,
		})
	}

	writeJSON(w, r, http.StatusOK, APITokenListResponse{Data: items})
}

package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// APITokenCreateRequest is the JSON request body for creating a token.
type APITokenCreateRequest struct {
	Name          string `json:"name,omitempty" validate:"max=100"`
	ExpiresInDays int    `json:"expires_in_days,omitempty" validate:"omitempty,min=1,max=365"`
}

// APITokenCreateResponse is the JSON response for a created token.
type APITokenCreateResponse struct {
	ID        string     `json:"id"`
	Token     string     `json:"token"`
	Prefix    string     `json:"prefix"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// APITokenCreate handles POST /v1/tokens to create a new API token.
type APITokenCreate struct {
	CreateCmd command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

func (c APITokenCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var reqBody APITokenCreateRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := decodeBody(w, r, &reqBody); err != nil {
			logger.InfoContext(ctx, "unable to parse request body", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	req := command.CreateAPITokenRequest{
		UserID:    userID,
		ExpiresIn: time.Duration(reqBody.ExpiresInDays) * 24 * time.Hour,
	}
	if reqBody.Name != "" {
		req.Name = &reqBody.Name
	}

	result, err := c.CreateCmd.Execute(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "unable to create API token", "error", err)
		if errors.Is(err, command.ErrTokenLimitExceeded) {
			writeError(w, r, http.StatusConflict, err.Error())
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusCreated, APITokenCreateResponse{
		ID:        result.TokenID,
		Token:     result.FullToken,
		Prefix:    result.Prefix,
		ExpiresAt: result.ExpiresAt,
	})
}

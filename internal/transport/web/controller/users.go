package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

const (
	defaultUserSearchLimit  = 10
	defaultUserListingLimit = 50
	maxUserSearchLimit      = 50
)

type UsersListResponse struct {
	Data []domain.User `json:"data"`
}

// UsersSearch handles GET /v1/users/search?q=, listing the users the caller
// can share a product with. Without q it lists everyone but the caller.
type UsersSearch struct {
	Searcher datasources.UserSearcher
}

func (c UsersSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) > maxSearchQueryBytes {
		writeError(w, r, http.StatusBadRequest, "query too long")
		return
	}

	limit, err := limitFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	switch {
	case limit == 0 && query == "":
		limit = defaultUserListingLimit
	case limit == 0:
		limit = defaultUserSearchLimit
	case limit > maxUserSearchLimit:
		limit = maxUserSearchLimit
	}

	users, err := c.Searcher.SearchUsers(ctx, userID, query, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to search users", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []domain.User{}
	}

	writeJSON(w, r, http.StatusOK, UsersListResponse{Data: users})
}

// UserMeGet handles GET /v1/users/me. An authenticated user without a stored
// profile gets one carrying only their ID.
type UserMeGet struct {
	Getter datasources.UserGetter
}

func (c UserMeGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := c.Getter.GetUser(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		user = domain.User{ID: userID}
	case err != nil:
		logger.ErrorContext(ctx, "unable to fetch user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, user)
}

type userProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url,max=2048"`
}

// UserMeUpdate handles PUT /v1/users/me.
type UserMeUpdate struct {
	Upserter datasources.UserProfileUpserter
	Getter   datasources.UserGetter
}

func (c UserMeUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req userProfileRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.InfoContext(ctx, "invalid user profile request", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	update := domain.UserProfileUpdate{
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
	}.Normalized()
	if update.IsEmpty() {
		writeError(w, r, http.StatusBadRequest, "no fields to update")
		return
	}

	if err := c.Upserter.UpsertUserProfile(ctx, userID, update); err != nil {
		logger.ErrorContext(ctx, "unable to update user profile", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	user, err := c.Getter.GetUser(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch updated user", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, user)
}

package controller

import (
	"errors"
	"net/http"

	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// PreferencesGet handles GET /v1/preferences. A user with no stored profile
// gets an empty one.
type PreferencesGet struct {
	Getter datasources.PreferenceGetter
}

func (c PreferencesGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	profile, err := c.Getter.GetPreferences(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch preferences", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if profile == nil {
		profile = &domain.PreferenceProfile{}
	}

	writeJSON(w, r, http.StatusOK, normalizeProfile(*profile))
}

type priceRangeRequest struct {
	Min *float64 `json:"min" validate:"omitempty,gte=0"`
	Max *float64 `json:"max" validate:"omitempty,gte=0"`
}

type preferencesUpdateRequest struct {
	Theme          *string            `json:"theme" validate:"omitempty,oneof=light dark system"`
	Notifications  *bool              `json:"notifications"`
	FavoriteBrands *[]string          `json:"favorite_brands" validate:"omitempty,max=50,dive,max=100"`
	PriceRange     *priceRangeRequest `json:"price_range"`
	SearchHistory  *[]string          `json:"search_history" validate:"omitempty,dive,max=500"`
}

func (req preferencesUpdateRequest) toUpdate() domain.PreferenceUpdate {
	update := domain.PreferenceUpdate{
		Notifications:  req.Notifications,
		FavoriteBrands: req.FavoriteBrands,
		SearchHistory:  req.SearchHistory,
	}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		update.Theme = &theme
	}
	if req.PriceRange != nil {
		update.PriceRange = &domain.PriceRange{Min: req.PriceRange.Min, Max: req.PriceRange.Max}
	}
	return update
}

// PreferencesUpdate handles PUT /v1/preferences. Fields absent from the body
// are left unchanged.
type PreferencesUpdate struct {
	Command command.Command[command.UpdatePreferencesRequest, domain.PreferenceProfile]
}

func (c PreferencesUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req preferencesUpdateRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.InfoContext(ctx, "invalid preferences request", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := c.Command.Execute(ctx, command.UpdatePreferencesRequest{
		UserID: userID,
		Update: req.toUpdate(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFilter) || errors.Is(err, domain.ErrInvalidPreferences) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		logger.ErrorContext(ctx, "unable to update preferences", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, normalizeProfile(profile))
}

// normalizeProfile makes list fields encode as [] rather than null.
func normalizeProfile(p domain.PreferenceProfile) domain.PreferenceProfile {
	if p.FavoriteBrands == nil {
		p.FavoriteBrands = []string{}
	}
	if p.SearchHistory == nil {
		p.SearchHistory = []string{}
	}
	return p
}

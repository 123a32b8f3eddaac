package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// UpdatePreferencesRequest is the request for the UpdatePreferences command.
type UpdatePreferencesRequest struct {
	UserID string
	Update domain.PreferenceUpdate
}

// UpdatePreferences validates and writes a partial preference profile, then
// returns the stored result.
type UpdatePreferences struct {
	Getter  datasources.PreferenceGetter
	Updater datasources.PreferenceUpdater
}

// NewUpdatePreferences creates a properly initialized UpdatePreferences command.
func NewUpdatePreferences(
	getter datasources.PreferenceGetter,
	updater datasources.PreferenceUpdater,
) *UpdatePreferences {
	return &UpdatePreferences{
		Getter:  getter,
		Updater: updater,
	}
}

// Execute returns domain.ErrInvalidPreferences or domain.ErrInvalidFilter for
// updates that cannot be stored.
func (c *UpdatePreferences) Execute(
	ctx context.Context, req UpdatePreferencesRequest,
) (domain.PreferenceProfile, error) {
	update := req.Update
	if update.IsEmpty() {
		return domain.PreferenceProfile{}, fmt.Errorf("%w: no fields to update", domain.ErrInvalidPreferences)
	}
	if err := update.Validate(); err != nil {
		return domain.PreferenceProfile{}, err
	}

	if update.FavoriteBrands != nil {
		brands := distinctBrands(*update.FavoriteBrands)
		update.FavoriteBrands = &brands
	}
	if update.SearchHistory != nil {
		history := make([]string, 0, len(*update.SearchHistory))
		for _, q := range *update.SearchHistory {
			if q = strings.TrimSpace(q); q != "" {
				history = append(history, q)
			}
		}
		history = domain.TrimSearchHistory(history)
		update.SearchHistory = &history
	}

	if err := c.Updater.UpdatePreferences(ctx, req.UserID, update); err != nil {
		return domain.PreferenceProfile{}, fmt.Errorf("updating preferences: %w", err)
	}

	stored, err := c.Getter.GetPreferences(ctx, req.UserID)
	if err != nil {
		return domain.PreferenceProfile{}, fmt.Errorf("reading updated preferences: %w", err)
	}
	if stored == nil {
		return update.Apply(domain.PreferenceProfile{}), nil
	}
	return *stored, nil
}

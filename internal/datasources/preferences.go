package datasources

import (
	"context"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

type PreferenceRepository interface {
	PreferenceGetter
	PreferenceUpdater
}

// PreferenceGetter returns nil without error when the user has no stored profile.
type PreferenceGetter interface {
	GetPreferences(ctx context.Context, userID string) (*domain.PreferenceProfile, error)
}

// PreferenceUpdater writes the non-nil fields of update, creating the profile if needed.
type PreferenceUpdater interface {
	UpdatePreferences(ctx context.Context, userID string, update domain.PreferenceUpdate) error
}

package command

import (
	"errors"
	"testing"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdatePreferences_Execute(t *testing.T) {
	cases := []struct {
		name       string
		update     domain.PreferenceUpdate
		wantStored domain.PreferenceUpdate
		stored     *domain.PreferenceProfile
		updateErr  error
		want       domain.PreferenceProfile
		wantErrIs  error
		wantErr    bool
	}{
		{
			name:       "dedups_brands",
			update:     domain.PreferenceUpdate{FavoriteBrands: &[]string{"Nike", " Nike ", "", "Zara"}},
			wantStored: domain.PreferenceUpdate{FavoriteBrands: &[]string{"Nike", "Zara"}},
			stored:     &domain.PreferenceProfile{FavoriteBrands: []string{"Nike", "Zara"}},
			want:       domain.PreferenceProfile{FavoriteBrands: []string{"Nike", "Zara"}},
		},
		{
			name: "truncates_history",
			update: domain.PreferenceUpdate{SearchHistory: &[]string{
				"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12",
			}},
			wantStored: domain.PreferenceUpdate{SearchHistory: &[]string{
				"3", "4", "5", "6", "7", "8", "9", "10", "11", "12",
			}},
			want: domain.PreferenceProfile{SearchHistory: []string{
				"3", "4", "5", "6", "7", "8", "9", "10", "11", "12",
			}},
		},
		{
			name:      "inverted_price_range",
			update:    domain.PreferenceUpdate{PriceRange: &domain.PriceRange{Min: ptr(500.0), Max: ptr(100.0)}},
			wantErrIs: domain.ErrInvalidFilter,
		},
		{
			name:      "unknown_theme",
			update:    domain.PreferenceUpdate{Theme: ptr(domain.Theme("neon"))},
			wantErrIs: domain.ErrInvalidPreferences,
		},
		{
			name:      "empty_update",
			update:    domain.PreferenceUpdate{},
			wantErrIs: domain.ErrInvalidPreferences,
		},
		{
			name:       "store_error",
			update:     domain.PreferenceUpdate{Notifications: ptr(true)},
			wantStored: domain.PreferenceUpdate{Notifications: ptr(true)},
			updateErr:  errors.New("db down"),
			wantErr:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockPreferenceGetter(t)
			updater := mocks.NewMockPreferenceUpdater(t)

			if tc.wantErrIs == nil {
				updater.EXPECT().UpdatePreferences(mock.Anything, "user-1", tc.wantStored).Return(tc.updateErr)
			}
			if tc.wantErrIs == nil && tc.updateErr == nil {
				getter.EXPECT().GetPreferences(mock.Anything, "user-1").Return(tc.stored, nil)
			}

			got, err := NewUpdatePreferences(getter, updater).Execute(testContext(), UpdatePreferencesRequest{
				UserID: "user-1",
				Update: tc.update,
			})

			switch {
			case tc.wantErrIs != nil:
				require.ErrorIs(t, err, tc.wantErrIs)
			case tc.wantErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

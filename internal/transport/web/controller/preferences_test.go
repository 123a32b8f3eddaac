package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	cmdmocks "github.com/danielyoungkimball/oneoff-mvp/internal/command/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreferencesGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		userID     string
		profile    *domain.PreferenceProfile
		getErr     error
		wantStatus int
		wantBrands []string
	}{
		{
			name:       "stored_profile",
			userID:     "user-1",
			profile:    &domain.PreferenceProfile{FavoriteBrands: []string{"Acme"}},
			wantStatus: http.StatusOK,
			wantBrands: []string{"Acme"},
		},
		{
			name:       "absent_profile_is_empty",
			userID:     "user-1",
			wantStatus: http.StatusOK,
			wantBrands: []string{},
		},
		{
			name:       "store_error",
			userID:     "user-1",
			getErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unauthorized",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockPreferenceGetter(t)
			if tc.userID != "" {
				getter.EXPECT().GetPreferences(mock.Anything, tc.userID).Return(tc.profile, tc.getErr)
			}

			req := withUser(httptest.NewRequest(http.MethodGet, "/v1/preferences", nil), tc.userID)
			rec := httptest.NewRecorder()

			PreferencesGet{Getter: getter}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				var profile domain.PreferenceProfile
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&profile))
				assert.Equal(t, tc.wantBrands, profile.FavoriteBrands)
			}
		})
	}
}

func TestPreferencesUpdate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantUpdate *domain.PreferenceUpdate
		commandErr error
		wantStatus int
	}{
		{
			name: "partial_update",
			body: `{"favorite_brands": ["Nike", "Zara"], "price_range": {"max": 300}}`,
			wantUpdate: &domain.PreferenceUpdate{
				FavoriteBrands: &[]string{"Nike", "Zara"},
				PriceRange:     &domain.PriceRange{Max: ptr(300.0)},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "theme_update",
			body:       `{"theme": "dark"}`,
			wantUpdate: &domain.PreferenceUpdate{Theme: ptr(domain.ThemeDark)},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown_theme",
			body:       `{"theme": "neon"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative_price",
			body:       `{"price_range": {"min": -5}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_field",
			body:       `{"favourite": ["Nike"]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "inverted_bounds",
			body: `{"price_range": {"min": 500, "max": 100}}`,
			wantUpdate: &domain.PreferenceUpdate{
				PriceRange: &domain.PriceRange{Min: ptr(500.0), Max: ptr(100.0)},
			},
			commandErr: domain.ErrInvalidFilter,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store_error",
			body:       `{"notifications": true}`,
			wantUpdate: &domain.PreferenceUpdate{Notifications: ptr(true)},
			commandErr: errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			updateCmd := cmdmocks.NewMockCommand[command.UpdatePreferencesRequest, domain.PreferenceProfile](t)
			if tc.wantUpdate != nil {
				updateCmd.EXPECT().
					Execute(mock.Anything, command.UpdatePreferencesRequest{UserID: "user-1", Update: *tc.wantUpdate}).
					Return(domain.PreferenceProfile{}, tc.commandErr)
			}

			req := testContextWithUserID("user-1")(
				httptest.NewRequest(http.MethodPut, "/v1/preferences", strings.NewReader(tc.body)))
			rec := httptest.NewRecorder()

			PreferencesUpdate{Command: updateCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

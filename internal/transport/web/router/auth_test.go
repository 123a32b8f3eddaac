package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAuthMiddleware(t *testing.T) {
	notApplicable := func(*http.Request) (*AuthResult, error) { return nil, nil }
	succeeds := func(*http.Request) (*AuthResult, error) {
		return &AuthResult{UserID: "user-1", Method: domain.AuthMethodAPIToken}, nil
	}
	fails := func(*http.Request) (*AuthResult, error) { return nil, errors.New("invalid API token") }

	cases := []struct {
		name       string
		validators []AuthValidator
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no_validator_applies",
			validators: []AuthValidator{notApplicable},
			wantStatus: http.StatusOK,
			wantBody:   "",
		},
		{
			name:       "first_applicable_validator_wins",
			validators: []AuthValidator{notApplicable, succeeds, fails},
			wantStatus: http.StatusOK,
			wantBody:   "user-1",
		},
		{
			name:       "validation_failure_rejected",
			validators: []AuthValidator{fails, succeeds},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"invalid API token"}`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			handler := NewAuthMiddleware(c.validators)(okHandler())
			req := withUser(httptest.NewRequest(http.MethodGet, "/v1/feed", nil), "")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, c.wantStatus, rec.Code)
			if c.wantStatus == http.StatusOK {
				assert.Equal(t, c.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, c.wantBody, rec.Body.String())
			}
		})
	}
}

func TestNewAPITokenValidator(t *testing.T) {
	fullToken := command.APITokenPrefix + "abc123"
	tokenHash := domain.HashAPIToken(fullToken)
	past := time.Now().Add(-time.Hour)

	cases := []struct {
		name        string
		header      string
		token       domain.APIToken
		getErr      error
		wantResult  *AuthResult
		wantErr     bool
		wantUpdated bool
	}{
		{
			name:   "other_scheme_not_applicable",
			header: "Bearer auth0|jwt",
		},
		{
			name:   "missing_header_not_applicable",
			header: "",
		},
		{
			name:    "unknown_token",
			header:  "Bearer " + fullToken,
			getErr:  domain.ErrNotFound,
			wantErr: true,
		},
		{
			name:    "revoked_token",
			header:  "Bearer " + fullToken,
			token:   domain.APIToken{ID: "tok-1", UserID: "user-1", RevokedAt: &past},
			wantErr: true,
		},
		{
			name:        "active_token",
			header:      "Bearer " + fullToken,
			token:       domain.APIToken{ID: "tok-1", UserID: "user-1"},
			wantResult:  &AuthResult{UserID: "user-1", Method: domain.AuthMethodAPIToken},
			wantUpdated: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			getter := mocks.NewMockAPITokenByHashGetter(t)
			updater := mocks.NewMockAPITokenLastUsedUpdater(t)

			if c.token.ID != "" || c.getErr != nil {
				getter.EXPECT().GetAPITokenByHash(mock.Anything, tokenHash).Return(c.token, c.getErr)
			}

			updated := make(chan string, 1)
			if c.wantUpdated {
				updater.EXPECT().UpdateAPITokenLastUsed(mock.Anything, c.token.ID).
					RunAndReturn(func(_ context.Context, tokenID string) error {
						updated <- tokenID
						return nil
					})
			}

			validate := NewAPITokenValidator(context.Background(), getter, updater)
			req := withUser(httptest.NewRequest(http.MethodGet, "/v1/feed", nil), "")
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}

			result, err := validate(req)

			if c.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantResult, result)

			if c.wantUpdated {
				select {
				case tokenID := <-updated:
					assert.Equal(t, c.token.ID, tokenID)
				case <-time.After(time.Second):
					t.Fatal("last used time was not updated")
				}
			}
		})
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	cases := []struct {
		name       string
		userID     string
		wantStatus int
	}{
		{name: "authenticated", userID: "user-1", wantStatus: http.StatusOK},
		{name: "anonymous", userID: "", wantStatus: http.StatusUnauthorized},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := withUser(httptest.NewRequest(http.MethodGet, "/v1/preferences", nil), c.userID)
			rec := httptest.NewRecorder()

			requireAuthMiddleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, c.wantStatus, rec.Code)
		})
	}
}

package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUsersSearch_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		url        string
		userID     string
		wantQuery  string
		wantLimit  int
		users      []domain.User
		searchErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "search",
			url:        "/v1/users/search?q=%20ali%20",
			userID:     "user-1",
			wantQuery:  "ali",
			wantLimit:  defaultUserSearchLimit,
			users:      []domain.User{{ID: "user-2", Name: ptr("Alice")}},
			wantStatus: http.StatusOK,
			wantBody:   `{"data": [{"id": "user-2", "name": "Alice", "created_at": "0001-01-01T00:00:00Z"}]}`,
		},
		{
			name:       "listing_without_query",
			url:        "/v1/users/search",
			userID:     "user-1",
			wantLimit:  defaultUserListingLimit,
			wantStatus: http.StatusOK,
			wantBody:   `{"data": []}`,
		},
		{
			name:       "limit_capped",
			url:        "/v1/users/search?q=bo&limit=500",
			userID:     "user-1",
			wantQuery:  "bo",
			wantLimit:  maxUserSearchLimit,
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad_limit",
			url:        "/v1/users/search?q=bo&limit=-2",
			userID:     "user-1",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "query_too_long",
			url:        "/v1/users/search?q=" + strings.Repeat("a", maxSearchQueryBytes+1),
			userID:     "user-1",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "anonymous",
			url:        "/v1/users/search?q=bo",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "store_error",
			url:        "/v1/users/search?q=bo",
			userID:     "user-1",
			wantQuery:  "bo",
			wantLimit:  defaultUserSearchLimit,
			searchErr:  errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			searcher := mocks.NewMockUserSearcher(t)
			if tc.wantLimit > 0 {
				searcher.EXPECT().
					SearchUsers(mock.Anything, tc.userID, tc.wantQuery, tc.wantLimit).
					Return(tc.users, tc.searchErr)
			}

			req := withUser(httptest.NewRequest(http.MethodGet, tc.url, nil), tc.userID)
			rec := httptest.NewRecorder()

			UsersSearch{Searcher: searcher}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestUserMeGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		user       domain.User
		getErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "stored_profile",
			user:       domain.User{ID: "user-1", Name: ptr("Sam"), Email: ptr("sam@example.com")},
			wantStatus: http.StatusOK,
			wantBody:   `{"id": "user-1", "name": "Sam", "email": "sam@example.com", "created_at": "0001-01-01T00:00:00Z"}`,
		},
		{
			name:       "no_stored_profile",
			getErr:     domain.ErrNotFound,
			wantStatus: http.StatusOK,
			wantBody:   `{"id": "user-1", "created_at": "0001-01-01T00:00:00Z"}`,
		},
		{
			name:       "store_error",
			getErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockUserGetter(t)
			getter.EXPECT().GetUser(mock.Anything, "user-1").Return(tc.user, tc.getErr)

			req := testContextWithUserID("user-1")(httptest.NewRequest(http.MethodGet, "/v1/users/me", nil))
			rec := httptest.NewRecorder()

			UserMeGet{Getter: getter}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestUserMeUpdate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantUpdate *domain.UserProfileUpdate
		upsertErr  error
		wantStatus int
	}{
		{
			name:       "trimmed_name",
			body:       `{"name": "  Sam  "}`,
			wantUpdate: &domain.UserProfileUpdate{Name: ptr("Sam")},
			wantStatus: http.StatusOK,
		},
		{
			name:       "email_and_avatar",
			body:       `{"email": "sam@example.com", "avatar_url": "https://cdn.example/sam.png"}`,
			wantUpdate: &domain.UserProfileUpdate{Email: ptr("sam@example.com"), AvatarURL: ptr("https://cdn.example/sam.png")},
			wantStatus: http.StatusOK,
		},
		{
			name:       "blank_fields_only",
			body:       `{"name": "   "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_email",
			body:       `{"email": "not-an-email"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store_error",
			body:       `{"name": "Sam"}`,
			wantUpdate: &domain.UserProfileUpdate{Name: ptr("Sam")},
			upsertErr:  errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			upserter := mocks.NewMockUserProfileUpserter(t)
			getter := mocks.NewMockUserGetter(t)
			if tc.wantUpdate != nil {
				upserter.EXPECT().UpsertUserProfile(mock.Anything, "user-1", *tc.wantUpdate).Return(tc.upsertErr)
				if tc.upsertErr == nil {
					getter.EXPECT().GetUser(mock.Anything, "user-1").Return(domain.User{ID: "user-1"}, nil)
				}
			}

			req := testContextWithUserID("user-1")(
				httptest.NewRequest(http.MethodPut, "/v1/users/me", strings.NewReader(tc.body)))
			rec := httptest.NewRecorder()

			UserMeUpdate{Upserter: upserter, Getter: getter}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

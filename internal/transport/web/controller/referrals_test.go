package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	cmdmocks "github.com/danielyoungkimball/oneoff-mvp/internal/command/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources/mocks"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReferralsReceivedList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name        string
		query       string
		wantLimit   int
		wantOffset  int
		page        domain.ReferralPage
		listErr     error
		wantStatus  int
		wantHasMore bool
	}{
		{
			name:       "first_page",
			wantLimit:  20,
			wantOffset: 0,
			page: domain.ReferralPage{
				Referrals: []domain.SocialReferral{{ID: "r1"}, {ID: "r2"}},
				Total:     5,
			},
			wantStatus:  http.StatusOK,
			wantHasMore: true,
		},
		{
			name:       "last_page",
			query:      "?page=2&page_size=3",
			wantLimit:  3,
			wantOffset: 3,
			page: domain.ReferralPage{
				Referrals: []domain.SocialReferral{{ID: "r4"}, {ID: "r5"}},
				Total:     5,
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid_page",
			query:      "?page=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store_error",
			wantLimit:  20,
			listErr:    errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockReceivedReferralLister(t)
			if tc.wantLimit > 0 {
				lister.EXPECT().
					ListReceivedReferrals(mock.Anything, "user-1", tc.wantLimit, tc.wantOffset).
					Return(tc.page, tc.listErr)
			}

			req := testContextWithUserID("user-1")(
				httptest.NewRequest(http.MethodGet, "/v1/referrals/received"+tc.query, nil))
			rec := httptest.NewRecorder()

			ReferralsReceivedList{Lister: lister}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				var body ReferralsListResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Len(t, body.Data, len(tc.page.Referrals))
				assert.Equal(t, tc.page.Total, body.Metadata.Total)
				assert.Equal(t, tc.wantHasMore, body.Metadata.HasMore)
			}
		})
	}
}

func TestReferralsSentList_Unauthorized(t *testing.T) {
	lister := mocks.NewMockSentReferralLister(t)

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/referrals/sent", nil))
	rec := httptest.NewRecorder()

	ReferralsSentList{Lister: lister}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReferralCreate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantCall   bool
		commandErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			body:       `{"receiver_id": "user-2", "product_id": "p1", "message": "try these"}`,
			wantCall:   true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing_product",
			body:       `{"receiver_id": "user-2"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "self_share",
			body:       `{"receiver_id": "user-1", "product_id": "p1"}`,
			wantCall:   true,
			commandErr: command.ErrSelfReferral,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_product",
			body:       `{"receiver_id": "user-2", "product_id": "p1"}`,
			wantCall:   true,
			commandErr: fmt.Errorf("product p1: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error": "product p1: not found"}`,
		},
		{
			name:       "unknown_recipient",
			body:       `{"receiver_id": "user-9", "product_id": "p1"}`,
			wantCall:   true,
			commandErr: fmt.Errorf("recipient user-9: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error": "recipient user-9: not found"}`,
		},
		{
			name:       "store_error",
			body:       `{"receiver_id": "user-2", "product_id": "p1"}`,
			wantCall:   true,
			commandErr: errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shareCmd := cmdmocks.NewMockCommand[command.ShareProductRequest, domain.SocialReferral](t)
			if tc.wantCall {
				shareCmd.EXPECT().
					Execute(mock.Anything, mock.MatchedBy(func(req command.ShareProductRequest) bool {
						return req.SenderID == "user-1" && req.ProductID == "p1"
					})).
					Return(domain.SocialReferral{ID: "ref-1"}, tc.commandErr)
			}

			req := testContextWithUserID("user-1")(
				httptest.NewRequest(http.MethodPost, "/v1/referrals", strings.NewReader(tc.body)))
			rec := httptest.NewRecorder()

			ReferralCreate{Command: shareCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestReferralDelete_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		commandErr error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not_sender", commandErr: command.ErrNotReferralSender, wantStatus: http.StatusForbidden},
		{name: "not_found", commandErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "store_error", commandErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deleteCmd := cmdmocks.NewMockCommand[command.DeleteReferralRequest, command.Empty](t)
			deleteCmd.EXPECT().
				Execute(mock.Anything, command.DeleteReferralRequest{UserID: "user-1", ReferralID: "ref-1"}).
				Return(command.Empty{}, tc.commandErr)

			req := testContextWithUserID("user-1")(
				httptest.NewRequest(http.MethodDelete, "/v1/referrals/ref-1", nil))
			req = mux.SetURLVars(req, map[string]string{"referral_id": "ref-1"})
			rec := httptest.NewRecorder()

			ReferralDelete{Command: deleteCmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestReferralStats_ServeHTTP(t *testing.T) {
	fetcher := mocks.NewMockReferralStatsFetcher(t)
	fetcher.EXPECT().FetchReferralStats(mock.Anything, "user-1").
		Return(domain.ReferralStats{Sent: 4, Received: 2}, nil)

	req := testContextWithUserID("user-1")(httptest.NewRequest(http.MethodGet, "/v1/referrals/stats", nil))
	rec := httptest.NewRecorder()

	ReferralStats{Fetcher: fetcher}.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sent": 4, "received": 2}`, rec.Body.String())
}

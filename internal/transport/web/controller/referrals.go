package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielyoungkimball/oneoff-mvp/internal/command"
	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/gorilla/mux"
)

type ReferralsListResponse struct {
	Data     []domain.SocialReferral `json:"data"`
	Metadata ListMetadata            `json:"metadata"`
}

type referralPageLister func(ctx context.Context, userID string, limit, offset int) (domain.ReferralPage, error)

// ReferralsReceivedList handles GET /v1/referrals/received.
type ReferralsReceivedList struct {
	Lister datasources.ReceivedReferralLister
}

func (c ReferralsReceivedList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveReferralPage(w, r, c.Lister.ListReceivedReferrals)
}

// ReferralsSentList handles GET /v1/referrals/sent.
type ReferralsSentList struct {
	Lister datasources.SentReferralLister
}

func (c ReferralsSentList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveReferralPage(w, r, c.Lister.ListSentReferrals)
}

func serveReferralPage(w http.ResponseWriter, r *http.Request, list referralPageLister) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.InfoContext(ctx, "invalid pagination", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	offset := pageOffset(page, pageSize)

	result, err := list(ctx, userID, pageSize, offset)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list referrals", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	referrals := result.Referrals
	if referrals == nil {
		referrals = []domain.SocialReferral{}
	}

	writeJSON(w, r, http.StatusOK, ReferralsListResponse{
		Data: referrals,
		Metadata: ListMetadata{
			Total:   result.Total,
			HasMore: result.HasMore(offset),
		},
	})
}

type referralCreateRequest struct {
	ReceiverID string  `json:"receiver_id" validate:"required,max=255"`
	ProductID  string  `json:"product_id" validate:"required,max=255"`
	Message    *string `json:"message"`
}

// ReferralCreate handles POST /v1/referrals.
type ReferralCreate struct {
	Command command.Command[command.ShareProductRequest, domain.SocialReferral]
}

func (c ReferralCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req referralCreateRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.InfoContext(ctx, "invalid referral request", "error", err)
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	referral, err := c.Command.Execute(ctx, command.ShareProductRequest{
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		ProductID:  req.ProductID,
		Message:    req.Message,
	})
	switch {
	case errors.Is(err, command.ErrSelfReferral), errors.Is(err, command.ErrReferralMessageTooLong):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	case err != nil:
		logger.ErrorContext(ctx, "unable to create referral", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusCreated, referral)
}

// ReferralDelete handles DELETE /v1/referrals/{referral_id}.
type ReferralDelete struct {
	Command command.Command[command.DeleteReferralRequest, command.Empty]
}

func (c ReferralDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	referralID := mux.Vars(r)["referral_id"]
	if referralID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_, err := c.Command.Execute(ctx, command.DeleteReferralRequest{UserID: userID, ReferralID: referralID})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		return
	case errors.Is(err, command.ErrNotReferralSender):
		w.WriteHeader(http.StatusForbidden)
		return
	case err != nil:
		logger.ErrorContext(ctx, "unable to delete referral", "error", err, "referral_id", referralID)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReferralStats handles GET /v1/referrals/stats.
type ReferralStats struct {
	Fetcher datasources.ReferralStatsFetcher
}

func (c ReferralStats) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	stats, err := c.Fetcher.FetchReferralStats(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch referral stats", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, stats)
}

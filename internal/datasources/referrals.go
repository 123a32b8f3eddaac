package datasources

import (
	"context"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

type ReferralRepository interface {
	ReceivedReferralLister
	LatestReferralLister
	SentReferralLister
	ReferralCreator
	ReferralGetter
	ReferralDeleter
	ReferralStatsFetcher
}

// ReceivedReferralLister lists referrals addressed to userID, newest first.
type ReceivedReferralLister interface {
	ListReceivedReferrals(ctx context.Context, userID string, limit, offset int) (domain.ReferralPage, error)
}

// LatestReferralLister lists the newest referrals addressed to userID without
// counting the rest of the inbox.
type LatestReferralLister interface {
	ListLatestReceivedReferrals(ctx context.Context, userID string, limit int) ([]domain.SocialReferral, error)
}

// SentReferralLister lists referrals sent by userID, newest first.
type SentReferralLister interface {
	ListSentReferrals(ctx context.Context, userID string, limit, offset int) (domain.ReferralPage, error)
}

type ReferralCreator interface {
	CreateReferral(ctx context.Context, referral domain.SocialReferral) error
}

// ReferralGetter returns domain.ErrNotFound if the referral does not exist.
type ReferralGetter interface {
	GetReferral(ctx context.Context, referralID string) (domain.SocialReferral, error)
}

type ReferralDeleter interface {
	DeleteReferral(ctx context.Context, referralID string) error
}

type ReferralStatsFetcher interface {
	FetchReferralStats(ctx context.Context, userID string) (domain.ReferralStats, error)
}

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
)

// ErrNotReferralSender is returned when someone other than the sender tries to delete a referral.
var ErrNotReferralSender = errors.New("only the sender can delete a referral")

// DeleteReferralRequest is the request for the DeleteReferral command.
type DeleteReferralRequest struct {
	UserID     string
	ReferralID string
}

// DeleteReferral removes a referral on behalf of its sender.
type DeleteReferral struct {
	Getter  datasources.ReferralGetter
	Deleter datasources.ReferralDeleter
}

// NewDeleteReferral creates a properly initialized DeleteReferral command.
func NewDeleteReferral(getter datasources.ReferralGetter, deleter datasources.ReferralDeleter) *DeleteReferral {
	return &DeleteReferral{Getter: getter, Deleter: deleter}
}

func (c *DeleteReferral) Execute(ctx context.Context, req DeleteReferralRequest) (Empty, error) {
	referral, err := c.Getter.GetReferral(ctx, req.ReferralID)
	if err != nil {
		return Empty{}, fmt.Errorf("getting referral: %w", err)
	}

	if referral.SenderID != req.UserID {
		return Empty{}, ErrNotReferralSender
	}

	if err := c.Deleter.DeleteReferral(ctx, req.ReferralID); err != nil {
		return Empty{}, fmt.Errorf("deleting referral: %w", err)
	}

	return Empty{}, nil
}

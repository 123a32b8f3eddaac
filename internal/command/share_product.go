package command

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

var (
	// ErrSelfReferral is returned when a user shares a product with themselves.
	ErrSelfReferral = errors.New("cannot share a product with yourself")

	// ErrReferralMessageTooLong is returned when a message exceeds domain.MaxReferralMessageLength.
	ErrReferralMessageTooLong = errors.New("referral message too long")
)

// ShareProductRequest is the request for the ShareProduct command.
type ShareProductRequest struct {
	SenderID   string
	ReceiverID string
	ProductID  string
	Message    *string
}

// ShareProduct records a product recommendation from one user to another.
type ShareProduct struct {
	ProductFetcher  datasources.ProductFetcher
	UserGetter      datasources.UserGetter
	ReferralCreator datasources.ReferralCreator

	policy *bluemonday.Policy
}

// NewShareProduct creates a properly initialized ShareProduct command.
func NewShareProduct(
	productFetcher datasources.ProductFetcher,
	userGetter datasources.UserGetter,
	referralCreator datasources.ReferralCreator,
) *ShareProduct {
	return &ShareProduct{
		ProductFetcher:  productFetcher,
		UserGetter:      userGetter,
		ReferralCreator: referralCreator,
		policy:          bluemonday.StrictPolicy(),
	}
}

// Execute returns domain.ErrNotFound if the product or the recipient does not exist.
func (c *ShareProduct) Execute(ctx context.Context, req ShareProductRequest) (domain.SocialReferral, error) {
	if req.SenderID == req.ReceiverID {
		return domain.SocialReferral{}, ErrSelfReferral
	}

	message, err := c.cleanMessage(req.Message)
	if err != nil {
		return domain.SocialReferral{}, err
	}

	receiver, err := c.UserGetter.GetUser(ctx, req.ReceiverID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.SocialReferral{}, fmt.Errorf("recipient %s: %w", req.ReceiverID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.SocialReferral{}, fmt.Errorf("fetching recipient: %w", err)
	}

	products, err := c.ProductFetcher.FetchProductsByID(ctx, []string{req.ProductID})
	if err != nil {
		return domain.SocialReferral{}, fmt.Errorf("fetching shared product: %w", err)
	}
	if len(products) == 0 {
		return domain.SocialReferral{}, fmt.Errorf("product %s: %w", req.ProductID, domain.ErrNotFound)
	}

	referral := domain.SocialReferral{
		ID:         uuid.New().String(),
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		ProductID:  req.ProductID,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
		Sender:     domain.UserSummary{ID: req.SenderID},
		Receiver:   receiver.Summary(),
		Product:    &products[0],
	}

	if err := c.ReferralCreator.CreateReferral(ctx, referral); err != nil {
		return domain.SocialReferral{}, fmt.Errorf("creating referral: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "product shared",
		"referral_id", referral.ID, "product_id", req.ProductID, "receiver_id", req.ReceiverID)

	return referral, nil
}

// cleanMessage strips markup and surrounding whitespace; a blank message becomes nil.
// The result is plain text, so entities the sanitizer emits are decoded again
// before the length is checked.
func (c *ShareProduct) cleanMessage(message *string) (*string, error) {
	if message == nil {
		return nil, nil
	}

	policy := c.policy
	if policy == nil {
		policy = bluemonday.StrictPolicy()
	}

	cleaned := strings.TrimSpace(html.UnescapeString(policy.Sanitize(*message)))
	if cleaned == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(cleaned) > domain.MaxReferralMessageLength {
		return nil, ErrReferralMessageTooLong
	}
	return &cleaned, nil
}

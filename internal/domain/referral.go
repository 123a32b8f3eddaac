package domain

import "time"

// MaxReferralMessageLength is counted in characters, not bytes.
const MaxReferralMessageLength = 500

type UserSummary struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// DisplayName falls back to the user ID when no name is on record.
func (u UserSummary) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.ID
}

// SocialReferral is a product one user shared with another. Sender, Receiver and
// Product are populated when the referral is read through a joined listing;
// Product is nil if the product no longer exists.
type SocialReferral struct {
	ID         string      `json:"id"`
	SenderID   string      `json:"sender_id"`
	ReceiverID string      `json:"receiver_id"`
	ProductID  string      `json:"product_id"`
	Message    *string     `json:"message,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	Sender     UserSummary `json:"sender"`
	Receiver   UserSummary `json:"receiver"`
	Product    *Product    `json:"product,omitempty"`
}

type ReferralPage struct {
	Referrals []SocialReferral
	Total     int
}

// HasMore reports whether rows remain past the page ending at offset+len(Referrals).
func (p ReferralPage) HasMore(offset int) bool {
	return offset+len(p.Referrals) < p.Total
}

type ReferralStats struct {
	Sent     int `json:"sent"`
	Received int `json:"received"`
}

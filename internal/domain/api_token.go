package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// APIToken represents a user's API token for programmatic access.
type APIToken struct {
	ID         string     `json:"id"`
	UserID     string     `json:"-"`
	TokenHash  string     `json:"-"`
	Prefix     string     `json:"prefix"`
	Name       *string    `json:"name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	RevokedAt  *time.Time `json:"-"`
}

// IsActive returns true if the token is not revoked and not expired.
func (t APIToken) IsActive() bool {
	return t.IsActiveAt(time.Now())
}

func (t APIToken) IsActiveAt(now time.Time) bool {
	if t.RevokedAt != nil {
		return false
	}
	return t.ExpiresAt == nil || now.Before(*t.ExpiresAt)
}

// HashAPIToken returns the hex SHA-256 of the full bearer token. Only the hash is stored.
func HashAPIToken(fullToken string) string {
	sum := sha256.Sum256([]byte(fullToken))
	return hex.EncodeToString(sum[:])
}

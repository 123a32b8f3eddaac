package command

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/datasources"
	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/google/uuid"
)

// MaxAPITokensPerUser is the maximum number of active tokens a user can have.
const MaxAPITokensPerUser = 10

// ErrTokenLimitExceeded is returned when a user has reached the maximum number of active tokens.
var ErrTokenLimitExceeded = errors.New("user has reached maximum number of active tokens")

// APITokenPrefix is the prefix for API tokens in the Authorization header.
const APITokenPrefix = "user_api|"

// CreateAPITokenRequest is the request for the CreateAPIToken command.
type CreateAPITokenRequest struct {
	UserID string
	Name   *string
	// ExpiresIn is zero for tokens that never expire.
	ExpiresIn time.Duration
}

// CreateAPITokenResponse carries the only copy of the full token.
type CreateAPITokenResponse struct {
	TokenID   string
	FullToken string
	Prefix    string
	ExpiresAt *time.Time
}

// CreateAPIToken handles creating new API tokens.
type CreateAPIToken struct {
	TokenCounter datasources.UserAPITokenCounter
	TokenCreator datasources.APITokenCreator
	now          func() time.Time
}

// NewCreateAPIToken creates a properly initialized CreateAPIToken command.
func NewCreateAPIToken(
	tokenCounter datasources.UserAPITokenCounter,
	tokenCreator datasources.APITokenCreator,
) *CreateAPIToken {
	return &CreateAPIToken{
		TokenCounter: tokenCounter,
		TokenCreator: tokenCreator,
		now:          time.Now,
	}
}

// Execute creates a new API token for the user.
func (c *CreateAPIToken) Execute(ctx context.Context, req CreateAPITokenRequest) (CreateAPITokenResponse, error) {
	count, err := c.TokenCounter.CountUserActiveAPITokens(ctx, req.UserID)
	if err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("counting user tokens: %w", err)
	}
	if count >= MaxAPITokensPerUser {
		return CreateAPITokenResponse{}, ErrTokenLimitExceeded
	}

	// 32 random bytes, hex encoded.
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("generating random token: %w", err)
	}
	tokenHex := hex.EncodeToString(tokenBytes)
	fullToken := APITokenPrefix + tokenHex

	now := c.now()
	token := domain.APIToken{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		TokenHash: domain.HashAPIToken(fullToken),
		Prefix:    tokenHex[:8],
		Name:      req.Name,
		CreatedAt: now,
	}
	if req.ExpiresIn > 0 {
		expiresAt := now.Add(req.ExpiresIn)
		token.ExpiresAt = &expiresAt
	}

	if err := c.TokenCreator.CreateAPIToken(ctx, token); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("creating token: %w", err)
	}

	return CreateAPITokenResponse{
		TokenID:   token.ID,
		FullToken: fullToken,
		Prefix:    token.Prefix,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

package datasources

import (
	"context"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

// APITokenCreator stores a token; only its hash and display prefix are persisted.
type APITokenCreator interface {
	CreateAPIToken(ctx context.Context, token domain.APIToken) error
}

// APITokenByHashGetter returns domain.ErrNotFound for unknown hashes.
type APITokenByHashGetter interface {
	GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error)
}

type APITokenLastUsedUpdater interface {
	UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error
}

// UserAPITokenLister lists a user's tokens, including revoked and expired ones.
type UserAPITokenLister interface {
	ListUserAPITokens(ctx context.Context, userID string) ([]domain.APIToken, error)
}

type UserAPITokenCounter interface {
	CountUserActiveAPITokens(ctx context.Context, userID string) (int64, error)
}

// APITokenRevoker revokes tokenID if it belongs to userID, returning
// domain.ErrNotFound otherwise.
type APITokenRevoker interface {
	RevokeAPIToken(ctx context.Context, tokenID, userID string) error
}

type APITokenRepository interface {
	APITokenCreator
	APITokenByHashGetter
	APITokenLastUsedUpdater
	UserAPITokenLister
	UserAPITokenCounter
	APITokenRevoker
}

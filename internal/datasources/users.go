package datasources

import (
	"context"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
)

type UserRepository interface {
	UserGetter
	UserSearcher
	UserProfileUpserter
}

// UserGetter returns domain.ErrNotFound if the user does not exist.
type UserGetter interface {
	GetUser(ctx context.Context, userID string) (domain.User, error)
}

// UserSearcher lists users other than excludeUserID whose name or email
// contains query, ordered by name. An empty query matches every user.
type UserSearcher interface {
	SearchUsers(ctx context.Context, excludeUserID, query string, limit int) ([]domain.User, error)
}

// UserProfileUpserter creates the user if needed and sets the non-nil fields.
type UserProfileUpserter interface {
	UpsertUserProfile(ctx context.Context, userID string, update domain.UserProfileUpdate) error
}

package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

var apiTokenColumns = []string{
	"id", "user_id", "token_hash", "token_prefix", "name", "created_at", "last_used_at", "expires_at", "revoked_at",
}

func scanAPIToken(row rowScanner) (domain.APIToken, error) {
	var (
		token      domain.APIToken
		name       sql.NullString
		lastUsedAt sql.NullTime
		expiresAt  sql.NullTime
		revokedAt  sql.NullTime
	)
	if err := row.Scan(
		&token.ID, &token.UserID, &token.TokenHash, &token.Prefix, &name, &token.CreatedAt,
		&lastUsedAt, &expiresAt, &revokedAt,
	); err != nil {
		return domain.APIToken{}, err
	}

	token.Name = nullStringPtr(name)
	token.LastUsedAt = nullTimePtr(lastUsedAt)
	token.ExpiresAt = nullTimePtr(expiresAt)
	token.RevokedAt = nullTimePtr(revokedAt)
	return token, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func (r *Repository) CreateAPIToken(ctx context.Context, token domain.APIToken) error {
	createdAt := token.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	ib := sqlbuilder.InsertInto("api_tokens")
	ib.Cols("id", "user_id", "token_hash", "token_prefix", "name", "created_at", "expires_at")
	ib.Values(token.ID, token.UserID, token.TokenHash, token.Prefix, token.Name, createdAt.UTC(), token.ExpiresAt)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting API token: %w", err)
	}
	return nil
}

func (r *Repository) GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error) {
	sb := sqlbuilder.Select(apiTokenColumns...)
	sb.From("api_tokens")
	sb.Where(sb.Equal("token_hash", tokenHash))

	query, args := sb.Build()
	token, err := scanAPIToken(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.APIToken{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.APIToken{}, fmt.Errorf("fetching API token: %w", err)
	}
	return token, nil
}

func (r *Repository) UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error {
	ub := sqlbuilder.Update("api_tokens")
	ub.Set(ub.Assign("last_used_at", time.Now().UTC()))
	ub.Where(ub.Equal("id", tokenID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating API token last used: %w", err)
	}
	return nil
}

func (r *Repository) ListUserAPITokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	sb := sqlbuilder.Select(apiTokenColumns...)
	sb.From("api_tokens")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("created_at DESC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing API tokens: %w", err)
	}
	defer closeRows(rows)

	tokens := []domain.APIToken{}
	for rows.Next() {
		token, err := scanAPIToken(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning API token: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return tokens, nil
}

func (r *Repository) CountUserActiveAPITokens(ctx context.Context, userID string) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("api_tokens")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.IsNull("revoked_at"),
		sb.Or(sb.IsNull("expires_at"), sb.GreaterThan("expires_at", time.Now().UTC())),
	)

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting API tokens: %w", err)
	}
	return count, nil
}

// RevokeAPIToken only revokes tokens owned by userID.
func (r *Repository) RevokeAPIToken(ctx context.Context, tokenID, userID string) error {
	ub := sqlbuilder.Update("api_tokens")
	ub.Set(ub.Assign("revoked_at", time.Now().UTC()))
	ub.Where(ub.Equal("id", tokenID), ub.Equal("user_id", userID), ub.IsNull("revoked_at"))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("revoking API token: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

var userColumns = []string{"id", "name", "email", "avatar_url", "created_at"}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		user      domain.User
		name      sql.NullString
		email     sql.NullString
		avatarURL sql.NullString
	)
	if err := row.Scan(&user.ID, &name, &email, &avatarURL, &user.CreatedAt); err != nil {
		return domain.User{}, err
	}

	user.Name = nullStringPtr(name)
	user.Email = nullStringPtr(email)
	user.AvatarURL = nullStringPtr(avatarURL)
	return user, nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (domain.User, error) {
	sb := sqlbuilder.Select(userColumns...)
	sb.From("users")
	sb.Where(sb.Equal("id", userID))

	query, args := sb.Build()
	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

func (r *Repository) SearchUsers(
	ctx context.Context,
	excludeUserID, query string,
	limit int,
) ([]domain.User, error) {
	sb := sqlbuilder.Select(userColumns...)
	sb.From("users")
	conds := []string{sb.NotEqual("id", excludeUserID)}
	if query = strings.TrimSpace(query); query != "" {
		pattern := "%" + escapeLike(query) + "%"
		conds = append(conds, sb.Or(sb.Like("name", pattern), sb.Like("email", pattern)))
	}
	sb.Where(conds...)
	sb.OrderBy("name IS NULL", "name", "id")
	sb.Limit(limit)

	sqlQuery, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}
	defer closeRows(rows)

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return users, nil
}

func (r *Repository) UpsertUserProfile(ctx context.Context, userID string, update domain.UserProfileUpdate) error {
	cols := []string{"id"}
	values := []any{userID}

	if update.Name != nil {
		cols = append(cols, "name")
		values = append(values, *update.Name)
	}
	if update.Email != nil {
		cols = append(cols, "email")
		values = append(values, *update.Email)
	}
	if update.AvatarURL != nil {
		cols = append(cols, "avatar_url")
		values = append(values, *update.AvatarURL)
	}

	// A bare insert still needs an assignment to be a no-op on conflict.
	assignments := []string{"id = id"}
	if len(cols) > 1 {
		assignments = assignments[:0]
		for _, col := range cols[1:] {
			assignments = append(assignments, col+" = VALUES("+col+")")
		}
	}

	ib := sqlbuilder.InsertInto("users")
	ib.Cols(cols...)
	ib.Values(values...)
	ib.SQL("ON DUPLICATE KEY UPDATE " + strings.Join(assignments, ", "))

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

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

func (r *Repository) GetPreferences(ctx context.Context, userID string) (*domain.PreferenceProfile, error) {
	sb := sqlbuilder.Select(
		"theme", "notifications", "favorite_brands", "min_price", "max_price", "search_history",
	)
	sb.From("user_preferences")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()

	var (
		theme          sql.NullString
		notifications  sql.NullBool
		favoriteBrands []byte
		minPrice       sql.NullFloat64
		maxPrice       sql.NullFloat64
		searchHistory  []byte
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&theme, &notifications, &favoriteBrands, &minPrice, &maxPrice, &searchHistory,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching preferences: %w", err)
	}

	brands, err := decodeStrings(favoriteBrands)
	if err != nil {
		return nil, fmt.Errorf("favorite brands: %w", err)
	}
	history, err := decodeStrings(searchHistory)
	if err != nil {
		return nil, fmt.Errorf("search history: %w", err)
	}

	profile := &domain.PreferenceProfile{
		Theme:          domain.Theme(theme.String),
		FavoriteBrands: brands,
		SearchHistory:  domain.TrimSearchHistory(history),
	}
	if notifications.Valid {
		profile.Notifications = &notifications.Bool
	}
	if minPrice.Valid || maxPrice.Valid {
		profile.PriceRange = &domain.PriceRange{
			Min: nullFloatPtr(minPrice),
			Max: nullFloatPtr(maxPrice),
		}
	}
	return profile, nil
}

// UpdatePreferences upserts only the columns named by update, so concurrent
// writers touching different fields do not clobber each other. Writers to the
// same field race and the last write wins.
func (r *Repository) UpdatePreferences(ctx context.Context, userID string, update domain.PreferenceUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	cols := []string{"user_id"}
	values := []any{userID}

	if update.Theme != nil {
		cols = append(cols, "theme")
		values = append(values, string(*update.Theme))
	}
	if update.Notifications != nil {
		cols = append(cols, "notifications")
		values = append(values, *update.Notifications)
	}
	if update.FavoriteBrands != nil {
		encoded, err := encodeStrings(*update.FavoriteBrands)
		if err != nil {
			return err
		}
		cols = append(cols, "favorite_brands")
		values = append(values, encoded)
	}
	if update.PriceRange != nil {
		cols = append(cols, "min_price", "max_price")
		values = append(values, update.PriceRange.Min, update.PriceRange.Max)
	}
	if update.SearchHistory != nil {
		encoded, err := encodeStrings(domain.TrimSearchHistory(*update.SearchHistory))
		if err != nil {
			return err
		}
		cols = append(cols, "search_history")
		values = append(values, encoded)
	}

	assignments := make([]string, 0, len(cols)-1)
	for _, col := range cols[1:] {
		assignments = append(assignments, col+" = VALUES("+col+")")
	}

	ib := sqlbuilder.InsertInto("user_preferences")
	ib.Cols(cols...)
	ib.Values(values...)
	ib.SQL("ON DUPLICATE KEY UPDATE " + strings.Join(assignments, ", "))

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting preferences: %w", err)
	}
	return nil
}

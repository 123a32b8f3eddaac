package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

var baseTime = time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *sql.DB {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}
	uri := os.Getenv("MYSQL_URI")
	if uri == "" {
		t.Skip("MYSQL_URI not set")
	}

	db, err := Connect(context.Background(), uri)
	require.NoError(t, err)

	migrationDB, err := Connect(context.Background(), uri)
	require.NoError(t, err)
	require.NoError(t, MigrateUp(migrationDB))

	for _, table := range []string{"friend_recs", "user_preferences", "products", "users", "api_tokens"} {
		_, err := db.ExecContext(context.Background(), "DELETE FROM "+table)
		require.NoError(t, err)
	}

	repo := New(db)
	products := []domain.Product{
		{
			ID: "00000000-0000-0000-0000-000000000001", Name: "Trail Runner", Brand: ptr("Acme"),
			Price: ptr(80.0), Tags: []string{"shoes", "running"}, Embedding: []float32{1, 0, 0},
			CreatedAt: baseTime, UpdatedAt: baseTime,
		},
		{
			ID: "00000000-0000-0000-0000-000000000002", Name: "Silk Scarf", Brand: ptr("Zara"),
			Price: ptr(45.0), Tags: []string{"accessories"}, Embedding: []float32{0, 1, 0},
			CreatedAt: baseTime.Add(time.Hour), UpdatedAt: baseTime.Add(time.Hour),
		},
		{
			ID: "00000000-0000-0000-0000-000000000003", Name: "Wool Coat", Brand: ptr("Acme"),
			Price: ptr(620.0), Tags: []string{"outerwear"},
			CreatedAt: baseTime.Add(2 * time.Hour), UpdatedAt: baseTime.Add(2 * time.Hour),
		},
	}
	for _, p := range products {
		require.NoError(t, repo.CreateProduct(context.Background(), p))
	}

	_, err = db.ExecContext(context.Background(), "INSERT INTO users (id, name) VALUES (?, ?)", "sender-1", "Ada")
	require.NoError(t, err)

	return db
}

func teardownTestDB(t *testing.T, db *sql.DB) {
	for _, table := range []string{"friend_recs", "user_preferences", "products", "users", "api_tokens"} {
		_, err := db.ExecContext(context.Background(), "DELETE FROM "+table)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestRepository_ListProductsByFilter(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	cases := []struct {
		name     string
		filter   domain.ProductFilter
		expected []string
	}{
		{
			name:   "unfiltered_newest_first",
			filter: domain.ProductFilter{},
			expected: []string{
				"00000000-0000-0000-0000-000000000003",
				"00000000-0000-0000-0000-000000000002",
				"00000000-0000-0000-0000-000000000001",
			},
		},
		{
			name:     "brand",
			filter:   domain.ProductFilter{Brand: ptr("Acme")},
			expected: []string{"00000000-0000-0000-0000-000000000003", "00000000-0000-0000-0000-000000000001"},
		},
		{
			name:     "price_bounds",
			filter:   domain.ProductFilter{MinPrice: ptr(50.0), MaxPrice: ptr(100.0)},
			expected: []string{"00000000-0000-0000-0000-000000000001"},
		},
		{
			name:     "tags",
			filter:   domain.ProductFilter{Tags: []string{"accessories", "outerwear"}},
			expected: []string{"00000000-0000-0000-0000-000000000003", "00000000-0000-0000-0000-000000000002"},
		},
	}

	sut := New(db)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			results, err := sut.ListProductsByFilter(context.Background(), c.filter, 10, 0)
			require.NoError(t, err)
			assert.Equal(t, c.expected, productIDs(results))
		})
	}
}

func TestRepository_FetchProductsByID_PreservesOrder(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	ids := []string{"00000000-0000-0000-0000-000000000002", "missing", "00000000-0000-0000-0000-000000000001"}
	results, err := New(db).FetchProductsByID(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Silk Scarf", results[0].Name)
	assert.Nil(t, results[0].Embedding)
	assert.Equal(t, []string{"shoes", "running"}, results[1].Tags)
}

func TestRepository_ListSimilarProductsByVector(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	matches, err := New(db).ListSimilarProductsByVector(context.Background(), []float32{0.9, 0.1, 0}, 0.6, 20)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", matches[0].ID)
	assert.Greater(t, matches[0].Score, 0.6)
}

func TestRepository_Preferences(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	profile, err := sut.GetPreferences(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, profile)

	brands := []string{"Acme"}
	require.NoError(t, sut.UpdatePreferences(ctx, "user-1", domain.PreferenceUpdate{
		FavoriteBrands: &brands,
		PriceRange:     &domain.PriceRange{Max: ptr(250.0)},
	}))

	history := []string{"running shoes"}
	require.NoError(t, sut.UpdatePreferences(ctx, "user-1", domain.PreferenceUpdate{SearchHistory: &history}))

	profile, err = sut.GetPreferences(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, brands, profile.FavoriteBrands)
	assert.Equal(t, history, profile.SearchHistory)
	require.NotNil(t, profile.PriceRange)
	assert.Nil(t, profile.PriceRange.Min)
	assert.InDelta(t, 250.0, *profile.PriceRange.Max, 0.001)
}

func TestRepository_Referrals(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	for i, productID := range []string{"00000000-0000-0000-0000-000000000001", "00000000-0000-0000-0000-000000000002"} {
		require.NoError(t, sut.CreateReferral(ctx, domain.SocialReferral{
			ID:         []string{"r1", "r2"}[i],
			SenderID:   "sender-1",
			ReceiverID: "receiver-1",
			ProductID:  productID,
			Message:    ptr("look"),
			CreatedAt:  baseTime.Add(time.Duration(i) * time.Minute),
		}))
	}

	page, err := sut.ListReceivedReferrals(ctx, "receiver-1", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.True(t, page.HasMore(0))
	require.Len(t, page.Referrals, 1)
	assert.Equal(t, "r2", page.Referrals[0].ID)
	assert.Equal(t, "Ada", page.Referrals[0].Sender.DisplayName())
	require.NotNil(t, page.Referrals[0].Product)
	assert.Equal(t, "Silk Scarf", page.Referrals[0].Product.Name)

	latest, err := sut.ListLatestReceivedReferrals(ctx, "receiver-1", 10)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "r2", latest[0].ID)
	assert.Equal(t, "r1", latest[1].ID)

	stats, err := sut.FetchReferralStats(ctx, "sender-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReferralStats{Sent: 2, Received: 0}, stats)

	require.NoError(t, sut.DeleteReferral(ctx, "r1"))
	_, err = sut.GetReferral(ctx, "r1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_APITokens(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()
	expired := baseTime.Add(-time.Hour)

	tokens := []domain.APIToken{
		{ID: "tok-1", UserID: "user-1", TokenHash: domain.HashAPIToken("user_api|a"), Prefix: "aaaaaaaa", CreatedAt: baseTime},
		{
			ID: "tok-2", UserID: "user-1", TokenHash: domain.HashAPIToken("user_api|b"), Prefix: "bbbbbbbb",
			Name: ptr("ci"), CreatedAt: baseTime.Add(time.Minute), ExpiresAt: &expired,
		},
	}
	for _, token := range tokens {
		require.NoError(t, sut.CreateAPIToken(ctx, token))
	}

	got, err := sut.GetAPITokenByHash(ctx, domain.HashAPIToken("user_api|a"))
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.ID)
	assert.Equal(t, "user-1", got.UserID)

	_, err = sut.GetAPITokenByHash(ctx, domain.HashAPIToken("user_api|missing"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	count, err := sut.CountUserActiveAPITokens(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	listed, err := sut.ListUserAPITokens(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "tok-2", listed[0].ID)

	assert.ErrorIs(t, sut.RevokeAPIToken(ctx, "tok-1", "someone-else"), domain.ErrNotFound)
	require.NoError(t, sut.RevokeAPIToken(ctx, "tok-1", "user-1"))

	count, err = sut.CountUserActiveAPITokens(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRepository_ProductMaintenance(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	brands, err := sut.ListBrands(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Zara"}, brands)

	tags, err := sut.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"accessories", "outerwear", "running", "shoes"}, tags)

	products, err := sut.FetchProductsByID(ctx, []string{"00000000-0000-0000-0000-000000000001"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	renamed := products[0]
	renamed.Name = "Trail Runner 2"
	renamed.UpdatedAt = baseTime.Add(24 * time.Hour)
	require.NoError(t, sut.UpdateProduct(ctx, renamed, true))

	missing, err := sut.ListProductsMissingEmbedding(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"00000000-0000-0000-0000-000000000001", "00000000-0000-0000-0000-000000000003"},
		productIDs(missing))
	assert.Equal(t, "Trail Runner 2", missing[0].Name)

	require.NoError(t, sut.DeleteProduct(ctx, "00000000-0000-0000-0000-000000000002"))
	assert.ErrorIs(t, sut.DeleteProduct(ctx, "00000000-0000-0000-0000-000000000002"), domain.ErrNotFound)
}

func TestRepository_Users(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	require.NoError(t, sut.UpsertUserProfile(ctx, "user-2", domain.UserProfileUpdate{
		Name: ptr("Grace"), Email: ptr("grace@example.com"),
	}))
	require.NoError(t, sut.UpsertUserProfile(ctx, "user-3", domain.UserProfileUpdate{Name: ptr("100%_real")}))
	require.NoError(t, sut.UpsertUserProfile(ctx, "user-2", domain.UserProfileUpdate{AvatarURL: ptr("https://img/g.png")}))

	user, err := sut.GetUser(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "Grace", *user.Name)
	assert.Equal(t, "grace@example.com", *user.Email)
	assert.Equal(t, "https://img/g.png", *user.AvatarURL)

	_, err = sut.GetUser(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cases := []struct {
		name    string
		exclude string
		query   string
		want    []string
	}{
		{name: "everyone_but_self", exclude: "user-2", want: []string{"user-3", "sender-1"}},
		{name: "by_email", exclude: "sender-1", query: "example.com", want: []string{"user-2"}},
		{name: "wildcards_literal", exclude: "sender-1", query: "%_", want: []string{"user-3"}},
		{name: "no_match", exclude: "sender-1", query: "zzz", want: []string{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			users, err := sut.SearchUsers(ctx, c.exclude, c.query, 10)
			require.NoError(t, err)
			ids := make([]string, 0, len(users))
			for _, u := range users {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, c.want, ids)
		})
	}
}

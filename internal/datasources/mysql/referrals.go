package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielyoungkimball/oneoff-mvp/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

var referralColumns = []string{
	"fr.id", "fr.sender_id", "fr.receiver_id", "fr.product_id", "fr.message", "fr.created_at",
	"s.name", "s.avatar_url", "rc.name", "rc.avatar_url",
}

func referralSelect() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.Select(referralColumns...)
	sb.From("friend_recs fr")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "users s", "s.id = fr.sender_id")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "users rc", "rc.id = fr.receiver_id")
	return sb
}

func scanReferral(row rowScanner) (domain.SocialReferral, error) {
	var (
		referral          domain.SocialReferral
		message           sql.NullString
		senderName        sql.NullString
		senderAvatarURL   sql.NullString
		receiverName      sql.NullString
		receiverAvatarURL sql.NullString
	)
	if err := row.Scan(
		&referral.ID, &referral.SenderID, &referral.ReceiverID, &referral.ProductID, &message, &referral.CreatedAt,
		&senderName, &senderAvatarURL, &receiverName, &receiverAvatarURL,
	); err != nil {
		return domain.SocialReferral{}, err
	}

	referral.Message = nullStringPtr(message)
	referral.Sender = domain.UserSummary{
		ID:        referral.SenderID,
		Name:      nullStringPtr(senderName),
		AvatarURL: nullStringPtr(senderAvatarURL),
	}
	referral.Receiver = domain.UserSummary{
		ID:        referral.ReceiverID,
		Name:      nullStringPtr(receiverName),
		AvatarURL: nullStringPtr(receiverAvatarURL),
	}
	return referral, nil
}

func (r *Repository) ListReceivedReferrals(
	ctx context.Context,
	userID string,
	limit, offset int,
) (domain.ReferralPage, error) {
	return r.listReferrals(ctx, "receiver_id", userID, limit, offset)
}

func (r *Repository) ListSentReferrals(
	ctx context.Context,
	userID string,
	limit, offset int,
) (domain.ReferralPage, error) {
	return r.listReferrals(ctx, "sender_id", userID, limit, offset)
}

func (r *Repository) ListLatestReceivedReferrals(
	ctx context.Context,
	userID string,
	limit int,
) ([]domain.SocialReferral, error) {
	return r.queryReferrals(ctx, "receiver_id", userID, limit, 0)
}

// listReferrals pages through one user's inbox or outbox and counts the whole of it.
func (r *Repository) listReferrals(
	ctx context.Context,
	userColumn, userID string,
	limit, offset int,
) (domain.ReferralPage, error) {
	referrals, err := r.queryReferrals(ctx, userColumn, userID, limit, offset)
	if err != nil {
		return domain.ReferralPage{}, err
	}

	cb := sqlbuilder.Select("COUNT(*)")
	cb.From("friend_recs")
	cb.Where(cb.Equal(userColumn, userID))

	countQuery, countArgs := cb.Build()
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return domain.ReferralPage{}, fmt.Errorf("counting referrals: %w", err)
	}

	return domain.ReferralPage{Referrals: referrals, Total: total}, nil
}

// queryReferrals loads one page of referrals newest first, attaching each
// referral's product. Referrals whose product has been deleted keep a nil Product.
func (r *Repository) queryReferrals(
	ctx context.Context,
	userColumn, userID string,
	limit, offset int,
) ([]domain.SocialReferral, error) {
	sb := referralSelect()
	sb.Where(sb.Equal("fr."+userColumn, userID))
	sb.OrderBy("fr.created_at DESC", "fr.id")
	sb.Limit(limit)
	sb.Offset(offset)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing referrals: %w", err)
	}
	defer closeRows(rows)

	referrals := []domain.SocialReferral{}
	productIDs := []string{}
	for rows.Next() {
		referral, err := scanReferral(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning referral: %w", err)
		}
		referrals = append(referrals, referral)
		productIDs = append(productIDs, referral.ProductID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	products, err := r.FetchProductsByID(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	for i := range referrals {
		if product, ok := byID[referrals[i].ProductID]; ok {
			referrals[i].Product = &product
		}
	}

	return referrals, nil
}

func (r *Repository) CreateReferral(ctx context.Context, referral domain.SocialReferral) error {
	ib := sqlbuilder.InsertInto("friend_recs")
	ib.Cols("id", "sender_id", "receiver_id", "product_id", "message", "created_at")
	ib.Values(
		referral.ID, referral.SenderID, referral.ReceiverID, referral.ProductID, referral.Message, referral.CreatedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting referral: %w", err)
	}
	return nil
}

func (r *Repository) GetReferral(ctx context.Context, referralID string) (domain.SocialReferral, error) {
	sb := referralSelect()
	sb.Where(sb.Equal("fr.id", referralID))

	query, args := sb.Build()
	referral, err := scanReferral(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SocialReferral{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.SocialReferral{}, fmt.Errorf("fetching referral: %w", err)
	}
	return referral, nil
}

func (r *Repository) DeleteReferral(ctx context.Context, referralID string) error {
	db := sqlbuilder.DeleteFrom("friend_recs")
	db.Where(db.Equal("id", referralID))

	query, args := db.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting referral: %w", err)
	}
	return nil
}

func (r *Repository) FetchReferralStats(ctx context.Context, userID string) (domain.ReferralStats, error) {
	const query = "SELECT " +
		"(SELECT COUNT(*) FROM friend_recs WHERE sender_id = ?), " +
		"(SELECT COUNT(*) FROM friend_recs WHERE receiver_id = ?)"

	var stats domain.ReferralStats
	if err := r.db.QueryRowContext(ctx, query, userID, userID).Scan(&stats.Sent, &stats.Received); err != nil {
		return domain.ReferralStats{}, fmt.Errorf("counting referrals: %w", err)
	}
	return stats, nil
}

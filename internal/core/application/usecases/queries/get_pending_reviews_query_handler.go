package queries

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingReviewsQueryHandler assembles the admin review backlog from two
// listings: shops pending verification and accounts pending shipper approval.
type GetPendingReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingReviewsQueryHandler creates a handler for review backlog reads.
func NewGetPendingReviewsQueryHandler(db *gorm.DB) GetPendingReviewsQueryHandler {
	return GetPendingReviewsQueryHandler{db: db}
}

// Handle returns the full review backlog. Results are sorted by id for
// consistent output.
func (h GetPendingReviewsQueryHandler) Handle(
	ctx context.Context, query GetPendingReviewsQuery,
) (GetPendingReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingReviewsQueryResponse{}, err
	}

	shops, err := h.loadPendingShops(ctx)
	if err != nil {
		return GetPendingReviewsQueryResponse{}, err
	}

	shippers, err := h.loadPendingShippers(ctx)
	if err != nil {
		return GetPendingReviewsQueryResponse{}, err
	}

	return GetPendingReviewsQueryResponse{
		Shops:    shops,
		Shippers: shippers,
	}, nil
}

func (h GetPendingReviewsQueryHandler) loadPendingShops(ctx context.Context) ([]PendingShopReview, error) {
	shops := make([]PendingShopReview, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_account_id,
			name
		FROM shops
		WHERE verification_status = ?
		ORDER BY id
	`, shop.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s PendingShopReview
		var id, ownerID uuid.UUID

		if err = rows.Scan(&id, &ownerID, &s.Name); err != nil {
			return nil, err
		}

		if s.ShopID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if s.OwnerAccountID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return shops, nil
}

func (h GetPendingReviewsQueryHandler) loadPendingShippers(ctx context.Context) ([]PendingShipperReview, error) {
	shippers := make([]PendingShipperReview, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email
		FROM accounts
		WHERE approval_status = ?
		ORDER BY id
	`, account.ApprovalPending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s PendingShipperReview
		var id uuid.UUID

		if err = rows.Scan(&id, &s.Name, &s.Email); err != nil {
			return nil, err
		}

		if s.AccountID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		shippers = append(shippers, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return shippers, nil
}

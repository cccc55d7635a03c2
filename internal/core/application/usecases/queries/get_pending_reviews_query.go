package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetPendingReviewsQueryIsNotConstructed = errors.New(
		"GetPendingReviewsQuery must be created via NewGetPendingReviewsQuery constructor",
	)
)

// GetPendingReviewsQuery retrieves the admin review backlog: shops submitted
// for verification and shipper applications awaiting a decision.
//
// Example:
//
//	query := NewGetPendingReviewsQuery()
//	backlog, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d shops, %d shippers pending\n",
//	    len(backlog.Shops), len(backlog.Shippers))
type GetPendingReviewsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingReviewsQuery creates a query for the review backlog.
// This is a parameterless query.
func NewGetPendingReviewsQuery() GetPendingReviewsQuery {
	return GetPendingReviewsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingReviewsQueryIsNotConstructed)
}

// GetPendingReviewsQueryResponse is the combined review backlog.
type GetPendingReviewsQueryResponse struct {
	Shops    []PendingShopReview
	Shippers []PendingShipperReview
}

// PendingShopReview is a shop awaiting a verification decision.
type PendingShopReview struct {
	ShopID         kernel.UUID
	OwnerAccountID kernel.UUID
	Name           string
}

// PendingShipperReview is an account awaiting a shipper approval decision.
type PendingShipperReview struct {
	AccountID kernel.UUID
	Name      string
	Email     string
}

package commands

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/pkg/errs"
)

// ReviewShopResponse is the projection of a decided shop verification.
type ReviewShopResponse struct {
	ShopID             string
	VerificationStatus shop.VerificationStatus
	OwnerRole          account.Role
}

// ReviewShopCommandHandler orchestrates the shop verification decision.
// Loads the shop under a row lock, applies the transition, and — on
// rejection — reverts the owning account's seller role within the same
// transaction, so the two mutations commit or roll back together.
//
// Example:
//
//	handler := NewReviewShopCommandHandler(uowFactory)
//	resp, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrForbidden):
//	    // caller is not an admin
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such shop
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // shop is not pending review
//	}
type ReviewShopCommandHandler struct {
	uowFactory ShopReviewUoWFactory
}

// NewReviewShopCommandHandler creates a handler for shop verification decisions.
func NewReviewShopCommandHandler(uowFactory ShopReviewUoWFactory) ReviewShopCommandHandler {
	return ReviewShopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shop review command.
// Only admins may review. The second of two concurrent decisions on the same
// shop observes post-commit state through the row lock and fails with an
// invalid-transition error instead of silently succeeding twice.
func (h ReviewShopCommandHandler) Handle(ctx context.Context, command ReviewShopCommand) (ReviewShopResponse, error) {
	if err := command.Validate(); err != nil {
		return ReviewShopResponse{}, err
	}

	if !command.Caller().IsAdmin() {
		return ReviewShopResponse{}, errs.NewForbiddenError("shop review requires the admin role")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReviewShopResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shopRepo := uow.ShopRepository()
	accountRepo := uow.AccountRepository()

	target, err := shopRepo.GetForUpdate(ctx, command.ShopID())
	if err != nil {
		return ReviewShopResponse{}, err
	}

	owner, err := accountRepo.GetForUpdate(ctx, target.OwnerAccountID())
	if err != nil {
		return ReviewShopResponse{}, err
	}

	switch command.Decision() {
	case ReviewDecisionApprove:
		if err = target.Approve(); err != nil {
			return ReviewShopResponse{}, err
		}
	case ReviewDecisionReject:
		if err = target.Reject(); err != nil {
			return ReviewShopResponse{}, err
		}
		owner.RevertToCustomer()
	default:
		return ReviewShopResponse{}, errs.NewValueIsInvalidError("review decision is invalid")
	}

	if err = shopRepo.Update(ctx, target); err != nil {
		return ReviewShopResponse{}, err
	}

	if err = accountRepo.Update(ctx, owner); err != nil {
		return ReviewShopResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReviewShopResponse{}, err
	}

	return ReviewShopResponse{
		ShopID:             target.ID().String(),
		VerificationStatus: target.VerificationStatus(),
		OwnerRole:          owner.Role(),
	}, nil
}

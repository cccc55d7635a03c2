package commands

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/pkg/errs"
)

// ReviewShipperResponse is the projection of a decided shipper enrollment.
type ReviewShipperResponse struct {
	AccountID      string
	Role           account.Role
	ApprovalStatus account.ApprovalStatus
}

// ReviewShipperCommandHandler orchestrates the shipper enrollment decision.
// Loads the account under a row lock and applies the approval gate
// transition; rejection reverts the role and clears the enrollment state in
// the same write.
type ReviewShipperCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewReviewShipperCommandHandler creates a handler for shipper enrollment decisions.
func NewReviewShipperCommandHandler(uowFactory AccountUoWFactory) ReviewShipperCommandHandler {
	return ReviewShipperCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipper review command.
// Only admins may review. Accounts that do not hold the shipper role, or
// whose approval status is not pending, fail with an invalid-transition
// error and are left unchanged.
func (h ReviewShipperCommandHandler) Handle(
	ctx context.Context, command ReviewShipperCommand,
) (ReviewShipperResponse, error) {
	if err := command.Validate(); err != nil {
		return ReviewShipperResponse{}, err
	}

	if !command.Caller().IsAdmin() {
		return ReviewShipperResponse{}, errs.NewForbiddenError("shipper review requires the admin role")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReviewShipperResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	candidate, err := accountRepo.GetForUpdate(ctx, command.AccountID())
	if err != nil {
		return ReviewShipperResponse{}, err
	}

	switch command.Decision() {
	case ReviewDecisionApprove:
		if err = candidate.ApproveShipper(); err != nil {
			return ReviewShipperResponse{}, err
		}
	case ReviewDecisionReject:
		if err = candidate.RejectShipper(); err != nil {
			return ReviewShipperResponse{}, err
		}
	default:
		return ReviewShipperResponse{}, errs.NewValueIsInvalidError("review decision is invalid")
	}

	if err = accountRepo.Update(ctx, candidate); err != nil {
		return ReviewShipperResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReviewShipperResponse{}, err
	}

	return ReviewShipperResponse{
		AccountID:      candidate.ID().String(),
		Role:           candidate.Role(),
		ApprovalStatus: candidate.ApprovalStatus(),
	}, nil
}

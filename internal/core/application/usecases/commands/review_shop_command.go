package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrReviewShopCommandIsNotConstructed = errors.New(
	"ReviewShopCommand must be created via NewReviewShopCommand constructor",
)

// ReviewShopCommand decides a pending shop verification: it either approves
// the shop (verified, owner keeps selling) or rejects it. Rejection carries a
// compensating transition — if the owning account holds the seller role it
// reverts to customer, so a rejected shop never leaves its owner privileged.
//
// Example:
//
//	cmd, err := NewReviewShopCommand(shopID, ReviewDecisionReject, caller)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, cmd)
type ReviewShopCommand struct {
	shopID   kernel.UUID
	decision ReviewDecision
	caller   identity.CallerIdentity
	guard    guard.ConstructorGuard
}

// NewReviewShopCommand creates a validated command to decide a shop verification.
func NewReviewShopCommand(
	shopID kernel.UUID, decision ReviewDecision, caller identity.CallerIdentity,
) (ReviewShopCommand, error) {
	if err := shopID.Validate(); err != nil {
		return ReviewShopCommand{}, err
	}
	if err := decision.Validate(); err != nil {
		return ReviewShopCommand{}, err
	}
	if err := caller.Validate(); err != nil {
		return ReviewShopCommand{}, err
	}

	return ReviewShopCommand{
		shopID:   shopID,
		decision: decision,
		caller:   caller,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ShopID returns the identifier of the shop under review.
func (c ReviewShopCommand) ShopID() kernel.UUID {
	return c.shopID
}

// Decision returns the review outcome to apply.
func (c ReviewShopCommand) Decision() ReviewDecision {
	return c.decision
}

// Caller returns the identity performing the review.
func (c ReviewShopCommand) Caller() identity.CallerIdentity {
	return c.caller
}

// Validate ensures the command was created through the constructor.
func (c ReviewShopCommand) Validate() error {
	return c.guard.Validate(ErrReviewShopCommandIsNotConstructed)
}

package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrReviewShipperCommandIsNotConstructed = errors.New(
	"ReviewShipperCommand must be created via NewReviewShipperCommand constructor",
)

// ReviewShipperCommand decides a pending shipper enrollment: approval lets
// the account operate shipments, rejection reverts the role to customer and
// clears the shipper-specific state.
type ReviewShipperCommand struct {
	accountID kernel.UUID
	decision  ReviewDecision
	caller    identity.CallerIdentity
	guard     guard.ConstructorGuard
}

// NewReviewShipperCommand creates a validated command to decide a shipper enrollment.
func NewReviewShipperCommand(
	accountID kernel.UUID, decision ReviewDecision, caller identity.CallerIdentity,
) (ReviewShipperCommand, error) {
	if err := accountID.Validate(); err != nil {
		return ReviewShipperCommand{}, err
	}
	if err := decision.Validate(); err != nil {
		return ReviewShipperCommand{}, err
	}
	if err := caller.Validate(); err != nil {
		return ReviewShipperCommand{}, err
	}

	return ReviewShipperCommand{
		accountID: accountID,
		decision:  decision,
		caller:    caller,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// AccountID returns the identifier of the shipper account under review.
func (c ReviewShipperCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Decision returns the review outcome to apply.
func (c ReviewShipperCommand) Decision() ReviewDecision {
	return c.decision
}

// Caller returns the identity performing the review.
func (c ReviewShipperCommand) Caller() identity.CallerIdentity {
	return c.caller
}

// Validate ensures the command was created through the constructor.
func (c ReviewShipperCommand) Validate() error {
	return c.guard.Validate(ErrReviewShipperCommandIsNotConstructed)
}

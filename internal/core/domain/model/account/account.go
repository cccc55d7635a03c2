package account

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not created
	// through the NewAccount or RestoreAccount factory methods.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructor")
)

// Account represents an identity on the marketplace. It is the aggregate root
// for the shipper approval sub-machine and the target of compensating role
// transitions triggered by shop verification.
//
// Account follows these invariants:
//   - Must have a valid unique identifier
//   - Role and status must be valid enum values
//   - Approval status is meaningful only for the shipper role: a non-shipper
//     account always carries ApprovalNone, a shipper account never does
//   - Can only be created through NewAccount or RestoreAccount
type Account struct {
	id             kernel.UUID
	name           string
	email          string
	role           Role
	status         Status
	approvalStatus ApprovalStatus
	isConstructed  bool
}

// NewAccount creates a new Account with validation. The account starts in
// Active standing. An account created directly with the shipper role enters
// the approval gate in Pending state; all other roles carry ApprovalNone.
//
// Returns a validation error if the identifier, name, or role is invalid.
func NewAccount(id kernel.UUID, name, email string, role Role) (*Account, error) {
	approval := ApprovalNone
	if role == RoleShipper {
		approval = ApprovalPending
	}

	acc := &Account{
		status:         StatusActive,
		approvalStatus: approval,
		isConstructed:  true,
	}

	if err := errors.Join(
		acc.setID(id),
		acc.setName(name),
		acc.setRole(role),
	); err != nil {
		return nil, err
	}

	acc.email = email
	return acc, nil
}

// RestoreAccount reconstructs an Account from persistence.
// All fields are validated, including the role/approval consistency invariant.
func RestoreAccount(
	id kernel.UUID, name, email string, role Role, status Status, approval ApprovalStatus,
) (*Account, error) {
	acc := &Account{
		email:         email,
		isConstructed: true,
	}

	if err := errors.Join(
		acc.setID(id),
		acc.setName(name),
		acc.setRole(role),
		status.Validate(),
		approval.Validate(),
	); err != nil {
		return nil, err
	}

	if role != RoleShipper && approval != ApprovalNone {
		return nil, errs.NewValueIsInvalidErrorWithCause("approval status is invalid",
			fmt.Errorf("role %s cannot carry approval status %s", role, approval))
	}
	if role == RoleShipper && approval == ApprovalNone {
		return nil, errs.NewValueIsInvalidErrorWithCause("approval status is invalid",
			fmt.Errorf("role %s requires an approval status", role))
	}

	acc.status = status
	acc.approvalStatus = approval
	return acc, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the display name of the account.
func (a *Account) Name() string {
	return a.name
}

// Email returns the contact email of the account.
func (a *Account) Email() string {
	return a.email
}

// Role returns the current role of the account.
func (a *Account) Role() Role {
	return a.role
}

// Status returns the current standing of the account.
func (a *Account) Status() Status {
	return a.status
}

// ApprovalStatus returns the shipper approval state of the account.
// For non-shipper roles this is always ApprovalNone.
func (a *Account) ApprovalStatus() ApprovalStatus {
	return a.approvalStatus
}

// ApplyAsShipper enrolls a customer account as a shipper candidate.
//
// Business rules:
//   - Only an Active account may apply
//   - Only the customer role may apply (sellers and admins cannot)
//
// On success the role becomes Shipper and the approval gate enters Pending.
func (a *Account) ApplyAsShipper() error {
	if a.status != StatusActive {
		return errs.NewInvalidTransitionErrorWithCause("account", a.status.String(), StatusActive.String(),
			fmt.Errorf("only active accounts can apply as shipper"))
	}
	if a.role != RoleCustomer {
		return errs.NewInvalidTransitionError("account role", a.role.String(), RoleShipper.String())
	}

	a.role = RoleShipper
	a.approvalStatus = ApprovalPending
	return nil
}

// ApproveShipper moves the shipper enrollment from Pending to Approved.
//
// Business rules:
//   - The account must hold the shipper role
//   - The approval status must be Pending; Approved and Rejected are terminal
func (a *Account) ApproveShipper() error {
	if a.role != RoleShipper {
		return errs.NewInvalidTransitionErrorWithCause(
			"shipper approval", a.approvalStatus.String(), ApprovalApproved.String(),
			fmt.Errorf("account role is %s, not %s", a.role, RoleShipper))
	}

	newStatus, err := a.approvalStatus.Approve()
	if err != nil {
		return err
	}

	a.approvalStatus = newStatus
	return nil
}

// RejectShipper declines a pending shipper enrollment.
//
// As a compensating transition the account must not stay privileged:
// the role reverts to Customer and the shipper-specific approval state
// is cleared, so a later re-application starts from scratch.
func (a *Account) RejectShipper() error {
	if a.role != RoleShipper {
		return errs.NewInvalidTransitionErrorWithCause(
			"shipper approval", a.approvalStatus.String(), ApprovalRejected.String(),
			fmt.Errorf("account role is %s, not %s", a.role, RoleShipper))
	}

	if _, err := a.approvalStatus.Reject(); err != nil {
		return err
	}

	a.role = RoleCustomer
	a.approvalStatus = ApprovalNone
	return nil
}

// RevertToCustomer applies the compensating role transition used when the
// account's shop verification is rejected. A seller reverts to customer;
// any other role is left unchanged.
func (a *Account) RevertToCustomer() {
	if a.role == RoleSeller {
		a.role = RoleCustomer
	}
}

// IsApprovedShipper reports whether the account may operate shipments:
// it holds the shipper role and has passed the approval gate.
func (a *Account) IsApprovedShipper() bool {
	return a.role == RoleShipper && a.approvalStatus == ApprovalApproved
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

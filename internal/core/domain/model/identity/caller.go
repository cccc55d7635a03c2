// Package identity provides the caller identity value object consumed by
// every operation in the application layer. Token issuance and validation
// are external collaborators: this package only models the already-resolved
// fact of who is calling.
package identity

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
)

// ErrCallerIsNotConstructed is returned when a CallerIdentity was not created
// via NewCallerIdentity.
var ErrCallerIsNotConstructed = errors.New("CallerIdentity must be created via NewCallerIdentity constructor")

// CallerIdentity is the resolved identity of the account behind an inbound
// request: its account id and role. It is opaque to the domain in the sense
// that no token material is carried, only the resolved facts.
type CallerIdentity struct {
	accountID     kernel.UUID
	role          account.Role
	isConstructed bool
}

// NewCallerIdentity creates a CallerIdentity with validation.
func NewCallerIdentity(accountID kernel.UUID, role account.Role) (CallerIdentity, error) {
	if err := accountID.Validate(); err != nil {
		return CallerIdentity{}, err
	}
	if err := role.Validate(); err != nil {
		return CallerIdentity{}, err
	}

	return CallerIdentity{
		accountID:     accountID,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the CallerIdentity was properly constructed.
func (c CallerIdentity) Validate() error {
	if !c.isConstructed {
		return ErrCallerIsNotConstructed
	}
	return nil
}

// AccountID returns the caller's account identifier.
func (c CallerIdentity) AccountID() kernel.UUID {
	return c.accountID
}

// Role returns the caller's role.
func (c CallerIdentity) Role() account.Role {
	return c.role
}

// IsAdmin reports whether the caller holds the admin role.
func (c CallerIdentity) IsAdmin() bool {
	return c.role == account.RoleAdmin
}

package account

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role represents the privilege level of an account.
// It is a value object with a fixed vocabulary used both for persistence
// and for authorization checks in the application layer.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer is the default role for registered accounts.
	RoleCustomer

	// RoleSeller is held by accounts that own a shop.
	// The role is granted when the shop is submitted and revoked
	// if the shop verification is rejected.
	RoleSeller

	// RoleShipper is held by accounts enrolled as carriers.
	// A shipper is only operational once its approval status is Approved.
	RoleShipper

	// RoleAdmin is held by operations staff.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleCustomer: "CUSTOMER",
		RoleSeller:   "SELLER",
		RoleShipper:  "SHIPPER",
		RoleAdmin:    "ADMIN",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "CUSTOMER",
		RoleSeller:   "SELLER",
		RoleShipper:  "SHIPPER",
		RoleAdmin:    "ADMIN",
	}
}

// RoleFromString parses a role literal ("CUSTOMER", "SELLER", "SHIPPER", "ADMIN").
// An unrecognized literal is an error, never a silent default.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the uppercase literal of the role.
// It implements the fmt.Stringer interface and is safe to call
// on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

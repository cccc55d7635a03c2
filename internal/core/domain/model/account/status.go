package account

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the standing of an account on the marketplace.
// It is orthogonal to Role: a banned seller keeps the seller role
// but cannot act until reinstated.
type Status int

const (
	// StatusUnknown represents an invalid or undefined account status.
	StatusUnknown Status = iota

	// StatusActive is the normal operational standing.
	StatusActive

	// StatusInactive marks a deactivated account.
	StatusInactive

	// StatusBanned marks an account suspended by operations staff.
	StatusBanned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "UNKNOWN",
		StatusActive:   "ACTIVE",
		StatusInactive: "INACTIVE",
		StatusBanned:   "BANNED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:   "ACTIVE",
		StatusInactive: "INACTIVE",
		StatusBanned:   "BANNED",
	}
}

// StatusFromString parses an account status literal.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("account status is invalid",
		fmt.Errorf("%q is not a valid account status", s))
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("account status is invalid",
			fmt.Errorf("%d is not a valid account status", s))
	}
	return nil
}

// String returns the uppercase literal of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

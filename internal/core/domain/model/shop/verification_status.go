package shop

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// VerificationStatus represents the lifecycle state of a shop's verification.
// It implements a state machine with defined transitions so shops follow the
// correct review workflow.
//
// State transitions:
//
//	Unverified ──> Pending ──┬──> Verified
//	                         └──> Rejected [+ owner role revert]
//
// Verified and Rejected are terminal: re-reviewing a decided shop is an
// invalid transition, not idempotent success, so callers must not retry
// blindly.
type VerificationStatus int

const (
	// VerificationUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized VerificationStatus values.
	VerificationUnknown VerificationStatus = iota

	// Unverified is the initial status of a newly registered shop.
	Unverified

	// Pending means the shop submitted its documents and awaits review.
	Pending

	// Verified means the shop passed review and may sell.
	Verified

	// Rejected means the shop failed review.
	Rejected
)

func getVerificationStatusStrings() map[VerificationStatus]string {
	return map[VerificationStatus]string{
		VerificationUnknown: "UNKNOWN",
		Unverified:          "UNVERIFIED",
		Pending:             "PENDING",
		Verified:            "VERIFIED",
		Rejected:            "REJECTED",
	}
}

func getValidVerificationStatusStrings() map[VerificationStatus]string {
	//nolint:exhaustive // VerificationUnknown is intentionally excluded as it's invalid
	return map[VerificationStatus]string{
		Unverified: "UNVERIFIED",
		Pending:    "PENDING",
		Verified:   "VERIFIED",
		Rejected:   "REJECTED",
	}
}

// VerificationStatusFromString parses a verification status literal.
func VerificationStatusFromString(s string) (VerificationStatus, error) {
	for status, str := range getValidVerificationStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return VerificationUnknown, errs.NewValueIsInvalidErrorWithCause("verification status is invalid",
		fmt.Errorf("%q is not a valid verification status", s))
}

// Validate checks if the VerificationStatus value is one of the defined statuses.
func (s VerificationStatus) Validate() error {
	if _, ok := getValidVerificationStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("verification status is invalid",
			fmt.Errorf("%d is not a valid verification status", s))
	}
	return nil
}

// String returns the uppercase literal of the status.
// It implements the fmt.Stringer interface and is safe to call
// on any VerificationStatus value, including invalid ones.
func (s VerificationStatus) String() string {
	if str, ok := getVerificationStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Submit transitions the status to Pending.
// Only an Unverified shop can be submitted for review.
func (s VerificationStatus) Submit() (VerificationStatus, error) {
	if s != Unverified {
		return 0, errs.NewInvalidTransitionError("shop", s.String(), Pending.String())
	}
	return Pending, nil
}

// Approve transitions the status to Verified.
// Only a Pending shop can be approved.
func (s VerificationStatus) Approve() (VerificationStatus, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("shop", s.String(), Verified.String())
	}
	return Verified, nil
}

// Reject transitions the status to Rejected.
// Only a Pending shop can be rejected.
func (s VerificationStatus) Reject() (VerificationStatus, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("shop", s.String(), Rejected.String())
	}
	return Rejected, nil
}

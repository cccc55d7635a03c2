package account

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ApprovalStatus represents the shipper enrollment gate of an account.
// It is meaningful only while the account holds the shipper role; for all
// other roles it is ApprovalNone.
//
// State transitions:
//
//	None ──> Pending ──┬──> Approved
//	                   └──> Rejected [+ role revert]
//
// Approved and Rejected are terminal: re-reviewing a decided enrollment
// is an invalid transition, not idempotent success.
type ApprovalStatus int

const (
	// ApprovalNone means the account is not enrolled as a shipper.
	// This is the zero value and the only valid value for non-shipper roles.
	ApprovalNone ApprovalStatus = iota

	// ApprovalPending means the enrollment awaits an operations decision.
	ApprovalPending

	// ApprovalApproved means the shipper may operate shipments.
	ApprovalApproved

	// ApprovalRejected means the enrollment was declined.
	ApprovalRejected
)

func getApprovalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		ApprovalNone:     "NONE",
		ApprovalPending:  "PENDING",
		ApprovalApproved: "APPROVED",
		ApprovalRejected: "REJECTED",
	}
}

// ApprovalStatusFromString parses an approval status literal.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	for status, str := range getApprovalStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ApprovalNone, errs.NewValueIsInvalidErrorWithCause("approval status is invalid",
		fmt.Errorf("%q is not a valid approval status", s))
}

// Validate checks if the ApprovalStatus value is one of the defined statuses.
// Unlike the other enums, the zero value (ApprovalNone) is valid: it marks
// accounts that never enrolled as shippers.
func (s ApprovalStatus) Validate() error {
	if _, ok := getApprovalStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("approval status is invalid",
			fmt.Errorf("%d is not a valid approval status", s))
	}
	return nil
}

// String returns the uppercase literal of the approval status.
func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Approve transitions the approval status to Approved.
// Only a Pending enrollment can be approved.
func (s ApprovalStatus) Approve() (ApprovalStatus, error) {
	if s != ApprovalPending {
		return 0, errs.NewInvalidTransitionError("shipper approval", s.String(), ApprovalApproved.String())
	}
	return ApprovalApproved, nil
}

// Reject transitions the approval status to Rejected.
// Only a Pending enrollment can be rejected.
func (s ApprovalStatus) Reject() (ApprovalStatus, error) {
	if s != ApprovalPending {
		return 0, errs.NewInvalidTransitionError("shipper approval", s.String(), ApprovalRejected.String())
	}
	return ApprovalRejected, nil
}

package complaint

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a complaint.
//
// State transitions:
//
//	Pending ──> InProgress ──┬──> Resolved
//	    │            ▲       └──> Closed
//	    │            │ (reopen)
//	    └────────────┴──────────────┘
//
// Resolved and Closed are terminal for SLA purposes: entering either sets
// the resolution timestamp. Reopening is allowed and moves the complaint
// back to InProgress without clearing the resolution timestamp.
type Status int

const (
	// StatusUnknown represents an invalid or undefined complaint status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a filed complaint.
	StatusPending

	// StatusInProgress means operations staff is working the complaint.
	StatusInProgress

	// StatusResolved means the complaint was settled. Terminal.
	StatusResolved

	// StatusClosed means the complaint was closed without resolution
	// (e.g. withdrawn or invalid). Terminal.
	StatusClosed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusPending:    "PENDING",
		StatusInProgress: "IN_PROGRESS",
		StatusResolved:   "RESOLVED",
		StatusClosed:     "CLOSED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "PENDING",
		StatusInProgress: "IN_PROGRESS",
		StatusResolved:   "RESOLVED",
		StatusClosed:     "CLOSED",
	}
}

// StatusFromString parses a complaint status literal.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("complaint status is invalid",
		fmt.Errorf("%q is not a valid complaint status", s))
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("complaint status is invalid",
			fmt.Errorf("%d is not a valid complaint status", s))
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

// IsTerminal reports whether the status ends the SLA clock.
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}

package shipment

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the carrier-facing lifecycle of a shipment.
//
// The vocabulary follows the carrier's view of the parcel, which is wider
// than the order's shipping axis. Terminal states are Delivered, Failed,
// and Returned; no transition is defined out of a terminal state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined shipment status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when the shipment is routed to a carrier.
	StatusPending

	// StatusReadyForPickup means the parcel awaits carrier collection.
	StatusReadyForPickup

	// StatusPickedUp means the carrier collected the parcel.
	StatusPickedUp

	// StatusInTransit means the parcel is moving through the carrier network.
	StatusInTransit

	// StatusOutForDelivery means the parcel is on the last leg to the recipient.
	StatusOutForDelivery

	// StatusDelivered means the parcel reached the recipient. Terminal.
	StatusDelivered

	// StatusFailed means the delivery could not be completed. Terminal.
	StatusFailed

	// StatusReturned means the parcel went back to the sender. Terminal.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusReadyForPickup: "READY_FOR_PICKUP",
		StatusPickedUp:       "PICKED_UP",
		StatusInTransit:      "IN_TRANSIT",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusFailed:         "FAILED",
		StatusReturned:       "RETURNED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "PENDING",
		StatusReadyForPickup: "READY_FOR_PICKUP",
		StatusPickedUp:       "PICKED_UP",
		StatusInTransit:      "IN_TRANSIT",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusFailed:         "FAILED",
		StatusReturned:       "RETURNED",
	}
}

// StatusFromString parses a carrier status literal.
//
// An unrecognized literal is rejected with a validation error. It must never
// fall back to a default status: a silent default would mutate state based
// on garbage input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("shipment status is invalid",
		fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipment status is invalid",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the uppercase literal of the status.
// It implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is defined from the status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed || s == StatusReturned
}

package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the commerce lifecycle of an order.
//
// The order carries three independent status axes (lifecycle, payment,
// shipping) rather than one combined enum: a shipment vendor's status
// vocabulary does not map 1:1 onto commerce lifecycle semantics. For
// example "out for delivery" has a shipping-status meaning but no distinct
// order-lifecycle meaning.
type Status int

const (
	// StatusUnknown represents an invalid or undefined order status.
	StatusUnknown Status = iota

	// StatusPending is the initial lifecycle state of a placed order.
	StatusPending

	// StatusConfirmed means the seller accepted the order.
	StatusConfirmed

	// StatusShipped means the active shipment left the seller.
	StatusShipped

	// StatusDelivered means the active shipment reached the customer.
	StatusDelivered

	// StatusCancelled means the order was cancelled before fulfillment.
	StatusCancelled

	// StatusReturned means the order came back to the seller.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusConfirmed: "CONFIRMED",
		StatusShipped:   "SHIPPED",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
		StatusReturned:  "RETURNED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "PENDING",
		StatusConfirmed: "CONFIRMED",
		StatusShipped:   "SHIPPED",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
		StatusReturned:  "RETURNED",
	}
}

// StatusFromString parses an order status literal.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("order status is invalid",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status is invalid",
			fmt.Errorf("%d is not a valid order status", s))
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

package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ShippingStatus represents the shipping axis of an order.
// It is derived from the active shipment by the fulfillment cascade and is
// deliberately coarser than the shipment's own vocabulary: e.g. a shipment
// that is OUT_FOR_DELIVERY is still IN_TRANSIT on the order.
type ShippingStatus int

const (
	// ShippingUnknown represents an invalid or undefined shipping status.
	ShippingUnknown ShippingStatus = iota

	// ShippingPending means the shipment has not been picked up yet.
	ShippingPending

	// ShippingPickedUp means the carrier collected the shipment.
	ShippingPickedUp

	// ShippingInTransit means the shipment is on its way.
	ShippingInTransit

	// ShippingDelivered means the shipment reached the customer.
	ShippingDelivered

	// ShippingFailed means the delivery attempt failed.
	ShippingFailed
)

func getShippingStatusStrings() map[ShippingStatus]string {
	return map[ShippingStatus]string{
		ShippingUnknown:   "UNKNOWN",
		ShippingPending:   "PENDING",
		ShippingPickedUp:  "PICKED_UP",
		ShippingInTransit: "IN_TRANSIT",
		ShippingDelivered: "DELIVERED",
		ShippingFailed:    "FAILED",
	}
}

func getValidShippingStatusStrings() map[ShippingStatus]string {
	//nolint:exhaustive // ShippingUnknown is intentionally excluded as it's invalid
	return map[ShippingStatus]string{
		ShippingPending:   "PENDING",
		ShippingPickedUp:  "PICKED_UP",
		ShippingInTransit: "IN_TRANSIT",
		ShippingDelivered: "DELIVERED",
		ShippingFailed:    "FAILED",
	}
}

// ShippingStatusFromString parses a shipping status literal.
func ShippingStatusFromString(s string) (ShippingStatus, error) {
	for status, str := range getValidShippingStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ShippingUnknown, errs.NewValueIsInvalidErrorWithCause("shipping status is invalid",
		fmt.Errorf("%q is not a valid shipping status", s))
}

// Validate checks if the ShippingStatus value is one of the defined statuses.
func (s ShippingStatus) Validate() error {
	if _, ok := getValidShippingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipping status is invalid",
			fmt.Errorf("%d is not a valid shipping status", s))
	}
	return nil
}

// String returns the uppercase literal of the status.
func (s ShippingStatus) String() string {
	if str, ok := getShippingStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

package services

import (
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shipment"
)

// FulfillmentCascade is a domain service that applies a shipment status
// change and deterministically propagates it into the owning order.
//
// The cascade table maps each shipment status to the order fields it drives.
// Statuses without an entry for a field leave that field untouched; the
// shipment's own status is always set to the requested value regardless of
// the table.
//
// Cascade table:
//
//	shipment status    order.shippingStatus   order.orderStatus
//	PENDING            —                      —
//	READY_FOR_PICKUP   PENDING                —
//	PICKED_UP          PICKED_UP              —
//	IN_TRANSIT         IN_TRANSIT             SHIPPED
//	OUT_FOR_DELIVERY   IN_TRANSIT             —
//	DELIVERED          DELIVERED              DELIVERED
//	FAILED             FAILED                 —
//	RETURNED           —                      —
//
// RETURNED has no effect on the order even though an order-level RETURNED
// status exists; the no-op is preserved deliberately until product intent
// says otherwise.
type FulfillmentCascade struct{}

// NewFulfillmentCascade creates a new FulfillmentCascade instance.
func NewFulfillmentCascade() FulfillmentCascade {
	return FulfillmentCascade{}
}

// cascadeEntry names the order fields driven by one shipment status.
// Nil pointers mean the field is left untouched.
type cascadeEntry struct {
	shippingStatus *order.ShippingStatus
	orderStatus    *order.Status
}

func shippingPtr(s order.ShippingStatus) *order.ShippingStatus { return &s }
func orderPtr(s order.Status) *order.Status                    { return &s }

// getCascadeTable returns the shipment-status-to-order-fields mapping.
// Statuses absent from the map leave the order untouched.
func getCascadeTable() map[shipment.Status]cascadeEntry {
	return map[shipment.Status]cascadeEntry{
		shipment.StatusReadyForPickup: {shippingStatus: shippingPtr(order.ShippingPending)},
		shipment.StatusPickedUp:       {shippingStatus: shippingPtr(order.ShippingPickedUp)},
		shipment.StatusInTransit: {
			shippingStatus: shippingPtr(order.ShippingInTransit),
			orderStatus:    orderPtr(order.StatusShipped),
		},
		shipment.StatusOutForDelivery: {shippingStatus: shippingPtr(order.ShippingInTransit)},
		shipment.StatusDelivered: {
			shippingStatus: shippingPtr(order.ShippingDelivered),
			orderStatus:    orderPtr(order.StatusDelivered),
		},
		shipment.StatusFailed: {shippingStatus: shippingPtr(order.ShippingFailed)},
	}
}

// Apply validates both aggregates, sets the shipment status to the requested
// value, and updates the owning order's fields per the cascade table.
//
// Both mutations belong to one unit of work: the caller must persist the
// shipment and the order in the same transaction so a crash between the two
// is never observable.
//
// Returns an error without mutating anything if the shipment is already in a
// terminal status or the requested status is invalid.
func (f FulfillmentCascade) Apply(sh *shipment.Shipment, o *order.Order, newStatus shipment.Status) error {
	if err := sh.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if err := sh.ChangeStatus(newStatus); err != nil {
		return err
	}

	entry, ok := getCascadeTable()[newStatus]
	if !ok {
		return nil
	}

	if entry.shippingStatus != nil {
		if err := o.UpdateShippingStatus(*entry.shippingStatus); err != nil {
			return err
		}
	}
	if entry.orderStatus != nil {
		if err := o.UpdateStatus(*entry.orderStatus); err != nil {
			return err
		}
	}
	return nil
}

package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a purchase on the marketplace. It belongs to one customer
// account and one shop, and carries three independent status axes: commerce
// lifecycle, payment, and shipping.
//
// Within this core the order is mutated only by the fulfillment cascade:
// exactly one active shipment drives updates to the lifecycle and shipping
// axes, and those updates commit atomically with the shipment's own status.
//
// Order follows these invariants:
//   - Must have valid unique, customer, and shop identifiers
//   - All three status axes must hold valid enum values
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id             kernel.UUID
	customerID     kernel.UUID
	shopID         kernel.UUID
	status         Status
	paymentStatus  PaymentStatus
	shippingStatus ShippingStatus
	isConstructed  bool
}

// NewOrder creates a new Order with validation.
// The order starts Pending on the lifecycle axis, Unpaid on the payment axis,
// and Pending on the shipping axis.
func NewOrder(id, customerID, shopID kernel.UUID) (*Order, error) {
	o := &Order{
		status:         StatusPending,
		paymentStatus:  PaymentUnpaid,
		shippingStatus: ShippingPending,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShopID(shopID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, validating all fields.
func RestoreOrder(
	id, customerID, shopID kernel.UUID,
	status Status, paymentStatus PaymentStatus, shippingStatus ShippingStatus,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setShopID(shopID),
		status.Validate(),
		paymentStatus.Validate(),
		shippingStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.shippingStatus = shippingStatus
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the purchasing account.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// ShopID returns the identifier of the selling shop.
func (o *Order) ShopID() kernel.UUID {
	return o.shopID
}

// Status returns the commerce lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the payment status of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// ShippingStatus returns the shipping status of the order.
func (o *Order) ShippingStatus() ShippingStatus {
	return o.shippingStatus
}

// UpdateStatus sets the commerce lifecycle status.
// Used by the fulfillment cascade; unspecified axes are left untouched.
func (o *Order) UpdateStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// UpdateShippingStatus sets the shipping axis.
// Used by the fulfillment cascade; unspecified axes are left untouched.
func (o *Order) UpdateShippingStatus(status ShippingStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.shippingStatus = status
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId is invalid", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shopId is invalid", err)
	}
	o.shopID = id
	return nil
}

package shipment

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New(
		"Shipment must be created via NewShipment or RestoreShipment constructor")
)

// Shipment represents a parcel routed to a carrier for one order.
// It is the aggregate root of the fulfillment cascade: its status change is
// the trigger, and the owning order's status axes are the cascade target.
//
// The carrier assignment (carrierAccountID) binds the shipment to the one
// shipper authorized to mutate it. The relation is a back-reference used for
// authorization lookup, not ownership: the shipment is exclusively owned by
// its order.
//
// Shipment follows these invariants:
//   - Must have valid unique, order, and carrier identifiers
//   - Sender and recipient snapshots must be constructed
//   - Created Pending; Delivered, Failed, and Returned are terminal
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	id               kernel.UUID
	orderID          kernel.UUID
	carrierAccountID kernel.UUID
	trackingNumber   string
	sender           Party
	recipient        Party
	status           Status
	isConstructed    bool
}

// NewShipment creates a new Shipment with validation.
// The shipment starts Pending, routed to the given carrier account.
func NewShipment(
	id, orderID, carrierAccountID kernel.UUID,
	trackingNumber string,
	sender, recipient Party,
) (*Shipment, error) {
	s := &Shipment{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setCarrier(carrierAccountID),
		s.setTrackingNumber(trackingNumber),
		s.setParties(sender, recipient),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence, validating all fields.
func RestoreShipment(
	id, orderID, carrierAccountID kernel.UUID,
	trackingNumber string,
	sender, recipient Party,
	status Status,
) (*Shipment, error) {
	s := &Shipment{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setCarrier(carrierAccountID),
		s.setTrackingNumber(trackingNumber),
		s.setParties(sender, recipient),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	s.status = status
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the owning order.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// CarrierAccountID returns the account the shipment was routed to.
func (s *Shipment) CarrierAccountID() kernel.UUID {
	return s.carrierAccountID
}

// TrackingNumber returns the carrier tracking number.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// Sender returns the sender snapshot taken at routing time.
func (s *Shipment) Sender() Party {
	return s.sender
}

// Recipient returns the recipient snapshot taken at routing time.
func (s *Shipment) Recipient() Party {
	return s.recipient
}

// Status returns the current carrier status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// IsAssignedTo reports whether the given account holds the carrier
// assignment for this shipment.
func (s *Shipment) IsAssignedTo(accountID kernel.UUID) bool {
	return s.carrierAccountID.IsEqual(accountID)
}

// ChangeStatus sets the shipment status to the requested value.
//
// Business rules:
//   - The new status must be a valid enum value
//   - No transition is allowed out of a terminal status (Delivered, Failed,
//     Returned); re-invoking on a terminal status is an invalid transition,
//     not idempotent success
//
// The shipment's own status is always set to the requested value; which
// order fields the change cascades into is decided separately by the
// fulfillment cascade service.
func (s *Shipment) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return errs.NewInvalidTransitionError("shipment", s.status.String(), newStatus.String())
	}

	s.status = newStatus
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId is invalid", err)
	}
	s.orderID = id
	return nil
}

func (s *Shipment) setCarrier(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carrierAccountId is invalid", err)
	}
	s.carrierAccountID = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setParties(sender, recipient Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	if err := recipient.Validate(); err != nil {
		return err
	}
	s.sender = sender
	s.recipient = recipient
	return nil
}

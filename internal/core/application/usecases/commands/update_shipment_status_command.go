package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand requests a shipment status change on behalf of
// a carrier. The raw status literal is parsed at construction time: an
// unrecognized literal is rejected here, before any aggregate is loaded or
// mutated, and never falls back to a default status.
//
// Example:
//
//	cmd, err := NewUpdateShipmentStatusCommand(shipmentID, "IN_TRANSIT", caller)
//	if err != nil {
//	    // unparseable status or invalid ids
//	}
//	resp, err := handler.Handle(ctx, cmd)
type UpdateShipmentStatusCommand struct {
	shipmentID kernel.UUID
	newStatus  shipment.Status
	caller     identity.CallerIdentity
	guard      guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a validated command to change a
// shipment's status. rawStatus must be one of the carrier status literals.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID, rawStatus string, caller identity.CallerIdentity,
) (UpdateShipmentStatusCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	newStatus, err := shipment.StatusFromString(rawStatus)
	if err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	if err := caller.Validate(); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return UpdateShipmentStatusCommand{
		shipmentID: shipmentID,
		newStatus:  newStatus,
		caller:     caller,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the identifier of the shipment to mutate.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// NewStatus returns the parsed status to apply.
func (c UpdateShipmentStatusCommand) NewStatus() shipment.Status {
	return c.newStatus
}

// Caller returns the identity requesting the change.
func (c UpdateShipmentStatusCommand) Caller() identity.CallerIdentity {
	return c.caller
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// UpdateShipmentStatusResponse is the projection of an applied status change:
// the shipment's new status and the order fields the change cascaded into.
type UpdateShipmentStatusResponse struct {
	ShipmentID     string
	ShipmentStatus shipment.Status
	OrderID        string
	OrderStatus    order.Status
	ShippingStatus order.ShippingStatus
}

// UpdateShipmentStatusCommandHandler orchestrates the fulfillment cascade.
//
// Authorization is enforced before any mutation: the caller must hold the
// shipper role, have passed the approval gate, and be the carrier assignment
// holder of record for the target shipment. The shipment mutation and the
// order cascade are persisted as one atomic unit — a crash between the two
// must not be observable.
//
// Example:
//
//	handler := NewUpdateShipmentStatusCommandHandler(uowFactory)
//	resp, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrForbidden):
//	    // wrong carrier, unapproved shipper, or wrong role
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such shipment
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // shipment already in a terminal status
//	}
type UpdateShipmentStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewUpdateShipmentStatusCommandHandler creates a handler for carrier status updates.
func NewUpdateShipmentStatusCommandHandler(uowFactory FulfillmentUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment status update.
// The shipment and its owning order are loaded under row locks so concurrent
// updates on the same shipment serialize; the account read used only for
// authorization takes no lock.
func (h UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context, command UpdateShipmentStatusCommand,
) (UpdateShipmentStatusResponse, error) {
	if err := command.Validate(); err != nil {
		return UpdateShipmentStatusResponse{}, err
	}

	if command.Caller().Role() != account.RoleShipper {
		return UpdateShipmentStatusResponse{}, errs.NewForbiddenError(
			"shipment status updates require the shipper role")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateShipmentStatusResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	orderRepo := uow.OrderRepository()
	accountRepo := uow.AccountRepository()

	sh, err := shipmentRepo.GetForUpdate(ctx, command.ShipmentID())
	if err != nil {
		return UpdateShipmentStatusResponse{}, err
	}

	carrier, err := accountRepo.Get(ctx, command.Caller().AccountID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return UpdateShipmentStatusResponse{}, errs.NewForbiddenErrorWithCause(
			"caller account is unknown", err)
	}
	if err != nil {
		return UpdateShipmentStatusResponse{}, err
	}

	if !carrier.IsApprovedShipper() {
		return UpdateShipmentStatusResponse{}, errs.NewForbiddenError(
			"caller has not passed the shipper approval gate")
	}

	if !sh.IsAssignedTo(command.Caller().AccountID()) {
		return UpdateShipmentStatusResponse{}, errs.NewForbiddenError(
			"caller is not the assigned carrier for this shipment")
	}

	ord, err := orderRepo.GetForUpdate(ctx, sh.OrderID())
	if err != nil {
		return UpdateShipmentStatusResponse{}, err
	}

	if err = services.NewFulfillmentCascade().Apply(sh, ord, command.NewStatus()); err != nil {
		return UpdateShipmentStatusResponse{}, err
	}

	if err = shipmentRepo.Update(ctx, sh); err != nil {
		return UpdateShipmentStatusResponse{}, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return UpdateShipmentStatusResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateShipmentStatusResponse{}, err
	}

	return UpdateShipmentStatusResponse{
		ShipmentID:     sh.ID().String(),
		ShipmentStatus: sh.Status(),
		OrderID:        ord.ID().String(),
		OrderStatus:    ord.Status(),
		ShippingStatus: ord.ShippingStatus(),
	}, nil
}

package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fulfillmentFixture struct {
	carrier  *account.Account
	caller   identity.CallerIdentity
	order    *order.Order
	shipment *shipment.Shipment
}

func newFulfillmentFixture(t *testing.T) fulfillmentFixture {
	t.Helper()

	carrier, err := account.RestoreAccount(
		kernel.NewUUID(), "Carl Carrier", "carl@example.com",
		account.RoleShipper, account.StatusActive, account.ApprovalApproved,
	)
	require.NoError(t, err)

	caller, err := identity.NewCallerIdentity(carrier.ID(), account.RoleShipper)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	party, err := shipment.NewParty("Widgets Inc", "1 Warehouse Way", "")
	require.NoError(t, err)

	sh, err := shipment.NewShipment(kernel.NewUUID(), o.ID(), carrier.ID(), "TRK-0001", party, party)
	require.NoError(t, err)

	return fulfillmentFixture{carrier: carrier, caller: caller, order: o, shipment: sh}
}

func TestUpdateShipmentStatusCommandHandler_Handle_CascadesIntoOrder(t *testing.T) {
	ctx := t.Context()
	fix := newFulfillmentFixture(t)
	cmd, err := commands.NewUpdateShipmentStatusCommand(fix.shipment.ID(), "IN_TRANSIT", fix.caller)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		shipmentRepo.On("GetForUpdate", ctx, fix.shipment.ID()).Return(fix.shipment, nil).Once(),
		accountRepo.On("Get", ctx, fix.carrier.ID()).Return(fix.carrier, nil).Once(),
		orderRepo.On("GetForUpdate", ctx, fix.order.ID()).Return(fix.order, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentStatusCommandHandler(factory)
	resp, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, fix.shipment.ID().String(), resp.ShipmentID)
	assert.Equal(t, shipment.StatusInTransit, resp.ShipmentStatus)
	assert.Equal(t, fix.order.ID().String(), resp.OrderID)
	assert.Equal(t, order.StatusShipped, resp.OrderStatus)
	assert.Equal(t, order.ShippingInTransit, resp.ShippingStatus)
	shipmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle_ReturnedLeavesOrderUntouched(t *testing.T) {
	ctx := t.Context()
	fix := newFulfillmentFixture(t)
	cmd, err := commands.NewUpdateShipmentStatusCommand(fix.shipment.ID(), "RETURNED", fix.caller)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		shipmentRepo.On("GetForUpdate", ctx, fix.shipment.ID()).Return(fix.shipment, nil).Once(),
		accountRepo.On("Get", ctx, fix.carrier.ID()).Return(fix.carrier, nil).Once(),
		orderRepo.On("GetForUpdate", ctx, fix.order.ID()).Return(fix.order, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentStatusCommandHandler(factory)
	resp, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.StatusReturned, resp.ShipmentStatus)
	// The order-level RETURNED status exists but the cascade deliberately
	// does not drive it from the shipment.
	assert.Equal(t, order.StatusPending, resp.OrderStatus)
	assert.Equal(t, order.ShippingPending, resp.ShippingStatus)
}

func TestUpdateShipmentStatusCommandHandler_Handle_NonShipperRoleForbidden(t *testing.T) {
	ctx := t.Context()
	fix := newFulfillmentFixture(t)

	for _, role := range []account.Role{account.RoleCustomer, account.RoleSeller, account.RoleAdmin} {
		cmd, err := commands.NewUpdateShipmentStatusCommand(
			fix.shipment.ID(), "IN_TRANSIT", newCaller(t, role))
		require.NoError(t, err)

		factory := new(MockFulfillmentUoWFactory)
		handler := commands.NewUpdateShipmentStatusCommandHandler(factory)

		_, err = handler.Handle(ctx, cmd)

		require.Error(t, err, role.String())
		assert.ErrorIs(t, err, errs.ErrForbidden)
		factory.AssertNotCalled(t, "Create")
	}
}

func TestUpdateShipmentStatusCommandHandler_Handle_UnapprovedShipperForbidden(t *testing.T) {
	ctx := t.Context()
	fix := newFulfillmentFixture(t)

	pending, err := account.NewAccount(kernel.NewUUID(), "Pat Pending", "pat@example.com", account.RoleShipper)
	require.NoError(t, err)
	caller, err := identity.NewCallerIdentity(pending.ID(), account.RoleShipper)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateShipmentStatusCommand(fix.shipment.ID(), "IN_TRANSIT", caller)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		shipmentRepo.On("GetForUpdate", ctx, fix.shipment.ID()).Return(fix.shipment, nil).Once(),
		accountRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, shipment.StatusPending, fix.shipment.Status())
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateShipmentStatusCommandHandler_Handle_WrongCarrierForbidden(t *testing.T) {
	ctx := t.Context()
	fix := newFulfillmentFixture(t)

	otherCarrier, err := account.RestoreAccount(
		kernel.NewUUID(), "Other Carrier", "other@example.com",
		account.RoleShipper, account.StatusActive, account.ApprovalApproved,
	)
	require.NoError(t, err)
	caller, err := identity.NewCallerIdentity(otherCarrier.ID(), account.RoleShipper)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateShipmentStatusCommand(fix.shipment.ID(), "DELIVERED", caller)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		shipmentRepo.On("GetForUpdate", ctx, fix.shipment.ID()).Return(fix.shipment, nil).Once(),
		accountRepo.On("Get", ctx, otherCarrier.ID()).Return(otherCarrier, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, shipment.StatusPending, fix.shipment.Status())
}

func TestUpdateShipmentStatusCommandHandler_Handle_UnknownCallerAccountForbidden(t *testing.T) {
	ctx := t.Context()
	fix := newFulfillmentFixture(t)
	cmd, err := commands.NewUpdateShipmentStatusCommand(fix.shipment.ID(), "IN_TRANSIT", fix.caller)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		shipmentRepo.On("GetForUpdate", ctx, fix.shipment.ID()).Return(fix.shipment, nil).Once(),
		accountRepo.On("Get", ctx, fix.carrier.ID()).
			Return(nil, errs.NewObjectNotFoundError("accountId", fix.carrier.ID().String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestUpdateShipmentStatusCommandHandler_Handle_TerminalShipment(t *testing.T) {
	ctx := t.Context()
	fix := newFulfillmentFixture(t)
	require.NoError(t, fix.shipment.ChangeStatus(shipment.StatusDelivered))

	cmd, err := commands.NewUpdateShipmentStatusCommand(fix.shipment.ID(), "IN_TRANSIT", fix.caller)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		shipmentRepo.On("GetForUpdate", ctx, fix.shipment.ID()).Return(fix.shipment, nil).Once(),
		accountRepo.On("Get", ctx, fix.carrier.ID()).Return(fix.carrier, nil).Once(),
		orderRepo.On("GetForUpdate", ctx, fix.order.ID()).Return(fix.order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateShipmentStatusCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	fix := newFulfillmentFixture(t)
	shipmentID := kernel.NewUUID()

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, "IN_TRANSIT", fix.caller)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockFulfillmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		shipmentRepo.On("GetForUpdate", ctx, shipmentID).
			Return(nil, errs.NewObjectNotFoundError("shipmentId", shipmentID.String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentStatusCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateShipmentStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateShipmentStatusCommand{} // not constructed properly

	factory := new(MockFulfillmentUoWFactory)
	handler := commands.NewUpdateShipmentStatusCommandHandler(factory)

	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateShipmentStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

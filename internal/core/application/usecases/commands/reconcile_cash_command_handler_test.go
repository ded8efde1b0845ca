package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/ledger"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"
)

func TestNewReconcileCashCommand(t *testing.T) {
	courierID := kernel.NewUUID()
	confirmed := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	cmd, err := commands.NewReconcileCashCommand(courierID, confirmed, nil, "")

	require.NoError(t, err)
	assert.Len(t, cmd.CashConfirmedIDs(), 2)
	assert.Empty(t, cmd.ReturnedIDs())
	assert.Equal(t, "returned during reconciliation", cmd.ReturnReason())
}

func TestNewReconcileCashCommand_EmptyConfirmedSet(t *testing.T) {
	_, err := commands.NewReconcileCashCommand(kernel.NewUUID(), nil, nil, "")

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestReconcileCashCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	first := deliveredTestShipment(t, kernel.NewUUID())
	second := deliveredTestShipment(t, kernel.NewUUID())
	cmd, err := commands.NewReconcileCashCommand(
		courierID,
		[]kernel.UUID{first.ID(), second.ID()},
		nil,
		"",
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		shipmentRepo.On("Get", ctx, first.ID()).Return(first, nil).Once(),
		shipmentRepo.On("Update", ctx, first).Return(nil).Once(),
		ledgerRepo.On("Add", ctx, mock.AnythingOfType("*ledger.Movement")).Return(nil).Once(),
		shipmentRepo.On("Get", ctx, second.ID()).Return(second, nil).Once(),
		shipmentRepo.On("Update", ctx, second).Return(nil).Once(),
		ledgerRepo.On("Add", ctx, mock.AnythingOfType("*ledger.Movement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReconcileUoWFactory)
	factory.On("Create").Return(uow).Once()

	returnWorkflow := new(MockReturnWorkflow)
	handler := commands.NewReconcileCashCommandHandler(factory, returnWorkflow)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, first.CashReconciled())
	assert.True(t, second.CashReconciled())

	movement := ledgerRepo.Calls[0].Arguments[1].(*ledger.Movement)
	assert.True(t, courierID.IsEqual(movement.UserID()))
	assert.Equal(t, ledger.CashReconciliation, movement.TransactionType())
	assert.True(t, movement.Amount().Equal(first.CODAmount()))
	assert.Equal(t, ledger.MovementPending, movement.Status())

	returnWorkflow.AssertNotCalled(t, "Handle")
	shipmentRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReconcileCashCommandHandler_Handle_NotDelivered(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	inTransit := newTestShipment(t, kernel.NewUUID(), namedStatus(t, status.InTransit))
	cmd, err := commands.NewReconcileCashCommand(courierID, []kernel.UUID{inTransit.ID()}, nil, "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		shipmentRepo.On("Get", ctx, inTransit.ID()).Return(inTransit, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReconcileUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReconcileCashCommandHandler(factory, new(MockReturnWorkflow))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDomainViolation)
	assert.False(t, inTransit.CashReconciled())
	ledgerRepo.AssertNotCalled(t, "Add")
}

func TestReconcileCashCommandHandler_Handle_RoutesReturnedShipments(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	confirmed := deliveredTestShipment(t, kernel.NewUUID())
	returnedID := kernel.NewUUID()
	cmd, err := commands.NewReconcileCashCommand(
		courierID,
		[]kernel.UUID{confirmed.ID()},
		[]kernel.UUID{returnedID},
		"refused at door",
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		shipmentRepo.On("Get", ctx, confirmed.ID()).Return(confirmed, nil).Once(),
		shipmentRepo.On("Update", ctx, confirmed).Return(nil).Once(),
		ledgerRepo.On("Add", ctx, mock.AnythingOfType("*ledger.Movement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReconcileUoWFactory)
	factory.On("Create").Return(uow).Once()

	returnWorkflow := new(MockReturnWorkflow)
	returnWorkflow.On("Handle", ctx, mock.AnythingOfType("commands.CreateReturnShipmentCommand")).
		Return(nil, nil).Once()

	handler := commands.NewReconcileCashCommandHandler(factory, returnWorkflow)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	routed := returnWorkflow.Calls[0].Arguments[1].(commands.CreateReturnShipmentCommand)
	assert.True(t, returnedID.IsEqual(routed.OriginalShipmentID()))
	assert.Equal(t, "refused at door", routed.Reason())

	returnWorkflow.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReconcileCashCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockReconcileUoWFactory)
	handler := commands.NewReconcileCashCommandHandler(factory, new(MockReturnWorkflow))
	err := handler.Handle(ctx, commands.ReconcileCashCommand{})

	require.ErrorIs(t, err, commands.ErrReconcileCashCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"
)

func TestNewAssignCourierCommand(t *testing.T) {
	shipmentID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	cmd, err := commands.NewAssignCourierCommand(shipmentID, courierID)

	require.NoError(t, err)
	assert.True(t, shipmentID.IsEqual(cmd.ShipmentID()))
	assert.True(t, courierID.IsEqual(cmd.CourierID()))
}

func TestNewAssignCourierCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAssignCourierCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewAssignCourierCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestAssignCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	testCourier := courierTestUser(t, courierID)
	assigned := newTestShipment(t, kernel.NewUUID(), namedStatus(t, status.Pending))
	cmd, err := commands.NewAssignCourierCommand(assigned.ID(), courierID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, courierID).Return(testCourier, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, assigned.ID()).Return(assigned, nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated.CourierID())
	assert.True(t, courierID.IsEqual(*updated.CourierID()))
	uow.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_NotACourier(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	testMerchant := merchantTestUser(t, merchantID)
	cmd, err := commands.NewAssignCourierCommand(kernel.NewUUID(), merchantID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, merchantID).Return(testMerchant, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDomainViolation)
	shipmentRepo.AssertNotCalled(t, "Get")
}

func TestAssignCourierCommandHandler_Handle_CourierNotFound(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(kernel.NewUUID(), courierID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, courierID).Return(nil, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignCourierCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	testCourier := courierTestUser(t, courierID)
	cmd, err := commands.NewAssignCourierCommand(shipmentID, courierID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, courierID).Return(testCourier, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(nil, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

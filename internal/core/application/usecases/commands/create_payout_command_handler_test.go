package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/payout"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"
)

func settlementPeriod(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	end := time.Now().UTC()
	return end.AddDate(0, 0, -7), end
}

func pendingPayoutCatalogStatus(t *testing.T) payout.Status {
	t.Helper()
	s, err := payout.NewStatus(payout.StatusPending, "")
	require.NoError(t, err)
	return s
}

func TestNewCreatePayoutCommand(t *testing.T) {
	start, end := settlementPeriod(t)
	cmd, err := commands.NewCreatePayoutCommand(kernel.NewUUID(), payout.CourierSettlement, start, end)

	require.NoError(t, err)
	assert.Equal(t, payout.CourierSettlement, cmd.PayoutType())
	assert.Equal(t, start, cmd.PeriodStart())
	assert.Equal(t, end, cmd.PeriodEnd())
}

func TestNewCreatePayoutCommand_InvertedPeriod(t *testing.T) {
	start, end := settlementPeriod(t)
	_, err := commands.NewCreatePayoutCommand(kernel.NewUUID(), payout.MerchantPayout, end, start)

	require.ErrorIs(t, err, commands.ErrPeriodIsInverted)
}

func TestNewCreatePayoutCommand_InvalidType(t *testing.T) {
	start, end := settlementPeriod(t)
	_, err := commands.NewCreatePayoutCommand(kernel.NewUUID(), payout.Type("BONUS"), start, end)

	require.Error(t, err)
}

func TestCreatePayoutCommandHandler_Handle_CourierSettlement(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	testCourier := courierTestUser(t, courierID)
	start, end := settlementPeriod(t)
	cmd, err := commands.NewCreatePayoutCommand(courierID, payout.CourierSettlement, start, end)
	require.NoError(t, err)

	// two delivered shipments, fee 100 each; courier share is 70 per shipment
	first := deliveredTestShipment(t, kernel.NewUUID())
	second := deliveredTestShipment(t, kernel.NewUUID())
	eligible := []*shipment.Shipment{first, second}
	pending := pendingPayoutCatalogStatus(t)

	userRepo := new(MockUserRepository)
	shipmentRepo := new(MockShipmentRepository)
	payoutRepo := new(MockPayoutRepository)
	payoutStatusRepo := new(MockPayoutStatusRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, courierID).Return(testCourier, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetEligibleForCourierSettlement", ctx, courierID).Return(eligible, nil).Once(),
		uow.On("PayoutStatusRepository").Return(payoutStatusRepo).Once(),
		payoutStatusRepo.On("FindByName", ctx, payout.StatusPending).Return(&pending, nil).Once(),
		uow.On("PayoutRepository").Return(payoutRepo).Once(),
		payoutRepo.On("Add", ctx, mock.AnythingOfType("*payout.Payout")).Return(nil).Once(),
		payoutRepo.On("AddItem", ctx, mock.AnythingOfType("*payout.Item")).Return(nil).Once(),
		shipmentRepo.On("AttachToPayout", ctx, first.ID(), mock.AnythingOfType("kernel.UUID"),
			mock.AnythingOfType("time.Time")).Return(nil).Once(),
		payoutRepo.On("AddItem", ctx, mock.AnythingOfType("*payout.Item")).Return(nil).Once(),
		shipmentRepo.On("AttachToPayout", ctx, second.ID(), mock.AnythingOfType("kernel.UUID"),
			mock.AnythingOfType("time.Time")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePayoutCommandHandler(factory)
	batch, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, batch)
	assert.Equal(t, payout.CourierSettlement, batch.PayoutType())
	assert.True(t, batch.NetAmount().Equal(decimal.RequireFromString("140")),
		"net amount was %s", batch.NetAmount())
	assert.Equal(t, payout.StatusPending, batch.Status().Name())
	assert.Nil(t, batch.PaidAt())

	item := payoutRepo.Calls[1].Arguments[1].(*payout.Item)
	assert.Equal(t, payout.SourceShipment, item.SourceType())
	assert.True(t, first.ID().IsEqual(item.SourceID()))
	assert.True(t, item.Amount().Equal(decimal.RequireFromString("70")))

	shipmentRepo.AssertExpectations(t)
	payoutRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePayoutCommandHandler_Handle_MerchantPayout(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	testMerchant := merchantTestUser(t, merchantID)
	start, end := settlementPeriod(t)
	cmd, err := commands.NewCreatePayoutCommand(merchantID, payout.MerchantPayout, start, end)
	require.NoError(t, err)

	delivered := deliveredTestShipment(t, merchantID)
	pending := pendingPayoutCatalogStatus(t)

	userRepo := new(MockUserRepository)
	shipmentRepo := new(MockShipmentRepository)
	payoutRepo := new(MockPayoutRepository)
	payoutStatusRepo := new(MockPayoutStatusRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, merchantID).Return(testMerchant, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetEligibleForMerchantPayout", ctx, merchantID).
			Return([]*shipment.Shipment{delivered}, nil).Once(),
		uow.On("PayoutStatusRepository").Return(payoutStatusRepo).Once(),
		payoutStatusRepo.On("FindByName", ctx, payout.StatusPending).Return(&pending, nil).Once(),
		uow.On("PayoutRepository").Return(payoutRepo).Once(),
		payoutRepo.On("Add", ctx, mock.AnythingOfType("*payout.Payout")).Return(nil).Once(),
		payoutRepo.On("AddItem", ctx, mock.AnythingOfType("*payout.Item")).Return(nil).Once(),
		shipmentRepo.On("AttachToPayout", ctx, delivered.ID(), mock.AnythingOfType("kernel.UUID"),
			mock.AnythingOfType("time.Time")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePayoutCommandHandler(factory)
	batch, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// the merchant receives the delivery fee in full
	assert.True(t, batch.NetAmount().Equal(delivered.DeliveryFee()))
	assert.Equal(t, payout.MerchantPayout, batch.PayoutType())
}

func TestCreatePayoutCommandHandler_Handle_NoEligibleShipments(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	testCourier := courierTestUser(t, courierID)
	start, end := settlementPeriod(t)
	cmd, err := commands.NewCreatePayoutCommand(courierID, payout.CourierSettlement, start, end)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	shipmentRepo := new(MockShipmentRepository)
	payoutRepo := new(MockPayoutRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, courierID).Return(testCourier, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetEligibleForCourierSettlement", ctx, courierID).
			Return([]*shipment.Shipment{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePayoutCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoEligibleShipments)
	payoutRepo.AssertNotCalled(t, "Add")
}

func TestCreatePayoutCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	start, end := settlementPeriod(t)
	cmd, err := commands.NewCreatePayoutCommand(userID, payout.MerchantPayout, start, end)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).Return(nil, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePayoutCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreatePayoutCommandHandler_Handle_RoleMismatch(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	testMerchant := merchantTestUser(t, merchantID)
	start, end := settlementPeriod(t)
	cmd, err := commands.NewCreatePayoutCommand(merchantID, payout.CourierSettlement, start, end)
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

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePayoutCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDomainViolation)
	shipmentRepo.AssertNotCalled(t, "GetEligibleForCourierSettlement")
}

func TestCreatePayoutCommandHandler_Handle_MissingPendingStatus(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	testCourier := courierTestUser(t, courierID)
	start, end := settlementPeriod(t)
	cmd, err := commands.NewCreatePayoutCommand(courierID, payout.CourierSettlement, start, end)
	require.NoError(t, err)

	delivered := deliveredTestShipment(t, kernel.NewUUID())

	userRepo := new(MockUserRepository)
	shipmentRepo := new(MockShipmentRepository)
	payoutRepo := new(MockPayoutRepository)
	payoutStatusRepo := new(MockPayoutStatusRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, courierID).Return(testCourier, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetEligibleForCourierSettlement", ctx, courierID).
			Return([]*shipment.Shipment{delivered}, nil).Once(),
		uow.On("PayoutStatusRepository").Return(payoutStatusRepo).Once(),
		payoutStatusRepo.On("FindByName", ctx, payout.StatusPending).Return(nil, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreatePayoutCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidConfiguration)
	payoutRepo.AssertNotCalled(t, "Add")
	shipmentRepo.AssertNotCalled(t, "AttachToPayout")
}

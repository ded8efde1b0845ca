package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/ledger"
	"parcel/internal/core/domain/model/payout"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/core/domain/model/user"
	"parcel/internal/core/ports"
)

type MockStatusRepository struct{ mock.Mock }

func (m *MockStatusRepository) Add(ctx context.Context, entry status.Status) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStatusRepository) FindByName(ctx context.Context, name string) (*status.Status, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Status), args.Error(1)
}

func (m *MockStatusRepository) Exists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockStatusRepository) GetAll(ctx context.Context) ([]status.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]status.Status), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByTrackingNumber(
	ctx context.Context,
	tn kernel.TrackingNumber,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) ExistsByTrackingNumber(
	ctx context.Context,
	tn kernel.TrackingNumber,
) (bool, error) {
	args := m.Called(ctx, tn)
	return args.Bool(0), args.Error(1)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetEligibleForCourierSettlement(
	ctx context.Context,
	courierID kernel.UUID,
) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetEligibleForMerchantPayout(
	ctx context.Context,
	merchantID kernel.UUID,
) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) AttachToPayout(
	ctx context.Context,
	shipmentID kernel.UUID,
	payoutID kernel.UUID,
	now time.Time,
) error {
	args := m.Called(ctx, shipmentID, payoutID, now)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetCourierIDsWithUnsettledDeliveries(
	ctx context.Context,
) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, entry *shipment.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) GetByShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.HistoryEntry, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.HistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) DeleteByShipment(ctx context.Context, shipmentID kernel.UUID) error {
	args := m.Called(ctx, shipmentID)
	return args.Error(0)
}

type MockPayoutRepository struct{ mock.Mock }

func (m *MockPayoutRepository) Add(ctx context.Context, aggregate *payout.Payout) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPayoutRepository) Update(ctx context.Context, aggregate *payout.Payout) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPayoutRepository) Get(ctx context.Context, id kernel.UUID) (*payout.Payout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payout.Payout), args.Error(1)
}

func (m *MockPayoutRepository) AddItem(ctx context.Context, item *payout.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPayoutRepository) GetItems(
	ctx context.Context,
	payoutID kernel.UUID,
) ([]*payout.Item, error) {
	args := m.Called(ctx, payoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payout.Item), args.Error(1)
}

type MockPayoutStatusRepository struct{ mock.Mock }

func (m *MockPayoutStatusRepository) Add(ctx context.Context, entry payout.Status) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPayoutStatusRepository) FindByName(
	ctx context.Context,
	name string,
) (*payout.Status, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payout.Status), args.Error(1)
}

type MockReturnRepository struct{ mock.Mock }

func (m *MockReturnRepository) Add(ctx context.Context, link *shipment.ReturnLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockReturnRepository) GetByOriginalShipment(
	ctx context.Context,
	originalID kernel.UUID,
) (*shipment.ReturnLink, error) {
	args := m.Called(ctx, originalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.ReturnLink), args.Error(1)
}

func (m *MockReturnRepository) GetByReturnShipment(
	ctx context.Context,
	returnID kernel.UUID,
) (*shipment.ReturnLink, error) {
	args := m.Called(ctx, returnID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.ReturnLink), args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Add(ctx context.Context, movement *ledger.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// MockUoW satisfies every narrowed unit-of-work composition in the package,
// so each handler test wires only the repositories it needs.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) PayoutRepository() ports.PayoutRepository {
	args := m.Called()
	return args.Get(0).(ports.PayoutRepository)
}

func (m *MockUoW) PayoutStatusRepository() ports.PayoutStatusRepository {
	args := m.Called()
	return args.Get(0).(ports.PayoutStatusRepository)
}

func (m *MockUoW) ReturnRepository() ports.ReturnRepository {
	args := m.Called()
	return args.Get(0).(ports.ReturnRepository)
}

func (m *MockUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	args := m.Called()
	return args.Get(0).(commands.StatusUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

type MockReturnUoWFactory struct{ mock.Mock }

func (m *MockReturnUoWFactory) Create() commands.ReturnUoW {
	args := m.Called()
	return args.Get(0).(commands.ReturnUoW)
}

type MockReconcileUoWFactory struct{ mock.Mock }

func (m *MockReconcileUoWFactory) Create() commands.ReconcileUoW {
	args := m.Called()
	return args.Get(0).(commands.ReconcileUoW)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockPayoutUoWFactory struct{ mock.Mock }

func (m *MockPayoutUoWFactory) Create() commands.PayoutUoW {
	args := m.Called()
	return args.Get(0).(commands.PayoutUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockReturnWorkflow struct{ mock.Mock }

func (m *MockReturnWorkflow) Handle(
	ctx context.Context,
	cmd commands.CreateReturnShipmentCommand,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

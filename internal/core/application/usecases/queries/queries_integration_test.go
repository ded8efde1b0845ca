package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parcel/internal/adapters/out/postgres/ledgerrepo"
	"parcel/internal/adapters/out/postgres/payoutrepo"
	"parcel/internal/adapters/out/postgres/shipmentrepo"
	"parcel/internal/adapters/out/postgres/statusrepo"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/ledger"
	"parcel/internal/core/domain/model/payout"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// QueryHandlersIntegrationTestSuite runs the read-side handlers against a
// real PostgreSQL database seeded through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	payoutRepo   *payoutrepo.GormPayoutRepository
	shipmentRepo *shipmentrepo.GormShipmentRepository
	statusRepo   *statusrepo.GormStatusRepository
	ledgerRepo   *ledgerrepo.GormLedgerRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&payoutrepo.PayoutDTO{},
		&payoutrepo.PayoutItemDTO{},
		&statusrepo.StatusDTO{},
		&ledgerrepo.MovementDTO{},
	)
	suite.Require().NoError(err)

	suite.payoutRepo = payoutrepo.NewGormPayoutRepository(db, noopTracker{})
	suite.shipmentRepo = shipmentrepo.NewGormShipmentRepository(db, noopTracker{})
	suite.statusRepo = statusrepo.NewGormStatusRepository(db)
	suite.ledgerRepo = ledgerrepo.NewGormLedgerRepository(db)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE shipments, payouts, payout_items, statuses, cash_movements",
	).Error)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPendingPayouts() {
	ctx := context.Background()

	pending := suite.newPayout(kernel.NewUUID(), payout.StatusPending)
	suite.Require().NoError(suite.payoutRepo.Add(ctx, pending))

	completed := suite.newPayout(kernel.NewUUID(), payout.StatusCompleted)
	suite.Require().NoError(suite.payoutRepo.Add(ctx, completed))

	handler := queries.NewGetPendingPayoutsQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewGetPendingPayoutsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(pending.ID().IsEqual(result[0].ID))
	suite.Equal(payout.StatusPending, result[0].StatusName)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPayoutsForUser() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	mine := suite.newPayout(userID, payout.StatusPending)
	suite.Require().NoError(suite.payoutRepo.Add(ctx, mine))

	other := suite.newPayout(kernel.NewUUID(), payout.StatusPending)
	suite.Require().NoError(suite.payoutRepo.Add(ctx, other))

	query, err := queries.NewGetPayoutsForUserQuery(userID)
	suite.Require().NoError(err)

	handler := queries.NewGetPayoutsForUserQueryHandler(suite.db)
	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(userID.IsEqual(result[0].UserID))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPayoutByID() {
	ctx := context.Background()

	created := suite.newPayout(kernel.NewUUID(), payout.StatusPending)
	suite.Require().NoError(suite.payoutRepo.Add(ctx, created))

	query, err := queries.NewGetPayoutByIDQuery(created.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetPayoutByIDQueryHandler(suite.db)
	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(created.ID().IsEqual(result.ID))
	suite.True(created.NetAmount().Equal(result.NetAmount))
	suite.Nil(result.PaidAt)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPayoutByID_MissIsError() {
	query, err := queries.NewGetPayoutByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetPayoutByIDQueryHandler(suite.db)
	_, err = handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPayoutItems() {
	ctx := context.Background()

	created := suite.newPayout(kernel.NewUUID(), payout.StatusPending)
	suite.Require().NoError(suite.payoutRepo.Add(ctx, created))

	first, err := payout.NewItem(created.ID(), payout.SourceShipment, kernel.NewUUID(), decimal.NewFromInt(70))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.payoutRepo.AddItem(ctx, first))

	second, err := payout.NewItem(created.ID(), payout.SourceShipment, kernel.NewUUID(), decimal.NewFromInt(70))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.payoutRepo.AddItem(ctx, second))

	query, err := queries.NewGetPayoutItemsQuery(created.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetPayoutItemsQueryHandler(suite.db)
	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, item := range result {
		suite.True(created.ID().IsEqual(item.PayoutID))
		suite.Equal(string(payout.SourceShipment), item.SourceType)
		suite.True(decimal.NewFromInt(70).Equal(item.Amount))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetShipmentByTracking() {
	ctx := context.Background()

	pending, err := status.NewStatus(status.Pending, "Pending")
	suite.Require().NoError(err)

	created, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.GenerateTrackingNumber(),
		kernel.NewUUID(),
		nil,
		"Dana Recipient",
		"+201001234567",
		"12 Nile Corniche, Cairo",
		decimal.NewFromInt(250),
		decimal.NewFromInt(250),
		decimal.NewFromInt(100),
		pending,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shipmentRepo.Add(ctx, created))

	query, err := queries.NewGetShipmentByTrackingQuery(created.TrackingNumber())
	suite.Require().NoError(err)

	handler := queries.NewGetShipmentByTrackingQueryHandler(suite.db)
	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(created.ID().IsEqual(result.ID))
	suite.Equal(created.TrackingNumber().String(), result.TrackingNumber)
	suite.Equal("Pending", result.StatusLabel)
	suite.Nil(result.CourierID)
	suite.Nil(result.PayoutID)
	suite.False(result.CashReconciled)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetShipmentByTracking_MissReturnsNil() {
	query, err := queries.NewGetShipmentByTrackingQuery(kernel.GenerateTrackingNumber())
	suite.Require().NoError(err)

	handler := queries.NewGetShipmentByTrackingQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Nil(result)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListStatuses() {
	ctx := context.Background()

	for _, entry := range []struct{ name, label string }{
		{status.Pending, "Pending"},
		{status.Delivered, "Delivered"},
		{status.Cancelled, "Cancelled"},
	} {
		created, err := status.NewStatus(entry.name, entry.label)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.statusRepo.Add(ctx, created))
	}

	handler := queries.NewListStatusesQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewListStatusesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	// ordered by name
	suite.Equal(status.Cancelled, result[0].Name)
	suite.Equal(status.Delivered, result[1].Name)
	suite.Equal(status.Pending, result[2].Name)
	suite.Equal("Pending", result[2].Label)

	catalog, err := suite.statusRepo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(catalog, 3)
	suite.Equal(status.Cancelled, catalog[0].Name())
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetMovementsForUser() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	older, err := ledger.NewMovement(
		userID, ledger.CashReconciliation, decimal.NewFromInt(250), time.Now().UTC().Add(-time.Hour),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledgerRepo.Add(ctx, older))

	newer, err := ledger.NewMovement(
		userID, ledger.CashReconciliation, decimal.NewFromInt(300), time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledgerRepo.Add(ctx, newer))

	foreign, err := ledger.NewMovement(
		kernel.NewUUID(), ledger.CashReconciliation, decimal.NewFromInt(99), time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.ledgerRepo.Add(ctx, foreign))

	query, err := queries.NewGetMovementsForUserQuery(userID)
	suite.Require().NoError(err)

	handler := queries.NewGetMovementsForUserQueryHandler(suite.db)
	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(newer.ID().IsEqual(result[0].ID))
	suite.True(older.ID().IsEqual(result[1].ID))
	suite.Equal(string(ledger.CashReconciliation), result[0].TransactionType)
	suite.Equal(string(ledger.MovementPending), result[0].Status)
	suite.True(decimal.NewFromInt(300).Equal(result[0].Amount))
}

func (suite *QueryHandlersIntegrationTestSuite) newPayout(userID kernel.UUID, statusName string) *payout.Payout {
	initial, err := payout.NewStatus(statusName, "")
	suite.Require().NoError(err)

	periodEnd := time.Now().UTC().Truncate(time.Second)
	periodStart := periodEnd.AddDate(0, 0, -7)

	created, err := payout.NewPayout(
		kernel.NewUUID(),
		userID,
		payout.CourierSettlement,
		initial,
		periodStart,
		periodEnd,
		decimal.NewFromInt(140),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return created
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}

// Package postgres provides the GORM-based Unit of Work that coordinates
// database transactions across the repositories. A unit of work tracks the
// aggregates modified within it, which leaves room for domain event
// publishing or an outbox without changing the repositories.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.ShipmentRepository().Add(ctx, s); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"gorm.io/gorm"

	"parcel/internal/adapters/out/postgres/historyrepo"
	"parcel/internal/adapters/out/postgres/ledgerrepo"
	"parcel/internal/adapters/out/postgres/payoutrepo"
	"parcel/internal/adapters/out/postgres/returnrepo"
	"parcel/internal/adapters/out/postgres/shipmentrepo"
	"parcel/internal/adapters/out/postgres/statusrepo"
	"parcel/internal/adapters/out/postgres/userrepo"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database connection. Each business operation gets a fresh instance so
// concurrent operations stay isolated.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork implements ports.UnitOfWork on top of GORM transactions.
// Repositories obtained from it run inside the transaction started by Begin;
// without an active transaction they fall through to the shared connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a database transaction. Calling Begin again on an instance
// with an active transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the current transaction. After commit the transaction is
// closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. After rollback the transaction
// is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// StatusRepository returns a shipment status catalog repository bound to the
// current transaction.
func (uow *GormUnitOfWork) StatusRepository() ports.StatusRepository {
	return statusrepo.NewGormStatusRepository(uow.conn())
}

// ShipmentRepository returns a shipment repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn(), uow)
}

// HistoryRepository returns a status audit trail repository bound to the
// current transaction.
func (uow *GormUnitOfWork) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn())
}

// PayoutRepository returns a payout repository bound to the current
// transaction.
func (uow *GormUnitOfWork) PayoutRepository() ports.PayoutRepository {
	return payoutrepo.NewGormPayoutRepository(uow.conn(), uow)
}

// PayoutStatusRepository returns a payout status catalog repository bound to
// the current transaction.
func (uow *GormUnitOfWork) PayoutStatusRepository() ports.PayoutStatusRepository {
	return payoutrepo.NewGormPayoutStatusRepository(uow.conn())
}

// ReturnRepository returns a return link repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ReturnRepository() ports.ReturnRepository {
	return returnrepo.NewGormReturnRepository(uow.conn())
}

// LedgerRepository returns a cash movement repository bound to the current
// transaction.
func (uow *GormUnitOfWork) LedgerRepository() ports.LedgerRepository {
	return ledgerrepo.NewGormLedgerRepository(uow.conn())
}

// UserRepository returns a user repository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repositories call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

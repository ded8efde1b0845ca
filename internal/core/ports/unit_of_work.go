package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command,
// isolating concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// it run inside the transaction started by Begin, which is what makes the
// multi-entity mutations of the return workflow and the settlement engine
// all-or-nothing.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// StatusRepository returns a StatusRepository bound to the current transaction.
	StatusRepository() StatusRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current transaction.
	ShipmentRepository() ShipmentRepository

	// HistoryRepository returns a HistoryRepository bound to the current transaction.
	HistoryRepository() HistoryRepository

	// PayoutRepository returns a PayoutRepository bound to the current transaction.
	PayoutRepository() PayoutRepository

	// PayoutStatusRepository returns a PayoutStatusRepository bound to the current transaction.
	PayoutStatusRepository() PayoutStatusRepository

	// ReturnRepository returns a ReturnRepository bound to the current transaction.
	ReturnRepository() ReturnRepository

	// LedgerRepository returns a LedgerRepository bound to the current transaction.
	LedgerRepository() LedgerRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository
}

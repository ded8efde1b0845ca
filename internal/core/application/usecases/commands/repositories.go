// Package commands contains the business operations that modify system
// state, one command + handler per operation, following the Command pattern
// of the CQRS split. Every handler follows the same shape: validate the
// command, open a unit of work, mutate aggregates through transaction-bound
// repositories, commit.
package commands

import (
	"context"

	"parcel/internal/core/ports"
)

// Unit of Work interfaces narrow the full unit of work to exactly the
// repositories each handler touches. Handlers depend on these compositions,
// not on the full ports.UnitOfWork.
type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// StatusRepoFactory provides the status catalog within a transaction.
	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	// ShipmentRepoFactory provides shipment persistence within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// HistoryRepoFactory provides the audit trail within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// PayoutRepoFactory provides payout persistence within a transaction.
	PayoutRepoFactory interface {
		PayoutRepository() ports.PayoutRepository
	}

	// PayoutStatusRepoFactory provides the payout status catalog within a transaction.
	PayoutStatusRepoFactory interface {
		PayoutStatusRepository() ports.PayoutStatusRepository
	}

	// ReturnRepoFactory provides return-link persistence within a transaction.
	ReturnRepoFactory interface {
		ReturnRepository() ports.ReturnRepository
	}

	// LedgerRepoFactory provides cash-movement persistence within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// UserRepoFactory provides user persistence within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// StatusUoW manages catalog-only operations.
	StatusUoW interface {
		TxManager
		StatusRepoFactory
	}

	// StatusUoWFactory creates StatusUoW instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// ShipmentUoW manages shipment lifecycle operations: creation, status
	// transitions, and the hard delete, each paired with its audit rows.
	ShipmentUoW interface {
		TxManager
		StatusRepoFactory
		ShipmentRepoFactory
		HistoryRepoFactory
	}

	// ShipmentUoWFactory creates ShipmentUoW instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// AssignUoW manages manifest assignment of a courier to a shipment.
	AssignUoW interface {
		TxManager
		ShipmentRepoFactory
		UserRepoFactory
	}

	// AssignUoWFactory creates AssignUoW instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// ReturnUoW manages the return workflow: two shipment saves, two audit
	// rows, and the join record, all in one transaction.
	ReturnUoW interface {
		TxManager
		StatusRepoFactory
		ShipmentRepoFactory
		HistoryRepoFactory
		ReturnRepoFactory
	}

	// ReturnUoWFactory creates ReturnUoW instances.
	ReturnUoWFactory interface {
		Create() ReturnUoW
	}

	// ReconcileUoW manages cash reconciliation: shipment flag updates plus
	// the ledger rows they emit.
	ReconcileUoW interface {
		TxManager
		ShipmentRepoFactory
		LedgerRepoFactory
	}

	// ReconcileUoWFactory creates ReconcileUoW instances.
	ReconcileUoWFactory interface {
		Create() ReconcileUoW
	}

	// SettlementUoW manages a settlement run: eligibility reads, the payout
	// and its items, and the consumed-shipment marking.
	SettlementUoW interface {
		TxManager
		ShipmentRepoFactory
		PayoutRepoFactory
		PayoutStatusRepoFactory
		UserRepoFactory
	}

	// SettlementUoWFactory creates SettlementUoW instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// PayoutUoW manages payout status transitions.
	PayoutUoW interface {
		TxManager
		PayoutRepoFactory
		PayoutStatusRepoFactory
	}

	// PayoutUoWFactory creates PayoutUoW instances.
	PayoutUoWFactory interface {
		Create() PayoutUoW
	}

	// UserUoW manages user-only operations (courier position reports).
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates UserUoW instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)

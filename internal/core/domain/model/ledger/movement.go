// Package ledger records discrete cash-handling events, independent of
// payout lines. Rows are written for audit queries and sums and are never
// updated after creation.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMovementIsNotConstructed is returned when a Movement was not created
// through NewMovement or RestoreMovement.
var ErrMovementIsNotConstructed = errors.New(
	"Movement must be created via NewMovement or RestoreMovement",
)

// TransactionType tags what kind of cash-handling event a movement records.
type TransactionType string

const (
	// CashReconciliation records a courier handing over collected
	// cash-on-delivery, verified during a reconciliation pass.
	CashReconciliation TransactionType = "CASH_RECONCILIATION"
	// PayoutDisbursement records funds leaving the business for a payout.
	PayoutDisbursement TransactionType = "PAYOUT_DISBURSEMENT"
)

// Validate rejects transaction types outside the closed set.
func (t TransactionType) Validate() error {
	switch t {
	case CashReconciliation, PayoutDisbursement:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"transactionType",
			fmt.Errorf("%q is not a valid transaction type", string(t)),
		)
	}
}

// MovementStatus tracks a movement's verification state.
type MovementStatus string

const (
	// MovementPending marks a movement recorded but not yet confirmed by
	// finance.
	MovementPending MovementStatus = "PENDING"
	// MovementConfirmed marks a movement verified by finance.
	MovementConfirmed MovementStatus = "CONFIRMED"
)

// Validate rejects statuses outside the closed set.
func (s MovementStatus) Validate() error {
	switch s {
	case MovementPending, MovementConfirmed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"movementStatus",
			fmt.Errorf("%q is not a valid movement status", string(s)),
		)
	}
}

// Movement is one cash-handling event for one user.
type Movement struct {
	id              kernel.UUID
	userID          kernel.UUID
	transactionType TransactionType
	amount          decimal.Decimal
	status          MovementStatus
	createdAt       time.Time

	isConstructed bool
}

// NewMovement records a cash-handling event in the PENDING state.
func NewMovement(
	userID kernel.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	createdAt time.Time,
) (*Movement, error) {
	return RestoreMovement(kernel.NewUUID(), userID, transactionType, amount, MovementPending, createdAt)
}

// RestoreMovement reconstructs a movement from persistence.
func RestoreMovement(
	id kernel.UUID,
	userID kernel.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	movementStatus MovementStatus,
	createdAt time.Time,
) (*Movement, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		transactionType.Validate(),
		movementStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return &Movement{
		id:              id,
		userID:          userID,
		transactionType: transactionType,
		amount:          amount,
		status:          movementStatus,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the movement was constructed through a factory function.
func (m *Movement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMovementIsNotConstructed
	}
	return nil
}

// ID returns the movement's unique identifier.
func (m *Movement) ID() kernel.UUID {
	return m.id
}

// UserID returns the user the movement is attributed to.
func (m *Movement) UserID() kernel.UUID {
	return m.userID
}

// TransactionType returns the kind of cash-handling event recorded.
func (m *Movement) TransactionType() TransactionType {
	return m.transactionType
}

// Amount returns the moved amount.
func (m *Movement) Amount() decimal.Decimal {
	return m.amount
}

// Status returns the movement's verification state.
func (m *Movement) Status() MovementStatus {
	return m.status
}

// CreatedAt returns when the movement was recorded.
func (m *Movement) CreatedAt() time.Time {
	return m.createdAt
}

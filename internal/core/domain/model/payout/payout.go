// Package payout models a settlement batch: one immutable payout paid to a
// single user for a period, composed of itemized lines tracing back to the
// contributing shipments.
package payout

import (
	"errors"
	"fmt"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPayoutIsNotConstructed is returned when a Payout was not created through
// NewPayout or RestorePayout.
var ErrPayoutIsNotConstructed = errors.New("Payout must be created via NewPayout or RestorePayout")

// Type distinguishes who a payout settles.
type Type string

const (
	// CourierSettlement pays a courier their commission share of delivery fees.
	CourierSettlement Type = "COURIER_SETTLEMENT"
	// MerchantPayout pays a merchant the full delivery fee of their shipments.
	MerchantPayout Type = "MERCHANT_PAYOUT"
)

// Validate rejects types outside the closed set.
func (t Type) Validate() error {
	switch t {
	case CourierSettlement, MerchantPayout:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"payoutType",
			fmt.Errorf("%q is not a valid payout type", string(t)),
		)
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// Payout is one settlement batch. netAmount is fixed at creation as the sum
// of the item amounts and is never recomputed; only status and paidAt change
// afterwards.
type Payout struct {
	id          kernel.UUID
	userID      kernel.UUID
	payoutType  Type
	status      Status
	periodStart time.Time
	periodEnd   time.Time
	netAmount   decimal.Decimal
	paidAt      *time.Time
	createdAt   time.Time

	isConstructed bool
}

// NewPayout creates a settlement batch. The net amount must already be the
// sum of the item amounts the caller is about to persist.
func NewPayout(
	id kernel.UUID,
	userID kernel.UUID,
	payoutType Type,
	initialStatus Status,
	periodStart time.Time,
	periodEnd time.Time,
	netAmount decimal.Decimal,
	now time.Time,
) (*Payout, error) {
	return RestorePayout(id, userID, payoutType, initialStatus, periodStart, periodEnd, netAmount, nil, now)
}

// RestorePayout reconstructs a payout from persistence.
func RestorePayout(
	id kernel.UUID,
	userID kernel.UUID,
	payoutType Type,
	currentStatus Status,
	periodStart time.Time,
	periodEnd time.Time,
	netAmount decimal.Decimal,
	paidAt *time.Time,
	createdAt time.Time,
) (*Payout, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		payoutType.Validate(),
		currentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if periodEnd.Before(periodStart) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"period",
			fmt.Errorf("periodEnd %s precedes periodStart %s", periodEnd, periodStart),
		)
	}
	if netAmount.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"netAmount",
			fmt.Errorf("%s is negative", netAmount.String()),
		)
	}

	return &Payout{
		id:            id,
		userID:        userID,
		payoutType:    payoutType,
		status:        currentStatus,
		periodStart:   periodStart,
		periodEnd:     periodEnd,
		netAmount:     netAmount,
		paidAt:        paidAt,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the payout was constructed through a factory function.
func (p *Payout) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPayoutIsNotConstructed
	}
	return nil
}

// IsEqual compares two payouts by identifier.
func (p *Payout) IsEqual(other *Payout) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payout's unique identifier.
func (p *Payout) ID() kernel.UUID {
	return p.id
}

// UserID returns the settled user's identifier.
func (p *Payout) UserID() kernel.UUID {
	return p.userID
}

// PayoutType returns whether this settles a courier or a merchant.
func (p *Payout) PayoutType() Type {
	return p.payoutType
}

// Status returns the current payout status.
func (p *Payout) Status() Status {
	return p.status
}

// PeriodStart returns the inclusive start of the settled period.
func (p *Payout) PeriodStart() time.Time {
	return p.periodStart
}

// PeriodEnd returns the inclusive end of the settled period.
func (p *Payout) PeriodEnd() time.Time {
	return p.periodEnd
}

// NetAmount returns the sum of the item amounts, fixed at creation.
func (p *Payout) NetAmount() decimal.Decimal {
	return p.netAmount
}

// PaidAt returns the disbursement timestamp, or nil while undisbursed.
func (p *Payout) PaidAt() *time.Time {
	return p.paidAt
}

// CreatedAt returns the creation timestamp.
func (p *Payout) CreatedAt() time.Time {
	return p.createdAt
}

// ChangeStatus moves the payout to the target status. Entering COMPLETED
// stamps paidAt with now; no other status receives special handling.
func (p *Payout) ChangeStatus(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	p.status = target
	if target.IsCompleted() {
		paidAt := now
		p.paidAt = &paidAt
	}
	return nil
}

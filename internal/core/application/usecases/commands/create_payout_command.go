package commands

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/payout"
	"parcel/internal/pkg/guard"
)

var (
	ErrCreatePayoutCommandIsNotConstructed = errors.New(
		"CreatePayoutCommand must be created via NewCreatePayoutCommand constructor",
	)
	ErrPeriodIsInverted = errors.New("period start must not be after period end")
)

// CreatePayoutCommand represents one settlement run: aggregate a user's
// eligible shipments over a period into a single immutable payout batch.
// The payout type selects the eligibility predicate and the per-shipment
// amount.
type CreatePayoutCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	payoutType  payout.Type
	periodStart time.Time
	periodEnd   time.Time

	guard guard.ConstructorGuard
}

// NewCreatePayoutCommand creates a settlement run command.
func NewCreatePayoutCommand(
	userID kernel.UUID,
	payoutType payout.Type,
	periodStart time.Time,
	periodEnd time.Time,
) (CreatePayoutCommand, error) {
	payoutCommand := CreatePayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payoutCommand.setUserID(userID),
		payoutCommand.setPayoutType(payoutType),
		payoutCommand.setPeriod(periodStart, periodEnd),
	); err != nil {
		return CreatePayoutCommand{}, err
	}

	return payoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePayoutCommand) Validate() error {
	return c.guard.Validate(ErrCreatePayoutCommandIsNotConstructed)
}

// UserID returns the courier or merchant being settled.
func (c CreatePayoutCommand) UserID() kernel.UUID {
	return c.userID
}

// PayoutType returns the kind of settlement run.
func (c CreatePayoutCommand) PayoutType() payout.Type {
	return c.payoutType
}

// PeriodStart returns the inclusive start of the settlement period.
func (c CreatePayoutCommand) PeriodStart() time.Time {
	return c.periodStart
}

// PeriodEnd returns the inclusive end of the settlement period.
func (c CreatePayoutCommand) PeriodEnd() time.Time {
	return c.periodEnd
}

func (c *CreatePayoutCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreatePayoutCommand) setPayoutType(payoutType payout.Type) error {
	if err := payoutType.Validate(); err != nil {
		return err
	}

	c.payoutType = payoutType
	return nil
}

func (c *CreatePayoutCommand) setPeriod(periodStart, periodEnd time.Time) error {
	if periodStart.After(periodEnd) {
		return ErrPeriodIsInverted
	}

	c.periodStart = periodStart
	c.periodEnd = periodEnd
	return nil
}

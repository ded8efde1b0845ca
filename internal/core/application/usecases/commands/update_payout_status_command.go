package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrUpdatePayoutStatusCommandIsNotConstructed = errors.New(
	"UpdatePayoutStatusCommand must be created via NewUpdatePayoutStatusCommand constructor",
)

// UpdatePayoutStatusCommand represents a request to move a payout batch to a
// new status, typically PENDING to COMPLETED once funds are disbursed.
type UpdatePayoutStatusCommand struct { //nolint:recvcheck //using for validation
	payoutID   kernel.UUID
	statusName string

	guard guard.ConstructorGuard
}

// NewUpdatePayoutStatusCommand creates a payout status transition command.
func NewUpdatePayoutStatusCommand(payoutID kernel.UUID, statusName string) (UpdatePayoutStatusCommand, error) {
	statusCommand := UpdatePayoutStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setPayoutID(payoutID),
		statusCommand.setStatusName(statusName),
	); err != nil {
		return UpdatePayoutStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePayoutStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePayoutStatusCommandIsNotConstructed)
}

// PayoutID returns the payout being transitioned.
func (c UpdatePayoutStatusCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

// StatusName returns the target payout status name.
func (c UpdatePayoutStatusCommand) StatusName() string {
	return c.statusName
}

func (c *UpdatePayoutStatusCommand) setPayoutID(payoutID kernel.UUID) error {
	if err := payoutID.Validate(); err != nil {
		return err
	}

	c.payoutID = payoutID
	return nil
}

func (c *UpdatePayoutStatusCommand) setStatusName(statusName string) error {
	if statusName == "" {
		return ErrStatusNameIsRequired
	}

	c.statusName = statusName
	return nil
}

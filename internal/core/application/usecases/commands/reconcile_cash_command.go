package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var ErrReconcileCashCommandIsNotConstructed = errors.New(
	"ReconcileCashCommand must be created via NewReconcileCashCommand constructor",
)

// ReconcileCashCommand represents one reconciliation pass for a courier: the
// shipments whose collected cash has been physically handed over and
// verified, plus any shipments the courier brought back undelivered during
// the same pass.
type ReconcileCashCommand struct { //nolint:recvcheck //using for validation
	courierID        kernel.UUID
	cashConfirmedIDs []kernel.UUID
	returnedIDs      []kernel.UUID
	returnReason     string

	guard guard.ConstructorGuard
}

// NewReconcileCashCommand creates a reconciliation command. At least one
// cash-confirmed shipment id is required; the returned set may be empty.
// The return reason applies to every returned shipment of the pass and
// defaults to "returned during reconciliation".
func NewReconcileCashCommand(
	courierID kernel.UUID,
	cashConfirmedIDs []kernel.UUID,
	returnedIDs []kernel.UUID,
	returnReason string,
) (ReconcileCashCommand, error) {
	reconcileCommand := ReconcileCashCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reconcileCommand.setCourierID(courierID),
		reconcileCommand.setCashConfirmedIDs(cashConfirmedIDs),
		reconcileCommand.setReturnedIDs(returnedIDs),
	); err != nil {
		return ReconcileCashCommand{}, err
	}

	if returnReason == "" {
		returnReason = "returned during reconciliation"
	}
	reconcileCommand.returnReason = returnReason

	return reconcileCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileCashCommand) Validate() error {
	return c.guard.Validate(ErrReconcileCashCommandIsNotConstructed)
}

// CourierID returns the courier handing over the cash.
func (c ReconcileCashCommand) CourierID() kernel.UUID {
	return c.courierID
}

// CashConfirmedIDs returns the shipments whose cash has been verified.
func (c ReconcileCashCommand) CashConfirmedIDs() []kernel.UUID {
	return c.cashConfirmedIDs
}

// ReturnedIDs returns the shipments confirmed as returned in the same pass.
func (c ReconcileCashCommand) ReturnedIDs() []kernel.UUID {
	return c.returnedIDs
}

// ReturnReason returns the reason applied to the returned shipments.
func (c ReconcileCashCommand) ReturnReason() string {
	return c.returnReason
}

func (c *ReconcileCashCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *ReconcileCashCommand) setCashConfirmedIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("cashConfirmedIDs")
	}

	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.cashConfirmedIDs = ids
	return nil
}

func (c *ReconcileCashCommand) setReturnedIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.returnedIDs = ids
	return nil
}

package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand represents an administrative hard delete of a
// shipment and its audit trail. There is no tombstone; callers restrict this
// to error-correction workflows.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to purge a shipment.
func NewDeleteShipmentCommand(shipmentID kernel.UUID) (DeleteShipmentCommand, error) {
	deleteCommand := DeleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setShipmentID(shipmentID); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to purge.
func (c DeleteShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *DeleteShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

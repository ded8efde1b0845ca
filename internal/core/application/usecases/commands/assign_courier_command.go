package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a manifest assignment: putting a shipment
// on a specific courier's run.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier to a shipment.
func NewAssignCourierCommand(shipmentID kernel.UUID, courierID kernel.UUID) (AssignCourierCommand, error) {
	assignCommand := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setShipmentID(shipmentID),
		assignCommand.setCourierID(courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// ShipmentID returns the shipment being assigned.
func (c AssignCourierCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// CourierID returns the courier taking the shipment.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignCourierCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

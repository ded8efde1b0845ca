package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrUpdateCourierLocationCommandIsNotConstructed = errors.New(
	"UpdateCourierLocationCommand must be created via NewUpdateCourierLocationCommand constructor",
)

// UpdateCourierLocationCommand represents a courier position report.
type UpdateCourierLocationCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	location  kernel.Location

	guard guard.ConstructorGuard
}

// NewUpdateCourierLocationCommand creates a position report command.
func NewUpdateCourierLocationCommand(
	courierID kernel.UUID,
	location kernel.Location,
) (UpdateCourierLocationCommand, error) {
	locationCommand := UpdateCourierLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setCourierID(courierID),
		locationCommand.setLocation(location),
	); err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierLocationCommandIsNotConstructed)
}

// CourierID returns the reporting courier.
func (c UpdateCourierLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Location returns the reported position.
func (c UpdateCourierLocationCommand) Location() kernel.Location {
	return c.location
}

func (c *UpdateCourierLocationCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateCourierLocationCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

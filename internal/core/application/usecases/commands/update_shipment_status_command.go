package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a request to move a shipment to a
// new status, addressed by the public tracking number. The target status is
// named, and resolved through the catalog before any mutation happens.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	statusName     string
	reason         string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a status transition command.
// The reason is optional free text recorded in the audit trail.
func NewUpdateShipmentStatusCommand(
	trackingNumber kernel.TrackingNumber,
	statusName string,
	reason string,
) (UpdateShipmentStatusCommand, error) {
	statusCommand := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setTrackingNumber(trackingNumber),
		statusCommand.setStatusName(statusName),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}
	statusCommand.reason = reason

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// TrackingNumber returns the shipment's public tracking number.
func (c UpdateShipmentStatusCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// StatusName returns the target status name.
func (c UpdateShipmentStatusCommand) StatusName() string {
	return c.statusName
}

// Reason returns the optional transition reason.
func (c UpdateShipmentStatusCommand) Reason() string {
	return c.reason
}

func (c *UpdateShipmentStatusCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *UpdateShipmentStatusCommand) setStatusName(statusName string) error {
	if statusName == "" {
		return ErrStatusNameIsRequired
	}

	c.statusName = statusName
	return nil
}

package commands

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var (
	ErrCreateReturnShipmentCommandIsNotConstructed = errors.New(
		"CreateReturnShipmentCommand must be created via NewCreateReturnShipmentCommand constructor",
	)
	ErrReturnReasonIsRequired = errors.New("return reason is required")
)

// CreateReturnShipmentCommand represents a request to fork a reverse
// shipment off an undeliverable or rejected original.
type CreateReturnShipmentCommand struct { //nolint:recvcheck //using for validation
	returnShipmentID   kernel.UUID
	originalShipmentID kernel.UUID
	reason             string

	guard guard.ConstructorGuard
}

// NewCreateReturnShipmentCommand creates a return workflow command. The
// return shipment id identifies the reverse leg to be created; the reason is
// mandatory and lands in the audit trail and the join record.
func NewCreateReturnShipmentCommand(
	returnShipmentID kernel.UUID,
	originalShipmentID kernel.UUID,
	reason string,
) (CreateReturnShipmentCommand, error) {
	returnCommand := CreateReturnShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		returnCommand.setReturnShipmentID(returnShipmentID),
		returnCommand.setOriginalShipmentID(originalShipmentID),
		returnCommand.setReason(reason),
	); err != nil {
		return CreateReturnShipmentCommand{}, err
	}

	return returnCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReturnShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnShipmentCommandIsNotConstructed)
}

// ReturnShipmentID returns the identifier for the reverse shipment.
func (c CreateReturnShipmentCommand) ReturnShipmentID() kernel.UUID {
	return c.returnShipmentID
}

// OriginalShipmentID returns the forward shipment being returned.
func (c CreateReturnShipmentCommand) OriginalShipmentID() kernel.UUID {
	return c.originalShipmentID
}

// Reason returns why the original could not be delivered.
func (c CreateReturnShipmentCommand) Reason() string {
	return c.reason
}

func (c *CreateReturnShipmentCommand) setReturnShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.returnShipmentID = id
	return nil
}

func (c *CreateReturnShipmentCommand) setOriginalShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.originalShipmentID = id
	return nil
}

func (c *CreateReturnShipmentCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReturnReasonIsRequired
	}

	c.reason = reason
	return nil
}

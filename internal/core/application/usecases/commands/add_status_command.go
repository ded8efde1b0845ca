package commands

import (
	"errors"

	"parcel/internal/pkg/guard"
)

var (
	ErrAddStatusCommandIsNotConstructed = errors.New(
		"AddStatusCommand must be created via NewAddStatusCommand constructor",
	)
	ErrStatusNameIsRequired = errors.New("status name is required")
)

// AddStatusCommand represents an administrative request to register a new
// entry in the shipment status catalog. Entries are immutable once created.
type AddStatusCommand struct { //nolint:recvcheck //using for validation
	name  string
	label string

	guard guard.ConstructorGuard
}

// NewAddStatusCommand creates a command to register a catalog entry.
// The label is optional and defaults to the name when empty.
func NewAddStatusCommand(name string, label string) (AddStatusCommand, error) {
	statusCommand := AddStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := statusCommand.setName(name); err != nil {
		return AddStatusCommand{}, err
	}
	statusCommand.label = label

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStatusCommand) Validate() error {
	return c.guard.Validate(ErrAddStatusCommandIsNotConstructed)
}

// Name returns the unique status name.
func (c AddStatusCommand) Name() string {
	return c.name
}

// Label returns the display label.
func (c AddStatusCommand) Label() string {
	return c.label
}

func (c *AddStatusCommand) setName(name string) error {
	if name == "" {
		return ErrStatusNameIsRequired
	}

	c.name = name
	return nil
}

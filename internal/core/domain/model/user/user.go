// Package user models the settled parties of the network: couriers who carry
// shipments and merchants who create them. The core only needs identity,
// role, and (for couriers) a reported grid position.
package user

import (
	"errors"
	"fmt"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User was not created through
// NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// ErrNotACourier is returned when a courier-only operation targets a user
// with a different role.
var ErrNotACourier = errs.NewDomainViolationError("user is not a courier")

// Role is a user's function in the delivery network.
type Role string

const (
	// Courier carries shipments and is settled through COURIER_SETTLEMENT
	// payouts.
	Courier Role = "COURIER"
	// Merchant creates shipments and is settled through MERCHANT_PAYOUT
	// payouts.
	Merchant Role = "MERCHANT"
)

// Validate rejects roles outside the closed set.
func (r Role) Validate() error {
	switch r {
	case Courier, Merchant:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a valid role", string(r)),
		)
	}
}

// User is a settled party. Location is only meaningful for couriers and is
// nil until their first position report.
type User struct {
	id       kernel.UUID
	name     string
	role     Role
	location *kernel.Location

	isConstructed bool
}

// NewUser creates a user with the given role.
func NewUser(id kernel.UUID, name string, role Role) (*User, error) {
	return RestoreUser(id, name, role, nil)
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, name string, role Role, location *kernel.Location) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &User{
		id:            id,
		name:          name,
		role:          role,
		location:      location,
		isConstructed: true,
	}, nil
}

// Validate ensures the user was constructed through a factory function.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsCourier reports whether the user carries shipments.
func (u *User) IsCourier() bool {
	return u.role == Courier
}

// Location returns the courier's last reported position, or nil.
func (u *User) Location() *kernel.Location {
	return u.location
}

// MoveTo updates a courier's reported position. Users with any other role
// are rejected with a domain violation, not a not-found: the user exists,
// the operation simply does not apply to them.
func (u *User) MoveTo(location kernel.Location) error {
	if !u.IsCourier() {
		return ErrNotACourier
	}
	if err := location.Validate(); err != nil {
		return err
	}

	u.location = &location
	return nil
}

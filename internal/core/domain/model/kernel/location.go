package kernel

import (
	"fmt"
	"math/rand"

	"parcel/internal/pkg/errs"
)

// Coordinate is one axis of the courier grid.
type Coordinate int8

const (
	// MinCoordinate is the lowest valid grid coordinate.
	MinCoordinate Coordinate = 1
	// MaxCoordinate is the highest valid grid coordinate.
	MaxCoordinate Coordinate = 10
)

// ErrLocationIsNotConstructed indicates a Location that was not created via
// NewLocation or NewRandomLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"Location must be created via NewLocation or NewRandomLocation",
)

// Location is a courier position on the delivery grid. Couriers report their
// position through the courier-only location update operation; the value is
// immutable, a move produces a new Location.
type Location struct { //nolint:recvcheck //using for validation
	x Coordinate
	y Coordinate

	isConstructed bool
}

// NewLocation creates a validated grid location.
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	location := Location{isConstructed: true}

	if err := location.setX(x); err != nil {
		return Location{}, err
	}
	if err := location.setY(y); err != nil {
		return Location{}, err
	}

	return location, nil
}

// NewRandomLocation creates a location with uniformly random coordinates.
// Useful in tests and demo data.
func NewRandomLocation() (Location, error) {
	span := int(MaxCoordinate - MinCoordinate + 1)
	return NewLocation(
		MinCoordinate+Coordinate(rand.Intn(span)), //nolint:gosec //not security sensitive
		MinCoordinate+Coordinate(rand.Intn(span)), //nolint:gosec //not security sensitive
	)
}

// Validate rejects locations that bypassed the constructors.
func (l Location) Validate() error {
	if !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// X returns the horizontal coordinate.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the vertical coordinate.
func (l Location) Y() Coordinate {
	return l.y
}

// String returns "(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.x, l.y)
}

// IsEqual compares two locations coordinate-wise. Both must be constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := l.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}
	return l.x == other.x && l.y == other.y, nil
}

func (l *Location) setX(x Coordinate) error {
	if x < MinCoordinate || x > MaxCoordinate {
		return errs.NewValueIsOutOfRangeError("x", x, MinCoordinate, MaxCoordinate)
	}
	l.x = x
	return nil
}

func (l *Location) setY(y Coordinate) error {
	if y < MinCoordinate || y > MaxCoordinate {
		return errs.NewValueIsOutOfRangeError("y", y, MinCoordinate, MaxCoordinate)
	}
	l.y = y
	return nil
}

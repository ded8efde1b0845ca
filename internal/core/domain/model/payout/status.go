package payout

import (
	"parcel/internal/pkg/errs"
)

// Well-known payout status names. Like shipment statuses, payout statuses
// live in a catalog and are resolved by name at the boundary.
const (
	// StatusPending is the initial status of every settlement batch.
	StatusPending = "PENDING"
	// StatusCompleted marks funds as actually disbursed; entering it stamps
	// paidAt.
	StatusCompleted = "COMPLETED"
	// StatusCancelled marks a batch voided before disbursement.
	StatusCancelled = "CANCELLED"
)

// ErrStatusIsNotConstructed indicates a Status that was not created via
// NewStatus.
var ErrStatusIsNotConstructed = errs.NewValueIsRequiredError(
	"payout Status must be created via NewStatus",
)

// Status is one immutable payout-status catalog entry.
type Status struct {
	name  string
	label string

	isConstructed bool
}

// NewStatus creates a payout-status catalog entry. Name is the unique key;
// label defaults to the name when empty.
func NewStatus(name string, label string) (Status, error) {
	if name == "" {
		return Status{}, errs.NewValueIsRequiredError("name")
	}
	if label == "" {
		label = name
	}

	return Status{
		name:          name,
		label:         label,
		isConstructed: true,
	}, nil
}

// Validate rejects statuses that bypassed the constructor.
func (s Status) Validate() error {
	if !s.isConstructed {
		return ErrStatusIsNotConstructed
	}
	return nil
}

// Name returns the unique machine name.
func (s Status) Name() string {
	return s.name
}

// Label returns the human-readable display label.
func (s Status) Label() string {
	return s.label
}

// IsCompleted reports whether this is the disbursed status.
func (s Status) IsCompleted() bool {
	return s.name == StatusCompleted
}

// IsEqual compares two statuses by name.
func (s Status) IsEqual(other Status) bool {
	return s.name == other.name
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return s.name
}

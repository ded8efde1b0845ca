// Package status models the shipment status catalog: named, immutable status
// definitions that shipments reference by name. The set of names is open
// (operators can add statuses at runtime), but the lifecycle logic keys off
// the well-known names below, resolved through the catalog at the boundary.
package status

import (
	"parcel/internal/pkg/errs"
)

// Well-known status names the lifecycle logic depends on. The catalog may
// contain more; these are the ones with behavioral meaning.
const (
	// PendingApproval is the preferred initial status for new shipments.
	PendingApproval = "PENDING_APPROVAL"
	// Pending is the fallback initial status when PENDING_APPROVAL is not
	// present in the catalog.
	Pending = "PENDING"
	// PickedUp marks a shipment collected from the merchant.
	PickedUp = "PICKED_UP"
	// InTransit marks a shipment on its way to the recipient.
	InTransit = "IN_TRANSIT"
	// Delivered is the terminal success status. Reaching it stamps
	// deliveredAt and unlocks cash reconciliation and settlement.
	Delivered = "DELIVERED"
	// ReturnedToOrigin is the terminal status forced onto an original
	// shipment when a return shipment is created for it.
	ReturnedToOrigin = "RETURNED_TO_ORIGIN"
	// Cancelled marks a shipment withdrawn before delivery.
	Cancelled = "CANCELLED"
)

// ErrStatusIsNotConstructed indicates a Status that was not created via
// NewStatus.
var ErrStatusIsNotConstructed = errs.NewValueIsRequiredError(
	"Status must be created via NewStatus",
)

// Status is one immutable catalog entry: a unique machine name plus a
// display label. Once a shipment references a status, the entry must never
// change, so the value object exposes no mutators.
type Status struct {
	name  string
	label string

	isConstructed bool
}

// NewStatus creates a catalog entry. Name is required and is the unique key;
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

// Name returns the unique machine name ("DELIVERED", ...).
func (s Status) Name() string {
	return s.name
}

// Label returns the human-readable display label.
func (s Status) Label() string {
	return s.label
}

// IsEqual compares two statuses by name.
func (s Status) IsEqual(other Status) bool {
	return s.name == other.name
}

// IsDelivered reports whether this is the terminal delivered status.
func (s Status) IsDelivered() bool {
	return s.name == Delivered
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return s.name
}

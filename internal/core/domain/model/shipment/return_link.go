package shipment

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// ErrReturnLinkIsNotConstructed is returned when a ReturnLink was not created
// through NewReturnLink or RestoreReturnLink.
var ErrReturnLinkIsNotConstructed = errors.New(
	"ReturnLink must be created via NewReturnLink or RestoreReturnLink",
)

// ReturnLink joins a forward shipment to its reverse-logistics counterpart.
// Both sides reference full shipments: the return is a real shipment with its
// own tracking number and an independent lifecycle.
type ReturnLink struct {
	id                 kernel.UUID
	originalShipmentID kernel.UUID
	returnShipmentID   kernel.UUID
	reason             string
	createdAt          time.Time

	isConstructed bool
}

// NewReturnLink creates the join record for a freshly forked return shipment.
func NewReturnLink(
	originalShipmentID kernel.UUID,
	returnShipmentID kernel.UUID,
	reason string,
	createdAt time.Time,
) (*ReturnLink, error) {
	return RestoreReturnLink(kernel.NewUUID(), originalShipmentID, returnShipmentID, reason, createdAt)
}

// RestoreReturnLink reconstructs a join record from persistence.
func RestoreReturnLink(
	id kernel.UUID,
	originalShipmentID kernel.UUID,
	returnShipmentID kernel.UUID,
	reason string,
	createdAt time.Time,
) (*ReturnLink, error) {
	if err := errors.Join(
		id.Validate(),
		originalShipmentID.Validate(),
		returnShipmentID.Validate(),
	); err != nil {
		return nil, err
	}
	if originalShipmentID.IsEqual(returnShipmentID) {
		return nil, errs.NewValueIsInvalidError("returnShipmentID must differ from originalShipmentID")
	}

	return &ReturnLink{
		id:                 id,
		originalShipmentID: originalShipmentID,
		returnShipmentID:   returnShipmentID,
		reason:             reason,
		createdAt:          createdAt,
		isConstructed:      true,
	}, nil
}

// Validate ensures the link was constructed through a factory function.
func (r *ReturnLink) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnLinkIsNotConstructed
	}
	return nil
}

// ID returns the link's unique identifier.
func (r *ReturnLink) ID() kernel.UUID {
	return r.id
}

// OriginalShipmentID returns the forward shipment's identifier.
func (r *ReturnLink) OriginalShipmentID() kernel.UUID {
	return r.originalShipmentID
}

// ReturnShipmentID returns the reverse shipment's identifier.
func (r *ReturnLink) ReturnShipmentID() kernel.UUID {
	return r.returnShipmentID
}

// Reason returns why the original shipment was sent back.
func (r *ReturnLink) Reason() string {
	return r.reason
}

// CreatedAt returns the link's creation timestamp.
func (r *ReturnLink) CreatedAt() time.Time {
	return r.createdAt
}

package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
)

// ReturnRepository persists the join records linking forward shipments to
// their reverse counterparts.
type ReturnRepository interface {
	// Add persists one return link.
	Add(ctx context.Context, link *shipment.ReturnLink) error

	// GetByOriginalShipment finds the link created for a forward shipment.
	// Returns nil (no error) when the shipment was never returned.
	GetByOriginalShipment(ctx context.Context, originalID kernel.UUID) (*shipment.ReturnLink, error)

	// GetByReturnShipment finds the link a reverse shipment belongs to.
	// Returns nil (no error) on a miss.
	GetByReturnShipment(ctx context.Context, returnID kernel.UUID) (*shipment.ReturnLink, error)
}

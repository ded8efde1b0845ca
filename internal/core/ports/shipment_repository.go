package ports

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipment aggregates and exposes the filtered
// queries the reconciliation and settlement flows rely on.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by id. Returns nil (no error) on a miss;
	// shipment lookups are optional by contract.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by its public tracking
	// number. Returns nil (no error) on a miss.
	GetByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) (*shipment.Shipment, error)

	// ExistsByTrackingNumber reports whether a tracking number is taken.
	// Used for the collision check during tracking-number generation.
	ExistsByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) (bool, error)

	// Delete hard-deletes a shipment row. History rows must be removed
	// first by the caller; a miss is reported as a not-found error.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetEligibleForCourierSettlement lists the courier's shipments that may
	// enter a settlement run: delivered, cash not yet reconciled, and not
	// attached to any payout. When run inside a transaction the rows are
	// locked until commit.
	GetEligibleForCourierSettlement(ctx context.Context, courierID kernel.UUID) ([]*shipment.Shipment, error)

	// GetEligibleForMerchantPayout lists the merchant's shipments that may
	// enter a payout run: delivered and not attached to any payout. When
	// run inside a transaction the rows are locked until commit.
	GetEligibleForMerchantPayout(ctx context.Context, merchantID kernel.UUID) ([]*shipment.Shipment, error)

	// AttachToPayout sets the shipment's payout reference, guarded by a
	// write-time re-check that the reference is still unset. A shipment
	// already consumed by another payout yields a domain-violation error,
	// which makes the at-most-once-payout invariant race-free.
	AttachToPayout(ctx context.Context, shipmentID kernel.UUID, payoutID kernel.UUID, now time.Time) error

	// GetCourierIDsWithUnsettledDeliveries lists the distinct couriers that
	// currently have shipments eligible for settlement. Drives the
	// scheduled settlement sweep.
	GetCourierIDsWithUnsettledDeliveries(ctx context.Context) ([]kernel.UUID, error)
}

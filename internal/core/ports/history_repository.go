package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
)

// HistoryRepository persists the append-only shipment status audit trail.
// Entries are never updated; the only delete is the bulk purge that
// accompanies a hard shipment delete.
type HistoryRepository interface {
	// Add appends one audit row.
	Add(ctx context.Context, entry *shipment.HistoryEntry) error

	// GetByShipment lists a shipment's audit rows oldest-first.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.HistoryEntry, error)

	// DeleteByShipment removes all audit rows of a shipment. Only the
	// administrative purge path calls this.
	DeleteByShipment(ctx context.Context, shipmentID kernel.UUID) error
}

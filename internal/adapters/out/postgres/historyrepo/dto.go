// Package historyrepo provides persistence for the append-only shipment
// status audit trail.
package historyrepo

import (
	"time"

	"github.com/google/uuid"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/domain/model/status"
)

// HistoryEntryDTO represents the database structure for persisting audit rows.
type HistoryEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	StatusName  string
	StatusLabel string
	Reason      string
	OccurredAt  time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "shipment_status_history".
func (HistoryEntryDTO) TableName() string {
	return "shipment_status_history"
}

func fromDomain(entry *shipment.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:          entry.ID().Bytes(),
		ShipmentID:  entry.ShipmentID().Bytes(),
		StatusName:  entry.Status().Name(),
		StatusLabel: entry.Status().Label(),
		Reason:      entry.Reason(),
		OccurredAt:  entry.OccurredAt(),
	}
}

func toDomain(dto HistoryEntryDTO) (*shipment.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	entered, err := status.NewStatus(dto.StatusName, dto.StatusLabel)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreHistoryEntry(id, shipmentID, entered, dto.Reason, dto.OccurredAt)
}

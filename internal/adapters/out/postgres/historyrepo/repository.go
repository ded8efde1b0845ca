package historyrepo

import (
	"context"

	"gorm.io/gorm"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Add appends one audit row.
func (r *GormHistoryRepository) Add(ctx context.Context, entry *shipment.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByShipment lists a shipment's audit rows oldest-first.
func (r *GormHistoryRepository) GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.HistoryEntry, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryEntryDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("occurred_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*shipment.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// DeleteByShipment removes all audit rows of a shipment. Deleting nothing is
// not an error; the purge may run against a shipment that never transitioned.
func (r *GormHistoryRepository) DeleteByShipment(ctx context.Context, shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&HistoryEntryDTO{}, "shipment_id = ?", shipmentID.Bytes()).Error
}

package returnrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
)

// GormReturnRepository implements ReturnRepository using GORM.
type GormReturnRepository struct {
	db *gorm.DB
}

// NewGormReturnRepository creates a new GORM return repository.
func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

// Add saves one return link.
func (r *GormReturnRepository) Add(ctx context.Context, link *shipment.ReturnLink) error {
	if err := link.Validate(); err != nil {
		return err
	}

	dto := fromDomain(link)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOriginalShipment finds the link created for a forward shipment. A miss
// returns nil without an error.
func (r *GormReturnRepository) GetByOriginalShipment(ctx context.Context, originalID kernel.UUID) (*shipment.ReturnLink, error) {
	return r.findOne(ctx, "original_shipment_id = ?", originalID)
}

// GetByReturnShipment finds the link a reverse shipment belongs to. A miss
// returns nil without an error.
func (r *GormReturnRepository) GetByReturnShipment(ctx context.Context, returnID kernel.UUID) (*shipment.ReturnLink, error) {
	return r.findOne(ctx, "return_shipment_id = ?", returnID)
}

func (r *GormReturnRepository) findOne(ctx context.Context, condition string, id kernel.UUID) (*shipment.ReturnLink, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReturnLinkDTO
	if err := r.db.WithContext(ctx).First(&dto, condition, id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

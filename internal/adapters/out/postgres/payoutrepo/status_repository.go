package payoutrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parcel/internal/core/domain/model/payout"
	"parcel/internal/pkg/errs"
)

// GormPayoutStatusRepository implements PayoutStatusRepository using GORM.
// Catalog rows are value objects; nothing tracks them.
type GormPayoutStatusRepository struct {
	db *gorm.DB
}

// NewGormPayoutStatusRepository creates a new GORM payout status repository.
func NewGormPayoutStatusRepository(db *gorm.DB) *GormPayoutStatusRepository {
	return &GormPayoutStatusRepository{db: db}
}

// Add saves a new catalog entry, rejecting duplicate names.
func (r *GormPayoutStatusRepository) Add(ctx context.Context, entry payout.Status) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := PayoutStatusDTO{Name: entry.Name(), Label: entry.Label()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("name", err)
		}
		return err
	}

	return nil
}

// FindByName resolves a payout status by name. A miss returns nil without an
// error.
func (r *GormPayoutStatusRepository) FindByName(ctx context.Context, name string) (*payout.Status, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto PayoutStatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resolved, err := payout.NewStatus(dto.Name, dto.Label)
	if err != nil {
		return nil, err
	}

	return &resolved, nil
}

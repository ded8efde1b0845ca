package ledgerrepo

import (
	"context"

	"gorm.io/gorm"

	"parcel/internal/core/domain/model/ledger"
)

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Add records one cash-handling event.
func (r *GormLedgerRepository) Add(ctx context.Context, movement *ledger.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	dto := fromDomain(movement)
	return r.db.WithContext(ctx).Create(&dto).Error
}

package payoutrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/payout"
	"parcel/internal/pkg/errs"
)

// GormPayoutRepository implements PayoutRepository using GORM.
type GormPayoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPayoutRepository creates a new GORM payout repository.
func NewGormPayoutRepository(db *gorm.DB, tracker aggregateTracker) *GormPayoutRepository {
	return &GormPayoutRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payout to the database.
func (r *GormPayoutRepository) Add(ctx context.Context, aggregate *payout.Payout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payout to the database. All columns are written so
// the paid-at stamp persists alongside the status change.
func (r *GormPayoutRepository) Update(ctx context.Context, aggregate *payout.Payout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PayoutDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payout by ID. A miss is a not-found error.
func (r *GormPayoutRepository) Get(ctx context.Context, id kernel.UUID) (*payout.Payout, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PayoutDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payout", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddItem saves one payout line.
func (r *GormPayoutRepository) AddItem(ctx context.Context, item *payout.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetItems lists a payout's lines.
func (r *GormPayoutRepository) GetItems(ctx context.Context, payoutID kernel.UUID) ([]*payout.Item, error) {
	if err := payoutID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PayoutItemDTO
	if err := r.db.WithContext(ctx).
		Where("payout_id = ?", payoutID.Bytes()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*payout.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

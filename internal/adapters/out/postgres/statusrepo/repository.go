package statusrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"
)

// GormStatusRepository implements StatusRepository using GORM.
type GormStatusRepository struct {
	db *gorm.DB
}

// NewGormStatusRepository creates a new GORM status catalog repository.
func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// Add saves a new catalog entry. A name already present is reported as an
// invalid-value error.
func (r *GormStatusRepository) Add(ctx context.Context, entry status.Status) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("name", err)
		}
		return err
	}

	return nil
}

// FindByName resolves a status by name, returning nil on a miss.
func (r *GormStatusRepository) FindByName(ctx context.Context, name string) (*status.Status, error) {
	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	entry, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// Exists reports whether a status name is present in the catalog.
func (r *GormStatusRepository) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&StatusDTO{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAll lists the whole catalog ordered by name.
func (r *GormStatusRepository) GetAll(ctx context.Context) ([]status.Status, error) {
	var dtos []StatusDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]status.Status, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

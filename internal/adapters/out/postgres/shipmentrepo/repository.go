package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
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

// Update saves an existing shipment to the database. All columns are written
// so that cleared nullable references and false flags persist.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID. A miss returns nil without an error.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves a shipment by tracking number. A miss returns
// nil without an error.
func (r *GormShipmentRepository) GetByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) (*shipment.Shipment, error) {
	if err := tn.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", tn.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByTrackingNumber reports whether a tracking number is already taken.
func (r *GormShipmentRepository) ExistsByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) (bool, error) {
	if err := tn.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("tracking_number = ?", tn.String()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a shipment row. A miss is reported as a not-found error.
func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentID", id.String())
	}

	return nil
}

// GetEligibleForCourierSettlement lists delivered shipments of the courier
// that still hold unreconciled cash and are not attached to any payout. Rows
// are locked for update so concurrent settlement runs serialize on them.
func (r *GormShipmentRepository) GetEligibleForCourierSettlement(ctx context.Context, courierID kernel.UUID) ([]*shipment.Shipment, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("courier_id = ?", courierID.Bytes()).
		Where("status_name = ?", status.Delivered).
		Where("cash_reconciled = ?", false).
		Where("payout_id IS NULL").
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetEligibleForMerchantPayout lists delivered shipments of the merchant that
// are not attached to any payout, locked for update.
func (r *GormShipmentRepository) GetEligibleForMerchantPayout(ctx context.Context, merchantID kernel.UUID) ([]*shipment.Shipment, error) {
	if err := merchantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("merchant_id = ?", merchantID.Bytes()).
		Where("status_name = ?", status.Delivered).
		Where("payout_id IS NULL").
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// AttachToPayout sets the payout reference with a write-time re-check that it
// is still unset. RowsAffected zero means another payout already consumed the
// shipment.
func (r *GormShipmentRepository) AttachToPayout(ctx context.Context, shipmentID kernel.UUID, payoutID kernel.UUID, now time.Time) error {
	if err := errors.Join(shipmentID.Validate(), payoutID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ?", shipmentID.Bytes()).
		Where("payout_id IS NULL").
		Updates(map[string]any{
			"payout_id":  payoutID.Bytes(),
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewDomainViolationError("shipment is already attached to a payout")
	}

	return nil
}

// GetCourierIDsWithUnsettledDeliveries lists the distinct couriers that have
// shipments eligible for settlement.
func (r *GormShipmentRepository) GetCourierIDsWithUnsettledDeliveries(ctx context.Context) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Distinct("courier_id").
		Where("courier_id IS NOT NULL").
		Where("status_name = ?", status.Delivered).
		Where("cash_reconciled = ?", false).
		Where("payout_id IS NULL").
		Pluck("courier_id", &raw).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		ref, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, ref)
	}

	return ids, nil
}

func toDomainSlice(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

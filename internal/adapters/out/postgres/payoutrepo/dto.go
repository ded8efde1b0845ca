// Package payoutrepo provides persistence for settlement batches, their
// itemized lines, and the payout status catalog.
package payoutrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/payout"
)

// PayoutDTO represents the database structure for persisting payouts. The
// status is denormalized (name + label) the same way shipments carry theirs.
type PayoutDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	PayoutType  string
	StatusName  string `gorm:"index"`
	StatusLabel string
	PeriodStart time.Time
	PeriodEnd   time.Time
	NetAmount   decimal.Decimal `gorm:"type:numeric(14,2)"`
	PaidAt      *time.Time
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "payouts".
func (PayoutDTO) TableName() string {
	return "payouts"
}

// PayoutItemDTO represents the database structure for persisting payout
// lines.
type PayoutItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PayoutID   uuid.UUID `gorm:"type:uuid;index"`
	SourceType string
	SourceID   uuid.UUID       `gorm:"type:uuid;index"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName overrides GORM's default naming to use "payout_items".
func (PayoutItemDTO) TableName() string {
	return "payout_items"
}

// PayoutStatusDTO represents the database structure for the payout status
// catalog.
type PayoutStatusDTO struct {
	Name  string `gorm:"primaryKey"`
	Label string
}

// TableName overrides GORM's default naming to use "payout_statuses".
func (PayoutStatusDTO) TableName() string {
	return "payout_statuses"
}

func fromDomain(aggregate *payout.Payout) PayoutDTO {
	return PayoutDTO{
		ID:          aggregate.ID().Bytes(),
		UserID:      aggregate.UserID().Bytes(),
		PayoutType:  aggregate.PayoutType().String(),
		StatusName:  aggregate.Status().Name(),
		StatusLabel: aggregate.Status().Label(),
		PeriodStart: aggregate.PeriodStart(),
		PeriodEnd:   aggregate.PeriodEnd(),
		NetAmount:   aggregate.NetAmount(),
		PaidAt:      aggregate.PaidAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto PayoutDTO) (*payout.Payout, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	currentStatus, err := payout.NewStatus(dto.StatusName, dto.StatusLabel)
	if err != nil {
		return nil, err
	}

	return payout.RestorePayout(
		id,
		userID,
		payout.Type(dto.PayoutType),
		currentStatus,
		dto.PeriodStart,
		dto.PeriodEnd,
		dto.NetAmount,
		dto.PaidAt,
		dto.CreatedAt,
	)
}

func itemFromDomain(item *payout.Item) PayoutItemDTO {
	return PayoutItemDTO{
		ID:         item.ID().Bytes(),
		PayoutID:   item.PayoutID().Bytes(),
		SourceType: string(item.SourceType()),
		SourceID:   item.SourceID().Bytes(),
		Amount:     item.Amount(),
	}
}

func itemToDomain(dto PayoutItemDTO) (*payout.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	payoutID, err := kernel.UUIDFromBytes(dto.PayoutID[:])
	if err != nil {
		return nil, err
	}

	sourceID, err := kernel.UUIDFromBytes(dto.SourceID[:])
	if err != nil {
		return nil, err
	}

	return payout.RestoreItem(id, payoutID, payout.SourceType(dto.SourceType), sourceID, dto.Amount)
}

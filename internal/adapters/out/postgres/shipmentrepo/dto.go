// Package shipmentrepo provides persistence for the shipment aggregate,
// including the filtered eligibility queries the settlement engine depends
// on and the conditional payout attachment that keeps the
// at-most-once-payout invariant race-free.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/domain/model/status"
)

// ShipmentDTO represents the database structure for persisting shipments.
// The current status is denormalized (name + label) so that reads never need
// the catalog table; the catalog remains the source of truth for resolution
// by name.
type ShipmentDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber string     `gorm:"uniqueIndex"`
	MerchantID     uuid.UUID  `gorm:"type:uuid;index"`
	CourierID      *uuid.UUID `gorm:"type:uuid;index"`
	ZoneID         *uuid.UUID `gorm:"type:uuid"`
	RecipientName  string
	RecipientPhone string
	Address        string
	ItemValue      decimal.Decimal `gorm:"type:numeric(14,2)"`
	CODAmount      decimal.Decimal `gorm:"type:numeric(14,2);column:cod_amount"`
	DeliveryFee    decimal.Decimal `gorm:"type:numeric(14,2)"`
	StatusName     string          `gorm:"index"`
	StatusLabel    string
	CashReconciled bool
	DeliveredAt    *time.Time
	PayoutID       *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber().String(),
		MerchantID:     aggregate.MerchantID().Bytes(),
		CourierID:      optionalID(aggregate.CourierID()),
		ZoneID:         optionalID(aggregate.ZoneID()),
		RecipientName:  aggregate.RecipientName(),
		RecipientPhone: aggregate.RecipientPhone(),
		Address:        aggregate.Address(),
		ItemValue:      aggregate.ItemValue(),
		CODAmount:      aggregate.CODAmount(),
		DeliveryFee:    aggregate.DeliveryFee(),
		StatusName:     aggregate.Status().Name(),
		StatusLabel:    aggregate.Status().Label(),
		CashReconciled: aggregate.CashReconciled(),
		DeliveredAt:    aggregate.DeliveredAt(),
		PayoutID:       optionalID(aggregate.PayoutID()),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := optionalKernelID(dto.CourierID)
	if err != nil {
		return nil, err
	}

	zoneID, err := optionalKernelID(dto.ZoneID)
	if err != nil {
		return nil, err
	}

	payoutID, err := optionalKernelID(dto.PayoutID)
	if err != nil {
		return nil, err
	}

	currentStatus, err := status.NewStatus(dto.StatusName, dto.StatusLabel)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		trackingNumber,
		merchantID,
		courierID,
		zoneID,
		dto.RecipientName,
		dto.RecipientPhone,
		dto.Address,
		dto.ItemValue,
		dto.CODAmount,
		dto.DeliveryFee,
		currentStatus,
		dto.CashReconciled,
		dto.DeliveredAt,
		payoutID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	ref, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}

	return &ref, nil
}

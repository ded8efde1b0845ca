// Package returnrepo provides persistence for the join records linking
// forward shipments to their reverse counterparts.
package returnrepo

import (
	"time"

	"github.com/google/uuid"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
)

// ReturnLinkDTO represents the database structure for persisting return
// links. Both shipment columns carry a unique index; a shipment forks at most
// one return, and a reverse shipment belongs to exactly one forward one.
type ReturnLinkDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginalShipmentID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ReturnShipmentID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Reason             string
	CreatedAt          time.Time
}

// TableName overrides GORM's default naming to use "return_shipments".
func (ReturnLinkDTO) TableName() string {
	return "return_shipments"
}

func fromDomain(link *shipment.ReturnLink) ReturnLinkDTO {
	return ReturnLinkDTO{
		ID:                 link.ID().Bytes(),
		OriginalShipmentID: link.OriginalShipmentID().Bytes(),
		ReturnShipmentID:   link.ReturnShipmentID().Bytes(),
		Reason:             link.Reason(),
		CreatedAt:          link.CreatedAt(),
	}
}

func toDomain(dto ReturnLinkDTO) (*shipment.ReturnLink, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	originalID, err := kernel.UUIDFromBytes(dto.OriginalShipmentID[:])
	if err != nil {
		return nil, err
	}

	returnID, err := kernel.UUIDFromBytes(dto.ReturnShipmentID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreReturnLink(id, originalID, returnID, dto.Reason, dto.CreatedAt)
}

package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetShipmentByTrackingQueryIsNotConstructed = errors.New(
	"GetShipmentByTrackingQuery must be created via NewGetShipmentByTrackingQuery constructor",
)

// GetShipmentByTrackingQuery retrieves a shipment by its public tracking
// number.
type GetShipmentByTrackingQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetShipmentByTrackingQuery creates a tracking lookup query.
func NewGetShipmentByTrackingQuery(trackingNumber kernel.TrackingNumber) (GetShipmentByTrackingQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetShipmentByTrackingQuery{}, err
	}

	return GetShipmentByTrackingQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingQueryIsNotConstructed)
}

// TrackingNumber returns the number being looked up.
func (q GetShipmentByTrackingQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

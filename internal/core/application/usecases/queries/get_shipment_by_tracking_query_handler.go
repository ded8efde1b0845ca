package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parcel/internal/core/domain/model/kernel"
)

// GetShipmentByTrackingQueryHandler looks up shipments by tracking number.
// A miss returns a nil response with no error; payout lookups report misses
// as errors, and callers rely on the difference.
type GetShipmentByTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByTrackingQueryHandler creates a handler for tracking
// lookups.
func NewGetShipmentByTrackingQueryHandler(db *gorm.DB) GetShipmentByTrackingQueryHandler {
	return GetShipmentByTrackingQueryHandler{db: db}
}

// Handle returns the shipment, or nil when the tracking number is unknown.
func (h GetShipmentByTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByTrackingQuery,
) (*ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			merchant_id,
			courier_id,
			status_name,
			status_label,
			recipient_name,
			address,
			cod_amount,
			delivery_fee,
			cash_reconciled,
			delivered_at,
			payout_id,
			created_at
		FROM shipments
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var resp ShipmentResponse
	var id, merchantID uuid.UUID
	var courierID, payoutID uuid.NullUUID
	var deliveredAt sql.NullTime

	if err = rows.Scan(
		&id,
		&resp.TrackingNumber,
		&merchantID,
		&courierID,
		&resp.StatusName,
		&resp.StatusLabel,
		&resp.RecipientName,
		&resp.Address,
		&resp.CODAmount,
		&resp.DeliveryFee,
		&resp.CashReconciled,
		&deliveredAt,
		&payoutID,
		&resp.CreatedAt,
	); err != nil {
		return nil, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if resp.MerchantID, err = kernel.UUIDFromBytes(merchantID[:]); err != nil {
		return nil, err
	}
	if courierID.Valid {
		ref, refErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if refErr != nil {
			return nil, refErr
		}
		resp.CourierID = &ref
	}
	if payoutID.Valid {
		ref, refErr := kernel.UUIDFromBytes(payoutID.UUID[:])
		if refErr != nil {
			return nil, refErr
		}
		resp.PayoutID = &ref
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time
		resp.DeliveredAt = &t
	}

	return &resp, nil
}

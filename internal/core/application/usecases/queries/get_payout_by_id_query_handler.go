package queries

import (
	"context"

	"gorm.io/gorm"

	"parcel/internal/pkg/errs"
)

// GetPayoutByIDQueryHandler looks up one settlement batch. A miss is a
// not-found error, not an empty result; shipment lookups behave the opposite
// way, and callers rely on the difference.
type GetPayoutByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetPayoutByIDQueryHandler creates a handler for payout lookups.
func NewGetPayoutByIDQueryHandler(db *gorm.DB) GetPayoutByIDQueryHandler {
	return GetPayoutByIDQueryHandler{db: db}
}

// Handle returns the payout or a not-found error.
func (h GetPayoutByIDQueryHandler) Handle(
	ctx context.Context,
	query GetPayoutByIDQuery,
) (PayoutResponse, error) {
	if err := query.Validate(); err != nil {
		return PayoutResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+payoutColumns+`
		FROM payouts
		WHERE id = ?
	`, query.PayoutID().Bytes()).Rows()
	if err != nil {
		return PayoutResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return PayoutResponse{}, err
		}
		return PayoutResponse{}, errs.NewObjectNotFoundError("payoutID", query.PayoutID())
	}

	return scanPayoutRow(rows)
}

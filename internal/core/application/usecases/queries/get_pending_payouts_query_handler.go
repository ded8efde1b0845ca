package queries

import (
	"context"

	"gorm.io/gorm"

	"parcel/internal/core/domain/model/payout"
)

// GetPendingPayoutsQueryHandler lists settlement batches in PENDING status,
// the work queue of whoever disburses funds.
type GetPendingPayoutsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingPayoutsQueryHandler creates a handler for pending payout
// queries.
func NewGetPendingPayoutsQueryHandler(db *gorm.DB) GetPendingPayoutsQueryHandler {
	return GetPendingPayoutsQueryHandler{db: db}
}

// Handle returns all pending payouts, oldest first.
func (h GetPendingPayoutsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingPayoutsQuery,
) ([]PayoutResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payouts := make([]PayoutResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+payoutColumns+`
		FROM payouts
		WHERE status_name = ?
		ORDER BY created_at
	`, payout.StatusPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanPayoutRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		payouts = append(payouts, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payouts, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPayoutsForUserQueryHandler lists a user's settlement batches.
type GetPayoutsForUserQueryHandler struct {
	db *gorm.DB
}

// NewGetPayoutsForUserQueryHandler creates a handler for per-user payout
// queries.
func NewGetPayoutsForUserQueryHandler(db *gorm.DB) GetPayoutsForUserQueryHandler {
	return GetPayoutsForUserQueryHandler{db: db}
}

// Handle returns the user's payouts, newest first. A user with no payouts
// yields an empty list, not an error.
func (h GetPayoutsForUserQueryHandler) Handle(
	ctx context.Context,
	query GetPayoutsForUserQuery,
) ([]PayoutResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payouts := make([]PayoutResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+payoutColumns+`
		FROM payouts
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
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

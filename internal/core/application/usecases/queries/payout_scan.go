package queries

import (
	"database/sql"

	"github.com/google/uuid"

	"parcel/internal/core/domain/model/kernel"
)

const payoutColumns = `
		id,
		user_id,
		payout_type,
		status_name,
		period_start,
		period_end,
		net_amount,
		paid_at,
		created_at
`

// scanPayoutRow reads one payouts row into the shared response shape.
func scanPayoutRow(rows *sql.Rows) (PayoutResponse, error) {
	var resp PayoutResponse
	var id, userID uuid.UUID
	var paidAt sql.NullTime

	if err := rows.Scan(
		&id,
		&userID,
		&resp.PayoutType,
		&resp.StatusName,
		&resp.PeriodStart,
		&resp.PeriodEnd,
		&resp.NetAmount,
		&paidAt,
		&resp.CreatedAt,
	); err != nil {
		return PayoutResponse{}, err
	}

	payoutID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return PayoutResponse{}, err
	}
	resp.ID = payoutID

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return PayoutResponse{}, err
	}
	resp.UserID = ownerID

	if paidAt.Valid {
		t := paidAt.Time
		resp.PaidAt = &t
	}

	return resp, nil
}

package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parcel/internal/core/domain/model/kernel"
)

// GetPayoutItemsQueryHandler lists the lines of a settlement batch.
type GetPayoutItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetPayoutItemsQueryHandler creates a handler for payout line queries.
func NewGetPayoutItemsQueryHandler(db *gorm.DB) GetPayoutItemsQueryHandler {
	return GetPayoutItemsQueryHandler{db: db}
}

// Handle returns the payout's lines. An unknown payout id yields an empty
// list; callers that need the existence check go through the payout lookup.
func (h GetPayoutItemsQueryHandler) Handle(
	ctx context.Context,
	query GetPayoutItemsQuery,
) ([]PayoutItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]PayoutItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			payout_id,
			source_type,
			source_id,
			amount
		FROM payout_items
		WHERE payout_id = ?
		ORDER BY id
	`, query.PayoutID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp PayoutItemResponse
		var id, payoutID, sourceID uuid.UUID

		if err = rows.Scan(
			&id,
			&payoutID,
			&resp.SourceType,
			&sourceID,
			&resp.Amount,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.PayoutID, err = kernel.UUIDFromBytes(payoutID[:]); err != nil {
			return nil, err
		}
		if resp.SourceID, err = kernel.UUIDFromBytes(sourceID[:]); err != nil {
			return nil, err
		}

		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

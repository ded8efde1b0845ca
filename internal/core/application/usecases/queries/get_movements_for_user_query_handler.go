package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parcel/internal/core/domain/model/kernel"
)

// GetMovementsForUserQueryHandler lists a user's cash movement rows, the
// audit trail the reconciliation flow writes.
type GetMovementsForUserQueryHandler struct {
	db *gorm.DB
}

// NewGetMovementsForUserQueryHandler creates a handler for per-user cash
// movement queries.
func NewGetMovementsForUserQueryHandler(db *gorm.DB) GetMovementsForUserQueryHandler {
	return GetMovementsForUserQueryHandler{db: db}
}

// Handle returns the user's movements, newest first. A user with no
// movements yields an empty list, not an error.
func (h GetMovementsForUserQueryHandler) Handle(
	ctx context.Context,
	query GetMovementsForUserQuery,
) ([]MovementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	movements := make([]MovementResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, user_id, transaction_type, amount, status, created_at
		FROM cash_movements
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp MovementResponse
		var id, userID uuid.UUID

		if scanErr := rows.Scan(
			&id,
			&userID,
			&resp.TransactionType,
			&resp.Amount,
			&resp.Status,
			&resp.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}

		movementID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = movementID

		ownerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.UserID = ownerID

		movements = append(movements, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}

// Package ledgerrepo provides persistence for cash movement records.
package ledgerrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"parcel/internal/core/domain/model/ledger"
)

// MovementDTO represents the database structure for persisting cash
// movements.
type MovementDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	TransactionType string
	Amount          decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status          string
	CreatedAt       time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "cash_movements".
func (MovementDTO) TableName() string {
	return "cash_movements"
}

func fromDomain(movement *ledger.Movement) MovementDTO {
	return MovementDTO{
		ID:              movement.ID().Bytes(),
		UserID:          movement.UserID().Bytes(),
		TransactionType: string(movement.TransactionType()),
		Amount:          movement.Amount(),
		Status:          string(movement.Status()),
		CreatedAt:       movement.CreatedAt(),
	}
}

// Package queries contains the read side of the CQRS split. Query handlers
// go straight to the database with raw SQL and return flat response structs;
// they never load aggregates or take part in transactions.
package queries

import (
	"time"

	"github.com/shopspring/decimal"

	"parcel/internal/core/domain/model/kernel"
)

// StatusResponse is the read model of one status catalog entry.
type StatusResponse struct {
	Name  string
	Label string
}

// PayoutResponse is the read model of one settlement batch.
type PayoutResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	PayoutType  string
	StatusName  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	NetAmount   decimal.Decimal
	PaidAt      *time.Time
	CreatedAt   time.Time
}

// PayoutItemResponse is the read model of one payout line.
type PayoutItemResponse struct {
	ID         kernel.UUID
	PayoutID   kernel.UUID
	SourceType string
	SourceID   kernel.UUID
	Amount     decimal.Decimal
}

// MovementResponse is the read model of one cash movement row.
type MovementResponse struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	TransactionType string
	Amount          decimal.Decimal
	Status          string
	CreatedAt       time.Time
}

// ShipmentResponse is the read model of one shipment as exposed to tracking
// lookups.
type ShipmentResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	MerchantID     kernel.UUID
	CourierID      *kernel.UUID
	StatusName     string
	StatusLabel    string
	RecipientName  string
	Address        string
	CODAmount      decimal.Decimal
	DeliveryFee    decimal.Decimal
	CashReconciled bool
	DeliveredAt    *time.Time
	PayoutID       *kernel.UUID
	CreatedAt      time.Time
}

package services

import (
	"parcel/internal/core/domain/model/payout"
	"parcel/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places of the currency's minor unit.
const moneyScale = 2

// courierShare is the courier's fraction of a shipment's delivery fee.
var courierShare = decimal.NewFromFloat(0.70)

// SettlementPolicy computes the amount each eligible shipment contributes to
// a settlement batch. Couriers earn 70% of the delivery fee, rounded to the
// currency's minor unit; merchants receive the delivery fee in full.
// Downstream commercial terms are settled outside this layer.
//
// All arithmetic is exact decimal; equality comparisons elsewhere must use
// decimal comparison, never identity.
type SettlementPolicy struct{}

// NewSettlementPolicy creates a SettlementPolicy.
func NewSettlementPolicy() SettlementPolicy {
	return SettlementPolicy{}
}

// Amount returns what one shipment contributes to a payout of the given type.
func (p SettlementPolicy) Amount(payoutType payout.Type, s *shipment.Shipment) (decimal.Decimal, error) {
	if err := payoutType.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := s.Validate(); err != nil {
		return decimal.Zero, err
	}

	if payoutType == payout.CourierSettlement {
		return s.DeliveryFee().Mul(courierShare).Round(moneyScale), nil
	}
	return s.DeliveryFee().Round(moneyScale), nil
}

// NetAmount sums the per-shipment amounts for a settlement run and returns
// the batch total together with the per-shipment amounts, index-aligned with
// the input.
func (p SettlementPolicy) NetAmount(
	payoutType payout.Type,
	shipments []*shipment.Shipment,
) (decimal.Decimal, []decimal.Decimal, error) {
	total := decimal.Zero
	amounts := make([]decimal.Decimal, 0, len(shipments))

	for _, s := range shipments {
		amount, err := p.Amount(payoutType, s)
		if err != nil {
			return decimal.Zero, nil, err
		}
		amounts = append(amounts, amount)
		total = total.Add(amount)
	}

	return total, amounts, nil
}

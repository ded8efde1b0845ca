package services_test

import (
	"testing"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/payout"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shipmentWithFee(t *testing.T, fee string) *shipment.Shipment {
	t.Helper()
	delivered, err := status.NewStatus(status.Delivered, "Delivered")
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.GenerateTrackingNumber(),
		kernel.NewUUID(),
		nil,
		"Jordan Smith",
		"",
		"14 Nile St, Cairo",
		decimal.Zero,
		decimal.Zero,
		decimal.RequireFromString(fee),
		delivered,
		time.Now(),
	)
	require.NoError(t, err)
	return s
}

func TestSettlementPolicyAmount(t *testing.T) {
	policy := services.NewSettlementPolicy()

	testCases := []struct {
		name       string
		payoutType payout.Type
		fee        string
		expected   string
	}{
		{"courier gets 70 of 100", payout.CourierSettlement, "100.00", "70.00"},
		{"courier amount rounds half up", payout.CourierSettlement, "33.35", "23.35"},
		{"courier rounding on odd fee", payout.CourierSettlement, "99.99", "69.99"},
		{"courier zero fee", payout.CourierSettlement, "0", "0"},
		{"merchant gets fee in full", payout.MerchantPayout, "100.00", "100.00"},
		{"merchant fee rounded to minor unit", payout.MerchantPayout, "49.999", "50.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := policy.Amount(tc.payoutType, shipmentWithFee(t, tc.fee))

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(amount),
				"expected %s, got %s", tc.expected, amount)
		})
	}

	t.Run("invalid payout type", func(t *testing.T) {
		_, err := policy.Amount(payout.Type("OTHER"), shipmentWithFee(t, "10"))
		require.Error(t, err)
	})
}

func TestSettlementPolicyNetAmount(t *testing.T) {
	policy := services.NewSettlementPolicy()

	shipments := []*shipment.Shipment{
		shipmentWithFee(t, "100.00"),
		shipmentWithFee(t, "50.00"),
		shipmentWithFee(t, "33.33"),
	}

	t.Run("courier sum of rounded commissions", func(t *testing.T) {
		total, amounts, err := policy.NetAmount(payout.CourierSettlement, shipments)

		require.NoError(t, err)
		require.Len(t, amounts, 3)
		assert.True(t, decimal.RequireFromString("70.00").Equal(amounts[0]))
		assert.True(t, decimal.RequireFromString("35.00").Equal(amounts[1]))
		assert.True(t, decimal.RequireFromString("23.33").Equal(amounts[2]))
		assert.True(t, decimal.RequireFromString("128.33").Equal(total))
	})

	t.Run("merchant sum of full fees", func(t *testing.T) {
		total, amounts, err := policy.NetAmount(payout.MerchantPayout, shipments)

		require.NoError(t, err)
		require.Len(t, amounts, 3)
		assert.True(t, decimal.RequireFromString("183.33").Equal(total))
	})

	t.Run("empty input sums to zero", func(t *testing.T) {
		total, amounts, err := policy.NetAmount(payout.CourierSettlement, nil)

		require.NoError(t, err)
		assert.Empty(t, amounts)
		assert.True(t, total.IsZero())
	})
}

package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/core/domain/model/user"
)

func namedStatus(t *testing.T, name string) status.Status {
	t.Helper()
	s, err := status.NewStatus(name, "")
	require.NoError(t, err)
	return s
}

func newTestShipment(t *testing.T, merchantID kernel.UUID, initial status.Status) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.GenerateTrackingNumber(),
		merchantID,
		nil,
		"Jane Roe",
		"+15550001111",
		"12 Pier Lane",
		decimal.NewFromInt(250),
		decimal.NewFromInt(250),
		decimal.NewFromInt(100),
		initial,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return s
}

func deliveredTestShipment(t *testing.T, merchantID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s := newTestShipment(t, merchantID, namedStatus(t, status.Pending))
	require.NoError(t, s.ChangeStatus(namedStatus(t, status.Delivered), time.Now().UTC()))
	return s
}

func courierTestUser(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "Sam Porter", user.Courier)
	require.NoError(t, err)
	return u
}

func merchantTestUser(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "Acme Trading", user.Merchant)
	require.NoError(t, err)
	return u
}

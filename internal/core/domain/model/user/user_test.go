package user_test

import (
	"testing"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/user"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid courier", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Riley Cooper", user.Courier)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.IsCourier())
		assert.Nil(t, u.Location())
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Riley Cooper", user.Role("ADMIN"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", user.Merchant)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUserMoveTo(t *testing.T) {
	t.Run("courier moves", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Riley Cooper", user.Courier)
		require.NoError(t, err)
		loc, err := kernel.NewLocation(4, 9)
		require.NoError(t, err)

		require.NoError(t, u.MoveTo(loc))

		require.NotNil(t, u.Location())
		equal, err := loc.IsEqual(*u.Location())
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("merchant rejected with domain violation", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Corner Shop", user.Merchant)
		require.NoError(t, err)
		loc, err := kernel.NewLocation(4, 9)
		require.NoError(t, err)

		err = u.MoveTo(loc)

		require.ErrorIs(t, err, errs.ErrDomainViolation)
		assert.Nil(t, u.Location())
	})

	t.Run("unconstructed location rejected", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Riley Cooper", user.Courier)
		require.NoError(t, err)

		require.Error(t, u.MoveTo(kernel.Location{}))
	})
}

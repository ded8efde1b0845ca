package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetPayoutsForUserQueryIsNotConstructed = errors.New(
	"GetPayoutsForUserQuery must be created via NewGetPayoutsForUserQuery constructor",
)

// GetPayoutsForUserQuery retrieves one user's settlement history.
type GetPayoutsForUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPayoutsForUserQuery creates a per-user payout history query.
func NewGetPayoutsForUserQuery(userID kernel.UUID) (GetPayoutsForUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetPayoutsForUserQuery{}, err
	}

	return GetPayoutsForUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPayoutsForUserQuery) Validate() error {
	return q.guard.Validate(ErrGetPayoutsForUserQueryIsNotConstructed)
}

// UserID returns the courier or merchant whose payouts are listed.
func (q GetPayoutsForUserQuery) UserID() kernel.UUID {
	return q.userID
}

package queries

import (
	"errors"

	"parcel/internal/pkg/guard"
)

var ErrGetPendingPayoutsQueryIsNotConstructed = errors.New(
	"GetPendingPayoutsQuery must be created via NewGetPendingPayoutsQuery constructor",
)

// GetPendingPayoutsQuery retrieves every settlement batch still awaiting
// disbursement, across all users.
type GetPendingPayoutsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingPayoutsQuery creates a parameterless pending-payout query.
func NewGetPendingPayoutsQuery() GetPendingPayoutsQuery {
	return GetPendingPayoutsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingPayoutsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingPayoutsQueryIsNotConstructed)
}

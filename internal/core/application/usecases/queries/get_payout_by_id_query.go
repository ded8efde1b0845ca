package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetPayoutByIDQueryIsNotConstructed = errors.New(
	"GetPayoutByIDQuery must be created via NewGetPayoutByIDQuery constructor",
)

// GetPayoutByIDQuery retrieves a single settlement batch by id.
type GetPayoutByIDQuery struct {
	payoutID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPayoutByIDQuery creates a payout lookup query.
func NewGetPayoutByIDQuery(payoutID kernel.UUID) (GetPayoutByIDQuery, error) {
	if err := payoutID.Validate(); err != nil {
		return GetPayoutByIDQuery{}, err
	}

	return GetPayoutByIDQuery{
		payoutID: payoutID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPayoutByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetPayoutByIDQueryIsNotConstructed)
}

// PayoutID returns the batch being looked up.
func (q GetPayoutByIDQuery) PayoutID() kernel.UUID {
	return q.payoutID
}

package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetPayoutItemsQueryIsNotConstructed = errors.New(
	"GetPayoutItemsQuery must be created via NewGetPayoutItemsQuery constructor",
)

// GetPayoutItemsQuery retrieves the itemized lines of a settlement batch,
// the traceability path from a payout back to its shipments.
type GetPayoutItemsQuery struct {
	payoutID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPayoutItemsQuery creates a payout line listing query.
func NewGetPayoutItemsQuery(payoutID kernel.UUID) (GetPayoutItemsQuery, error) {
	if err := payoutID.Validate(); err != nil {
		return GetPayoutItemsQuery{}, err
	}

	return GetPayoutItemsQuery{
		payoutID: payoutID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPayoutItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetPayoutItemsQueryIsNotConstructed)
}

// PayoutID returns the batch whose lines are listed.
func (q GetPayoutItemsQuery) PayoutID() kernel.UUID {
	return q.payoutID
}

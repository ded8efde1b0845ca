package queries

import (
	"errors"

	"parcel/internal/pkg/guard"
)

var ErrListStatusesQueryIsNotConstructed = errors.New(
	"ListStatusesQuery must be created via NewListStatusesQuery constructor",
)

// ListStatusesQuery retrieves the whole shipment status catalog.
type ListStatusesQuery struct {
	guard guard.ConstructorGuard
}

// NewListStatusesQuery creates a parameterless catalog query.
func NewListStatusesQuery() ListStatusesQuery {
	return ListStatusesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListStatusesQuery) Validate() error {
	return q.guard.Validate(ErrListStatusesQueryIsNotConstructed)
}

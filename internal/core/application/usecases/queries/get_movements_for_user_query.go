package queries

import (
	"errors"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var ErrGetMovementsForUserQueryIsNotConstructed = errors.New(
	"GetMovementsForUserQuery must be created via NewGetMovementsForUserQuery constructor",
)

// GetMovementsForUserQuery retrieves one user's cash movement history.
type GetMovementsForUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMovementsForUserQuery creates a per-user cash movement query.
func NewGetMovementsForUserQuery(userID kernel.UUID) (GetMovementsForUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetMovementsForUserQuery{}, err
	}

	return GetMovementsForUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMovementsForUserQuery) Validate() error {
	return q.guard.Validate(ErrGetMovementsForUserQueryIsNotConstructed)
}

// UserID returns the user whose movements are listed.
func (q GetMovementsForUserQuery) UserID() kernel.UUID {
	return q.userID
}

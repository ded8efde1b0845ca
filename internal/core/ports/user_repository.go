package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/user"
)

// UserRepository persists the settled parties of the network. The core only
// reads users to assert existence and role before money-moving operations;
// the full account model lives with the excluded auth service.
type UserRepository interface {
	// Add persists a new user.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user (courier position).
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by id. Returns nil (no error) on a miss;
	// user lookups are optional by contract.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}

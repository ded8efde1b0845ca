// Package ports defines the persistence contracts between the domain layer
// and infrastructure. Two lookup conventions coexist deliberately: shipment
// and user lookups return a nil aggregate on a miss (optional semantics),
// while payout lookup returns a not-found error. Callers depend on the
// distinction.
package ports

import (
	"context"

	"parcel/internal/core/domain/model/status"
)

// StatusRepository persists the shipment status catalog.
type StatusRepository interface {
	// Add persists a new catalog entry. A duplicate name is rejected with an
	// invalid-value error; entries are immutable once referenced, so there
	// is no update.
	Add(ctx context.Context, entry status.Status) error

	// FindByName resolves a status by its unique name.
	// Returns a nil status (no error) when the name is absent.
	FindByName(ctx context.Context, name string) (*status.Status, error)

	// Exists reports whether a status with the given name is in the catalog.
	Exists(ctx context.Context, name string) (bool, error)

	// GetAll lists the whole catalog.
	GetAll(ctx context.Context) ([]status.Status, error)
}

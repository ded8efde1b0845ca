package ports

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/payout"
)

// PayoutRepository persists settlement batches and their itemized lines.
type PayoutRepository interface {
	// Add persists a new payout aggregate.
	Add(ctx context.Context, aggregate *payout.Payout) error

	// Update persists status/paidAt changes to an existing payout. The
	// financial fields are immutable after creation.
	Update(ctx context.Context, aggregate *payout.Payout) error

	// Get retrieves a payout by id. A miss is a not-found ERROR, not a nil
	// result; deliberately the opposite of the shipment lookup contract.
	Get(ctx context.Context, id kernel.UUID) (*payout.Payout, error)

	// AddItem persists one payout line.
	AddItem(ctx context.Context, item *payout.Item) error

	// GetItems lists a payout's lines.
	GetItems(ctx context.Context, payoutID kernel.UUID) ([]*payout.Item, error)
}

// PayoutStatusRepository persists the payout status catalog.
type PayoutStatusRepository interface {
	// Add persists a new catalog entry, rejecting duplicate names.
	Add(ctx context.Context, entry payout.Status) error

	// FindByName resolves a payout status by its unique name.
	// Returns a nil status (no error) when the name is absent.
	FindByName(ctx context.Context, name string) (*payout.Status, error)
}

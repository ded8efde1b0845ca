package ports

import (
	"context"

	"parcel/internal/core/domain/model/ledger"
)

// LedgerRepository persists cash movement records. Rows are append-only and
// read back through the query side only.
type LedgerRepository interface {
	// Add records one cash-handling event.
	Add(ctx context.Context, movement *ledger.Movement) error
}

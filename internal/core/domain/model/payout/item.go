package payout

import (
	"errors"
	"fmt"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// SourceType names what a payout line settles. Shipments are the only source
// today; the enum keeps the trace row self-describing if that ever widens.
type SourceType string

// SourceShipment marks a line contributed by a single shipment.
const SourceShipment SourceType = "SHIPMENT"

// Validate rejects source types outside the closed set.
func (s SourceType) Validate() error {
	if s != SourceShipment {
		return errs.NewValueIsInvalidErrorWithCause(
			"sourceType",
			fmt.Errorf("%q is not a valid payout item source", string(s)),
		)
	}
	return nil
}

// Item is one line within a payout, preserving traceability from the batch
// back to a single contributing shipment and the amount it contributed.
type Item struct {
	id         kernel.UUID
	payoutID   kernel.UUID
	sourceType SourceType
	sourceID   kernel.UUID
	amount     decimal.Decimal

	isConstructed bool
}

// NewItem creates a payout line for a contributing shipment.
func NewItem(
	payoutID kernel.UUID,
	sourceType SourceType,
	sourceID kernel.UUID,
	amount decimal.Decimal,
) (*Item, error) {
	return RestoreItem(kernel.NewUUID(), payoutID, sourceType, sourceID, amount)
}

// RestoreItem reconstructs a payout line from persistence.
func RestoreItem(
	id kernel.UUID,
	payoutID kernel.UUID,
	sourceType SourceType,
	sourceID kernel.UUID,
	amount decimal.Decimal,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		payoutID.Validate(),
		sourceType.Validate(),
		sourceID.Validate(),
	); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return &Item{
		id:            id,
		payoutID:      payoutID,
		sourceType:    sourceType,
		sourceID:      sourceID,
		amount:        amount,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was constructed through a factory function.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// PayoutID returns the owning payout's identifier.
func (i *Item) PayoutID() kernel.UUID {
	return i.payoutID
}

// SourceType returns what kind of source contributed this line.
func (i *Item) SourceType() SourceType {
	return i.sourceType
}

// SourceID returns the contributing shipment's identifier.
func (i *Item) SourceID() kernel.UUID {
	return i.sourceID
}

// Amount returns the amount this line contributes to the payout.
func (i *Item) Amount() decimal.Decimal {
	return i.amount
}

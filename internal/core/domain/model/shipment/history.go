package shipment

import (
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/status"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created through NewHistoryEntry or RestoreHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New(
	"HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry",
)

// HistoryEntry is one append-only audit row: the status a shipment entered,
// the free-text reason, and when it happened. Entries are never mutated;
// they are only deleted in bulk alongside an administrative shipment purge.
type HistoryEntry struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	status     status.Status
	reason     string
	occurredAt time.Time

	isConstructed bool
}

// NewHistoryEntry creates an audit row for a status transition.
func NewHistoryEntry(
	shipmentID kernel.UUID,
	entered status.Status,
	reason string,
	occurredAt time.Time,
) (*HistoryEntry, error) {
	return RestoreHistoryEntry(kernel.NewUUID(), shipmentID, entered, reason, occurredAt)
}

// RestoreHistoryEntry reconstructs an audit row from persistence.
func RestoreHistoryEntry(
	id kernel.UUID,
	shipmentID kernel.UUID,
	entered status.Status,
	reason string,
	occurredAt time.Time,
) (*HistoryEntry, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		entered.Validate(),
	); err != nil {
		return nil, err
	}

	return &HistoryEntry{
		id:            id,
		shipmentID:    shipmentID,
		status:        entered,
		reason:        reason,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was constructed through a factory function.
func (h *HistoryEntry) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (h *HistoryEntry) ID() kernel.UUID {
	return h.id
}

// ShipmentID returns the shipment this entry belongs to.
func (h *HistoryEntry) ShipmentID() kernel.UUID {
	return h.shipmentID
}

// Status returns the status the shipment entered.
func (h *HistoryEntry) Status() status.Status {
	return h.status
}

// Reason returns the free-text reason recorded with the transition.
func (h *HistoryEntry) Reason() string {
	return h.reason
}

// OccurredAt returns the transition timestamp.
func (h *HistoryEntry) OccurredAt() time.Time {
	return h.occurredAt
}

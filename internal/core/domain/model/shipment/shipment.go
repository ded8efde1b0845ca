// Package shipment contains the shipment aggregate: one parcel's delivery
// record from creation to its terminal outcome, together with its append-only
// status history and the join record linking an original shipment to its
// reverse-logistics counterpart.
package shipment

import (
	"errors"
	"fmt"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrAlreadyAttachedToPayout is returned when a settlement run tries to
	// consume a shipment whose payout reference is already set. The reference
	// is written exactly once and never cleared.
	ErrAlreadyAttachedToPayout = errs.NewDomainViolationError(
		"shipment is already attached to a payout",
	)

	// ErrNotDelivered is returned when cash reconciliation is attempted on a
	// shipment that is not currently in the delivered status.
	ErrNotDelivered = errs.NewDomainViolationError(
		"cash can only be reconciled for delivered shipments",
	)
)

// Shipment is the aggregate root for a single parcel. It owns the current
// status, the delivery timestamp, the cash-reconciliation flag, and the
// at-most-once payout reference.
//
// Invariants:
//   - deliveredAt is non-nil iff the delivered status has been reached at
//     least once; a repeated delivered transition overwrites the timestamp
//   - cashReconciled can only become true while the status is delivered
//   - payoutID is set exactly once and never cleared
//   - money fields are exact decimals and never negative
type Shipment struct {
	id             kernel.UUID
	trackingNumber kernel.TrackingNumber

	merchantID kernel.UUID
	courierID  *kernel.UUID
	zoneID     *kernel.UUID

	recipientName  string
	recipientPhone string
	address        string

	itemValue   decimal.Decimal
	codAmount   decimal.Decimal
	deliveryFee decimal.Decimal

	status         status.Status
	cashReconciled bool
	deliveredAt    *time.Time
	payoutID       *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewShipment creates a shipment in the given initial status. The tracking
// number must already be collision-checked by the caller; initial status
// resolution (PENDING_APPROVAL with PENDING fallback) also happens upstream,
// against the catalog.
func NewShipment(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	merchantID kernel.UUID,
	zoneID *kernel.UUID,
	recipientName string,
	recipientPhone string,
	address string,
	itemValue decimal.Decimal,
	codAmount decimal.Decimal,
	deliveryFee decimal.Decimal,
	initialStatus status.Status,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setMerchantID(merchantID),
		s.setZoneID(zoneID),
		s.setRecipient(recipientName, recipientPhone, address),
		s.setAmounts(itemValue, codAmount, deliveryFee),
		s.setStatus(initialStatus),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, bypassing the
// creation-time defaults but not the field validation.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	merchantID kernel.UUID,
	courierID *kernel.UUID,
	zoneID *kernel.UUID,
	recipientName string,
	recipientPhone string,
	address string,
	itemValue decimal.Decimal,
	codAmount decimal.Decimal,
	deliveryFee decimal.Decimal,
	currentStatus status.Status,
	cashReconciled bool,
	deliveredAt *time.Time,
	payoutID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		cashReconciled: cashReconciled,
		deliveredAt:    deliveredAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setMerchantID(merchantID),
		s.setZoneID(zoneID),
		s.setRecipient(recipientName, recipientPhone, address),
		s.setAmounts(itemValue, codAmount, deliveryFee),
		s.setStatus(currentStatus),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := s.AssignCourier(*courierID); err != nil {
			return nil, err
		}
	}
	if payoutID != nil {
		if err := payoutID.Validate(); err != nil {
			return nil, err
		}
		s.payoutID = payoutID
	}

	return s, nil
}

// Validate ensures the shipment was constructed through a factory function.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the public tracking number.
func (s *Shipment) TrackingNumber() kernel.TrackingNumber {
	return s.trackingNumber
}

// MerchantID returns the owning merchant's identifier.
func (s *Shipment) MerchantID() kernel.UUID {
	return s.merchantID
}

// CourierID returns the assigned courier's identifier, or nil when the
// shipment has not been manifested to a courier yet.
func (s *Shipment) CourierID() *kernel.UUID {
	return s.courierID
}

// ZoneID returns the delivery zone identifier, or nil when unassigned.
func (s *Shipment) ZoneID() *kernel.UUID {
	return s.zoneID
}

// RecipientName returns the recipient's name.
func (s *Shipment) RecipientName() string {
	return s.recipientName
}

// RecipientPhone returns the recipient's phone number.
func (s *Shipment) RecipientPhone() string {
	return s.recipientPhone
}

// Address returns the delivery address.
func (s *Shipment) Address() string {
	return s.address
}

// ItemValue returns the declared value of the parcel contents.
func (s *Shipment) ItemValue() decimal.Decimal {
	return s.itemValue
}

// CODAmount returns the cash-on-delivery amount to collect.
func (s *Shipment) CODAmount() decimal.Decimal {
	return s.codAmount
}

// DeliveryFee returns the delivery fee, the base of all settlement amounts.
func (s *Shipment) DeliveryFee() decimal.Decimal {
	return s.deliveryFee
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() status.Status {
	return s.status
}

// CashReconciled reports whether collected cash has been certified as handed
// over and verified.
func (s *Shipment) CashReconciled() bool {
	return s.cashReconciled
}

// DeliveredAt returns the delivery timestamp, or nil when the shipment has
// never reached the delivered status.
func (s *Shipment) DeliveredAt() *time.Time {
	return s.deliveredAt
}

// PayoutID returns the consuming payout's identifier, or nil when the
// shipment has not been settled.
func (s *Shipment) PayoutID() *kernel.UUID {
	return s.payoutID
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// ChangeStatus moves the shipment to the target status. Any status can move
// to any status: the catalog is open and the graph is deliberately
// unguarded. When the target is the delivered status the delivery timestamp
// is stamped with now, overwriting a previous value on repeat transitions.
func (s *Shipment) ChangeStatus(target status.Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	s.status = target
	if target.IsDelivered() {
		deliveredAt := now
		s.deliveredAt = &deliveredAt
	}
	s.updatedAt = now
	return nil
}

// AssignCourier manifests the shipment to a courier. Reassignment overwrites
// the previous courier.
func (s *Shipment) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	s.courierID = &courierID
	return nil
}

// MarkCashReconciled certifies that the collected cash-on-delivery has been
// physically handed over and verified. Only delivered shipments qualify.
func (s *Shipment) MarkCashReconciled(now time.Time) error {
	if !s.status.IsDelivered() {
		return errs.NewDomainViolationErrorWithCause(
			ErrNotDelivered.Rule,
			fmt.Errorf("status is %s", s.status.Name()),
		)
	}

	s.cashReconciled = true
	s.updatedAt = now
	return nil
}

// AttachToPayout records the consuming payout. The reference is written
// exactly once; a second attach fails regardless of the payout identifier.
func (s *Shipment) AttachToPayout(payoutID kernel.UUID, now time.Time) error {
	if err := payoutID.Validate(); err != nil {
		return err
	}
	if s.payoutID != nil {
		return ErrAlreadyAttachedToPayout
	}

	s.payoutID = &payoutID
	s.updatedAt = now
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingNumber(tn kernel.TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	s.trackingNumber = tn
	return nil
}

func (s *Shipment) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	s.merchantID = merchantID
	return nil
}

func (s *Shipment) setZoneID(zoneID *kernel.UUID) error {
	if zoneID == nil {
		return nil
	}
	if err := zoneID.Validate(); err != nil {
		return err
	}
	s.zoneID = zoneID
	return nil
}

func (s *Shipment) setRecipient(name, phone, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.recipientName = name
	s.recipientPhone = phone
	s.address = address
	return nil
}

func (s *Shipment) setAmounts(itemValue, codAmount, deliveryFee decimal.Decimal) error {
	for name, amount := range map[string]decimal.Decimal{
		"itemValue":   itemValue,
		"codAmount":   codAmount,
		"deliveryFee": deliveryFee,
	} {
		if amount.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(
				name,
				fmt.Errorf("%s is negative", amount.String()),
			)
		}
	}

	s.itemValue = itemValue
	s.codAmount = codAmount
	s.deliveryFee = deliveryFee
	return nil
}

func (s *Shipment) setStatus(target status.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	s.status = target
	return nil
}

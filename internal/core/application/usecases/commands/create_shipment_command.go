package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrRecipientNameIsRequired  = errors.New("recipient name is required")
	ErrRecipientPhoneIsRequired = errors.New("recipient phone is required")
	ErrAddressIsRequired        = errors.New("address is required")
	ErrAmountIsNegative         = errors.New("money amounts must not be negative")
)

// CreateShipmentCommand represents a merchant's request to register a new
// parcel for delivery. Tracking number and initial status are resolved by
// the handler, not supplied by the caller.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(
//	    shipmentID, merchantID, nil,
//	    "Jane Roe", "+15550001111", "12 Pier Lane",
//	    decimal.NewFromInt(250), decimal.NewFromInt(250), decimal.NewFromInt(30),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID     kernel.UUID
	merchantID     kernel.UUID
	zoneID         *kernel.UUID
	recipientName  string
	recipientPhone string
	address        string
	itemValue      decimal.Decimal
	codAmount      decimal.Decimal
	deliveryFee    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates identifiers, recipient fields, and that the money amounts are
// not negative.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	merchantID kernel.UUID,
	zoneID *kernel.UUID,
	recipientName string,
	recipientPhone string,
	address string,
	itemValue decimal.Decimal,
	codAmount decimal.Decimal,
	deliveryFee decimal.Decimal,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setShipmentID(shipmentID),
		shipmentCommand.setMerchantID(merchantID),
		shipmentCommand.setZoneID(zoneID),
		shipmentCommand.setRecipient(recipientName, recipientPhone, address),
		shipmentCommand.setAmounts(itemValue, codAmount, deliveryFee),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// MerchantID returns the owning merchant.
func (c CreateShipmentCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// ZoneID returns the optional delivery zone.
func (c CreateShipmentCommand) ZoneID() *kernel.UUID {
	return c.zoneID
}

// RecipientName returns the recipient's name.
func (c CreateShipmentCommand) RecipientName() string {
	return c.recipientName
}

// RecipientPhone returns the recipient's phone number.
func (c CreateShipmentCommand) RecipientPhone() string {
	return c.recipientPhone
}

// Address returns the delivery address.
func (c CreateShipmentCommand) Address() string {
	return c.address
}

// ItemValue returns the declared value of the parcel contents.
func (c CreateShipmentCommand) ItemValue() decimal.Decimal {
	return c.itemValue
}

// CODAmount returns the cash amount to collect on delivery.
func (c CreateShipmentCommand) CODAmount() decimal.Decimal {
	return c.codAmount
}

// DeliveryFee returns the fee charged for carrying the parcel.
func (c CreateShipmentCommand) DeliveryFee() decimal.Decimal {
	return c.deliveryFee
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateShipmentCommand) setZoneID(zoneID *kernel.UUID) error {
	if zoneID != nil {
		if err := zoneID.Validate(); err != nil {
			return err
		}
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateShipmentCommand) setRecipient(name, phone, address string) error {
	if name == "" {
		return ErrRecipientNameIsRequired
	}
	if phone == "" {
		return ErrRecipientPhoneIsRequired
	}
	if address == "" {
		return ErrAddressIsRequired
	}

	c.recipientName = name
	c.recipientPhone = phone
	c.address = address
	return nil
}

func (c *CreateShipmentCommand) setAmounts(itemValue, codAmount, deliveryFee decimal.Decimal) error {
	if itemValue.IsNegative() || codAmount.IsNegative() || deliveryFee.IsNegative() {
		return ErrAmountIsNegative
	}

	c.itemValue = itemValue
	c.codAmount = codAmount
	c.deliveryFee = deliveryFee
	return nil
}

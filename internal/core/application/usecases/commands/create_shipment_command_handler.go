package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/shipment"
)

// ReasonCreated tags the audit row appended when a shipment enters the system.
const ReasonCreated = "created"

// CreateShipmentCommandHandler registers new shipments: it generates a unique
// tracking number, resolves the initial status through the catalog fallback
// policy, and persists the shipment together with its first audit row in one
// transaction.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command and returns the persisted
// shipment.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	trackingNumber, err := generateTrackingNumber(ctx, shipmentRepo)
	if err != nil {
		return nil, err
	}

	initialStatus, err := resolveInitialStatus(ctx, uow.StatusRepository())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := shipment.NewShipment(
		cmd.ShipmentID(),
		trackingNumber,
		cmd.MerchantID(),
		cmd.ZoneID(),
		cmd.RecipientName(),
		cmd.RecipientPhone(),
		cmd.Address(),
		cmd.ItemValue(),
		cmd.CODAmount(),
		cmd.DeliveryFee(),
		initialStatus,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = shipmentRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	entry, err := shipment.NewHistoryEntry(created.ID(), initialStatus, ReasonCreated, now)
	if err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

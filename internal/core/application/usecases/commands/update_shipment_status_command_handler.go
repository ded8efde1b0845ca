package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"
)

// UpdateShipmentStatusCommandHandler moves shipments through their lifecycle.
// The target status is resolved by name first, so an unknown name never
// mutates anything; the shipment update and its audit row are one commit
// unit. Any status may follow any status, the catalog carries no adjacency
// rules.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status
// transitions.
func NewUpdateShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition and returns the updated shipment.
// An unknown status name yields an invalid-value error, a missing shipment a
// not-found error. Reaching DELIVERED stamps the delivery time with now.
func (h *UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
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

	target, err := uow.StatusRepository().FindByName(ctx, cmd.StatusName())
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errs.NewValueIsInvalidError("statusName")
	}

	shipmentRepo := uow.ShipmentRepository()

	current, err := shipmentRepo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errs.NewObjectNotFoundError("trackingNumber", cmd.TrackingNumber().String())
	}

	now := time.Now().UTC()
	if err = current.ChangeStatus(*target, now); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	entry, err := shipment.NewHistoryEntry(current.ID(), *target, cmd.Reason(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}

package commands

import (
	"context"

	"parcel/internal/pkg/errs"
)

// DeleteShipmentCommandHandler performs the administrative purge: all audit
// rows first, then the shipment row, in one transaction.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment purges.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the shipment and its history. A missing shipment is a
// not-found error.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	existing, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if existing == nil {
		return errs.NewObjectNotFoundError("shipmentID", cmd.ShipmentID())
	}

	if err = uow.HistoryRepository().DeleteByShipment(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err = shipmentRepo.Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

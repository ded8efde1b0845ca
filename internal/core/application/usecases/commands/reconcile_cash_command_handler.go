package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/ledger"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"
)

// ReturnWorkflow is the slice of the return workflow the reconciliation pass
// needs: shipments a courier brings back undelivered are routed through it
// instead of the cash-confirmation path.
type ReturnWorkflow interface {
	Handle(ctx context.Context, cmd CreateReturnShipmentCommand) (*shipment.Shipment, error)
}

// ReconcileCashCommandHandler certifies handed-over cash-on-delivery money.
// Each confirmed shipment gets its reconciled flag set and one ledger
// movement for the audit trail; all confirmed shipments of a pass share one
// transaction. Returned shipments are delegated to the return workflow,
// which runs its own transaction per shipment.
type ReconcileCashCommandHandler struct {
	uowFactory    ReconcileUoWFactory
	returnHandler ReturnWorkflow
}

// NewReconcileCashCommandHandler creates a handler for reconciliation passes.
func NewReconcileCashCommandHandler(
	uowFactory ReconcileUoWFactory,
	returnHandler ReturnWorkflow,
) ReconcileCashCommandHandler {
	return ReconcileCashCommandHandler{
		uowFactory:    uowFactory,
		returnHandler: returnHandler,
	}
}

// Handle processes one reconciliation pass. Every cash-confirmed shipment
// must currently be delivered; a shipment that is not fails the whole pass.
func (h *ReconcileCashCommandHandler) Handle(ctx context.Context, cmd ReconcileCashCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.confirmCash(ctx, cmd); err != nil {
		return err
	}

	for _, returnedID := range cmd.ReturnedIDs() {
		returnCmd, err := NewCreateReturnShipmentCommand(kernel.NewUUID(), returnedID, cmd.ReturnReason())
		if err != nil {
			return err
		}

		if _, err = h.returnHandler.Handle(ctx, returnCmd); err != nil {
			return err
		}
	}

	return nil
}

func (h *ReconcileCashCommandHandler) confirmCash(ctx context.Context, cmd ReconcileCashCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	ledgerRepo := uow.LedgerRepository()
	now := time.Now().UTC()

	for _, shipmentID := range cmd.CashConfirmedIDs() {
		confirmed, err := shipmentRepo.Get(ctx, shipmentID)
		if err != nil {
			return err
		}
		if confirmed == nil {
			return errs.NewObjectNotFoundError("shipmentID", shipmentID)
		}

		if err = confirmed.MarkCashReconciled(now); err != nil {
			return err
		}
		if err = shipmentRepo.Update(ctx, confirmed); err != nil {
			return err
		}

		movement, err := ledger.NewMovement(
			cmd.CourierID(),
			ledger.CashReconciliation,
			confirmed.CODAmount(),
			now,
		)
		if err != nil {
			return err
		}
		if err = ledgerRepo.Add(ctx, movement); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

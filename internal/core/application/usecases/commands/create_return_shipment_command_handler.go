package commands

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"
)

// CreateReturnShipmentCommandHandler forks a reverse shipment off an
// original: a brand-new shipment with its own tracking number carries the
// parcel back, the original is forced into RETURNED_TO_ORIGIN, and a join
// record links the two. All writes share one transaction, so a failure
// anywhere leaves no half-created return.
type CreateReturnShipmentCommandHandler struct {
	uowFactory ReturnUoWFactory
}

// NewCreateReturnShipmentCommandHandler creates a handler for the return
// workflow.
func NewCreateReturnShipmentCommandHandler(uowFactory ReturnUoWFactory) CreateReturnShipmentCommandHandler {
	return CreateReturnShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the reverse shipment and returns it.
// The reverse leg copies the recipient and merchant context of the original
// but collects no cash and carries no settlement fee of its own.
func (h *CreateReturnShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateReturnShipmentCommand,
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

	original, err := shipmentRepo.Get(ctx, cmd.OriginalShipmentID())
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, errs.NewObjectNotFoundError("originalShipmentID", cmd.OriginalShipmentID())
	}

	statusRepo := uow.StatusRepository()

	initialStatus, err := resolveInitialStatus(ctx, statusRepo)
	if err != nil {
		return nil, err
	}

	returnedStatus, err := statusRepo.FindByName(ctx, status.ReturnedToOrigin)
	if err != nil {
		return nil, err
	}
	if returnedStatus == nil {
		return nil, errs.NewConfigurationError("RETURNED_TO_ORIGIN shipment status")
	}

	trackingNumber, err := generateTrackingNumber(ctx, shipmentRepo)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reverse, err := shipment.NewShipment(
		cmd.ReturnShipmentID(),
		trackingNumber,
		original.MerchantID(),
		nil,
		original.RecipientName(),
		original.RecipientPhone(),
		original.Address(),
		original.ItemValue(),
		decimal.Zero,
		decimal.Zero,
		initialStatus,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = shipmentRepo.Add(ctx, reverse); err != nil {
		return nil, err
	}

	historyRepo := uow.HistoryRepository()

	reverseEntry, err := shipment.NewHistoryEntry(reverse.ID(), initialStatus, ReasonCreated, now)
	if err != nil {
		return nil, err
	}
	if err = historyRepo.Add(ctx, reverseEntry); err != nil {
		return nil, err
	}

	if err = original.ChangeStatus(*returnedStatus, now); err != nil {
		return nil, err
	}
	if err = shipmentRepo.Update(ctx, original); err != nil {
		return nil, err
	}

	originalEntry, err := shipment.NewHistoryEntry(original.ID(), *returnedStatus, cmd.Reason(), now)
	if err != nil {
		return nil, err
	}
	if err = historyRepo.Add(ctx, originalEntry); err != nil {
		return nil, err
	}

	link, err := shipment.NewReturnLink(original.ID(), reverse.ID(), cmd.Reason(), now)
	if err != nil {
		return nil, err
	}
	if err = uow.ReturnRepository().Add(ctx, link); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return reverse, nil
}

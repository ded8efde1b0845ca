package commands

import (
	"context"
	"time"

	"parcel/internal/core/domain/model/payout"
	"parcel/internal/pkg/errs"
)

// UpdatePayoutStatusCommandHandler transitions payout batches. Reaching
// COMPLETED stamps the disbursement time; no other status gets special
// handling.
type UpdatePayoutStatusCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewUpdatePayoutStatusCommandHandler creates a handler for payout status
// transitions.
func NewUpdatePayoutStatusCommandHandler(uowFactory PayoutUoWFactory) UpdatePayoutStatusCommandHandler {
	return UpdatePayoutStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition and returns the updated payout.
// An unknown status name yields an invalid-value error; the payout lookup
// itself reports a not-found error on a miss.
func (h *UpdatePayoutStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePayoutStatusCommand,
) (*payout.Payout, error) {
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

	payoutRepo := uow.PayoutRepository()

	batch, err := payoutRepo.Get(ctx, cmd.PayoutID())
	if err != nil {
		return nil, err
	}

	target, err := uow.PayoutStatusRepository().FindByName(ctx, cmd.StatusName())
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errs.NewValueIsInvalidError("statusName")
	}

	if err = batch.ChangeStatus(*target, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = payoutRepo.Update(ctx, batch); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return batch, nil
}

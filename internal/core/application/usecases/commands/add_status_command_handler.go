package commands

import (
	"context"

	"parcel/internal/core/domain/model/status"
	"parcel/internal/pkg/errs"
)

// AddStatusCommandHandler registers new entries in the shipment status
// catalog. Duplicate names are rejected before any write happens.
type AddStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

// NewAddStatusCommandHandler creates a handler for catalog administration.
func NewAddStatusCommandHandler(uowFactory StatusUoWFactory) AddStatusCommandHandler {
	return AddStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the catalog entry and returns it.
// A name already present in the catalog yields an invalid-value error.
func (h *AddStatusCommandHandler) Handle(ctx context.Context, cmd AddStatusCommand) (status.Status, error) {
	if err := cmd.Validate(); err != nil {
		return status.Status{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return status.Status{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	statusRepo := uow.StatusRepository()

	taken, err := statusRepo.Exists(ctx, cmd.Name())
	if err != nil {
		return status.Status{}, err
	}
	if taken {
		return status.Status{}, errs.NewValueIsInvalidError("name")
	}

	entry, err := status.NewStatus(cmd.Name(), cmd.Label())
	if err != nil {
		return status.Status{}, err
	}

	if err = statusRepo.Add(ctx, entry); err != nil {
		return status.Status{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return status.Status{}, err
	}

	return entry, nil
}

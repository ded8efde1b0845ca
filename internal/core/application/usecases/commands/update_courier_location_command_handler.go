package commands

import (
	"context"

	"parcel/internal/pkg/errs"
)

// UpdateCourierLocationCommandHandler records courier position reports.
// Only users holding the courier role may report a position.
type UpdateCourierLocationCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateCourierLocationCommandHandler creates a handler for position
// reports.
func NewUpdateCourierLocationCommandHandler(uowFactory UserUoWFactory) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the reported position. A missing user is a not-found error;
// a non-courier target is a business-rule failure, kept distinct from
// not-found.
func (h *UpdateCourierLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCourierLocationCommand,
) error {
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

	userRepo := uow.UserRepository()

	courier, err := userRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if courier == nil {
		return errs.NewObjectNotFoundError("courierID", cmd.CourierID())
	}

	if err = courier.MoveTo(cmd.Location()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, courier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

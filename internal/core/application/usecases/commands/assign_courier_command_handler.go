package commands

import (
	"context"

	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/pkg/errs"
)

// AssignCourierCommandHandler puts shipments on courier runs. The target user
// must exist and hold the courier role.
type AssignCourierCommandHandler struct {
	uowFactory AssignUoWFactory
}

// NewAssignCourierCommandHandler creates a handler for manifest assignment.
func NewAssignCourierCommandHandler(uowFactory AssignUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the courier and returns the updated shipment.
// A missing user or shipment is a not-found error; a user who is not a
// courier is a business-rule failure, not a not-found.
func (h *AssignCourierCommandHandler) Handle(
	ctx context.Context,
	cmd AssignCourierCommand,
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

	courier, err := uow.UserRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}
	if courier == nil {
		return nil, errs.NewObjectNotFoundError("courierID", cmd.CourierID())
	}
	if !courier.IsCourier() {
		return nil, errs.NewDomainViolationError("only couriers can carry shipments")
	}

	shipmentRepo := uow.ShipmentRepository()

	assigned, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}
	if assigned == nil {
		return nil, errs.NewObjectNotFoundError("shipmentID", cmd.ShipmentID())
	}

	if err = assigned.AssignCourier(cmd.CourierID()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, assigned); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assigned, nil
}

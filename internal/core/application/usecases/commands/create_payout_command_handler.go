package commands

import (
	"context"
	"errors"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/payout"
	"parcel/internal/core/domain/model/shipment"
	"parcel/internal/core/domain/model/user"
	"parcel/internal/core/domain/services"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"
)

// ErrNoEligibleShipments indicates a settlement run found nothing to pay:
// every delivered shipment of the user is either already attached to a
// payout or, on the courier path, already cash-reconciled.
var ErrNoEligibleShipments = errors.New("no eligible shipments for settlement")

// CreatePayoutCommandHandler is the settlement engine. One run reads the
// user's eligible shipments, prices them under the commission policy, and
// persists a payout batch with one itemized line per shipment. Everything
// happens in a single transaction with the eligible rows locked, and each
// shipment is attached to the payout through a conditional update that
// re-checks it is still unconsumed, so no shipment can ever be paid twice,
// even under concurrent runs.
type CreatePayoutCommandHandler struct {
	uowFactory SettlementUoWFactory
	policy     services.SettlementPolicy
}

// NewCreatePayoutCommandHandler creates the settlement engine handler.
func NewCreatePayoutCommandHandler(uowFactory SettlementUoWFactory) CreatePayoutCommandHandler {
	return CreatePayoutCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewSettlementPolicy(),
	}
}

// Handle executes one settlement run and returns the persisted payout.
// A missing user is a not-found error; a user whose role does not match the
// payout type is a business-rule failure; a missing PENDING payout status is
// a deployment defect.
func (h *CreatePayoutCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePayoutCommand,
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

	settled, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if settled == nil {
		return nil, errs.NewObjectNotFoundError("userID", cmd.UserID())
	}
	if err = checkRoleMatchesPayoutType(settled, cmd.PayoutType()); err != nil {
		return nil, err
	}

	shipmentRepo := uow.ShipmentRepository()

	eligible, err := h.eligibleShipments(ctx, shipmentRepo, cmd)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, ErrNoEligibleShipments
	}

	netAmount, amounts, err := h.policy.NetAmount(cmd.PayoutType(), eligible)
	if err != nil {
		return nil, err
	}

	pending, err := uow.PayoutStatusRepository().FindByName(ctx, payout.StatusPending)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, errs.NewConfigurationError("PENDING payout status")
	}

	now := time.Now().UTC()
	batch, err := payout.NewPayout(
		kernel.NewUUID(),
		cmd.UserID(),
		cmd.PayoutType(),
		*pending,
		cmd.PeriodStart(),
		cmd.PeriodEnd(),
		netAmount,
		now,
	)
	if err != nil {
		return nil, err
	}

	payoutRepo := uow.PayoutRepository()
	if err = payoutRepo.Add(ctx, batch); err != nil {
		return nil, err
	}

	for i, contributing := range eligible {
		item, itemErr := payout.NewItem(batch.ID(), payout.SourceShipment, contributing.ID(), amounts[i])
		if itemErr != nil {
			return nil, itemErr
		}
		if itemErr = payoutRepo.AddItem(ctx, item); itemErr != nil {
			return nil, itemErr
		}
		if itemErr = shipmentRepo.AttachToPayout(ctx, contributing.ID(), batch.ID(), now); itemErr != nil {
			return nil, itemErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return batch, nil
}

func (h *CreatePayoutCommandHandler) eligibleShipments(
	ctx context.Context,
	shipmentRepo ports.ShipmentRepository,
	cmd CreatePayoutCommand,
) ([]*shipment.Shipment, error) {
	if cmd.PayoutType() == payout.CourierSettlement {
		return shipmentRepo.GetEligibleForCourierSettlement(ctx, cmd.UserID())
	}

	return shipmentRepo.GetEligibleForMerchantPayout(ctx, cmd.UserID())
}

func checkRoleMatchesPayoutType(settled *user.User, payoutType payout.Type) error {
	switch payoutType {
	case payout.CourierSettlement:
		if !settled.IsCourier() {
			return errs.NewDomainViolationError("courier settlements require a courier user")
		}
	case payout.MerchantPayout:
		if settled.Role() != user.Merchant {
			return errs.NewDomainViolationError("merchant payouts require a merchant user")
		}
	}

	return nil
}

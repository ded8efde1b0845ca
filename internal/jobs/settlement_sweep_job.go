// Package jobs contains the scheduled background work of the service.
package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/payout"
)

// SettlementSweepJob runs the weekly courier settlement sweep. Every courier
// holding delivered shipments that were never settled gets a settlement run
// for the previous week. Each run goes through the payout engine, so the
// sweep cannot settle a shipment twice.
type SettlementSweepJob struct {
	handler    commands.CreatePayoutCommandHandler
	uowFactory commands.SettlementUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewSettlementSweepJob creates the weekly sweep. The unit of work factory is
// only used to list couriers with unsettled deliveries; all money movement
// happens inside the payout handler.
func NewSettlementSweepJob(
	handler commands.CreatePayoutCommandHandler,
	uowFactory commands.SettlementUoWFactory,
	logger *slog.Logger,
) *SettlementSweepJob {
	return &SettlementSweepJob{
		handler:    handler,
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "settlement_sweep_job"),
	}
}

// Start schedules the sweep for Monday 03:00.
func (j *SettlementSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 3 * * MON", func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement sweep job started (weekly, Monday 03:00)")
	return nil
}

// Stop stops the sweep.
func (j *SettlementSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement sweep job stopped")
}

// Run executes one sweep pass. A courier whose eligible set emptied between
// listing and settling is skipped, not an error.
func (j *SettlementSweepJob) Run(ctx context.Context) {
	uow := j.uowFactory.Create()
	courierIDs, err := uow.ShipmentRepository().GetCourierIDsWithUnsettledDeliveries(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Settlement sweep failed to list couriers", "error", err)
		return
	}

	periodStart, periodEnd := previousWeek(time.Now().UTC())

	settled := 0
	for _, courierID := range courierIDs {
		cmd, err := commands.NewCreatePayoutCommand(courierID, payout.CourierSettlement, periodStart, periodEnd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Settlement sweep built an invalid command",
				"courierID", courierID.String(), "error", err)
			continue
		}

		if _, err := j.handler.Handle(ctx, cmd); err != nil {
			if errors.Is(err, commands.ErrNoEligibleShipments) {
				continue
			}
			j.logger.ErrorContext(ctx, "Settlement sweep failed for courier",
				"courierID", courierID.String(), "error", err)
			continue
		}
		settled++
	}

	j.logger.InfoContext(ctx, "Settlement sweep finished",
		"couriers", len(courierIDs), "settlements", settled)
}

// previousWeek returns the bounds of the ISO week before the one containing
// now: Monday 00:00 inclusive to the next Monday 00:00 exclusive.
func previousWeek(now time.Time) (time.Time, time.Time) {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	thisMonday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -(weekday - 1))
	return thisMonday.AddDate(0, 0, -7), thisMonday
}

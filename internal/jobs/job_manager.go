package jobs

import (
	"fmt"
	"log/slog"

	"parcel/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	settlementSweepJob *SettlementSweepJob
}

// NewJobManager creates a job manager with all scheduled jobs wired.
func NewJobManager(
	createPayoutHandler commands.CreatePayoutCommandHandler,
	uowFactory commands.SettlementUoWFactory,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementSweepJob: NewSettlementSweepJob(createPayoutHandler, uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.settlementSweepJob.Stop()
}

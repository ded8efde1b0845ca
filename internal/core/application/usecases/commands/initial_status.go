package commands

import (
	"context"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"
)

const trackingAttempts = 5

// resolveInitialStatus picks the status a freshly created shipment enters:
// PENDING_APPROVAL when the catalog has it, PENDING otherwise. Neither being
// seeded is a deployment defect, reported as a configuration error.
func resolveInitialStatus(ctx context.Context, statusRepo ports.StatusRepository) (status.Status, error) {
	for _, name := range []string{status.PendingApproval, status.Pending} {
		found, err := statusRepo.FindByName(ctx, name)
		if err != nil {
			return status.Status{}, err
		}
		if found != nil {
			return *found, nil
		}
	}

	return status.Status{}, errs.NewConfigurationError("initial shipment status")
}

// generateTrackingNumber draws random tracking numbers until one is free,
// giving up after a bounded number of collisions.
func generateTrackingNumber(
	ctx context.Context,
	shipmentRepo ports.ShipmentRepository,
) (kernel.TrackingNumber, error) {
	for attempt := 0; attempt < trackingAttempts; attempt++ {
		candidate := kernel.GenerateTrackingNumber()

		taken, err := shipmentRepo.ExistsByTrackingNumber(ctx, candidate)
		if err != nil {
			return kernel.TrackingNumber{}, err
		}
		if !taken {
			return candidate, nil
		}
	}

	return kernel.TrackingNumber{}, errs.NewValueIsInvalidError("trackingNumber")
}

package postgres

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parcel/internal/adapters/out/postgres/historyrepo"
	"parcel/internal/adapters/out/postgres/ledgerrepo"
	"parcel/internal/adapters/out/postgres/payoutrepo"
	"parcel/internal/adapters/out/postgres/returnrepo"
	"parcel/internal/adapters/out/postgres/shipmentrepo"
	"parcel/internal/adapters/out/postgres/statusrepo"
	"parcel/internal/adapters/out/postgres/userrepo"
)

// Migrate creates or updates the schema for every persisted structure.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&statusrepo.StatusDTO{},
		&shipmentrepo.ShipmentDTO{},
		&historyrepo.HistoryEntryDTO{},
		&payoutrepo.PayoutDTO{},
		&payoutrepo.PayoutItemDTO{},
		&payoutrepo.PayoutStatusDTO{},
		&returnrepo.ReturnLinkDTO{},
		&ledgerrepo.MovementDTO{},
		&userrepo.UserDTO{},
	)
}

// SeedCatalogs inserts the baseline shipment and payout status catalogs.
// Inserts are idempotent; existing rows keep their labels so operator edits
// survive restarts. With the catalogs seeded, a missing required status is a
// deployment defect rather than a normal path.
func SeedCatalogs(db *gorm.DB) error {
	shipmentStatuses := []statusrepo.StatusDTO{
		{Name: "PENDING_APPROVAL", Label: "Pending Approval"},
		{Name: "PENDING", Label: "Pending"},
		{Name: "PICKED_UP", Label: "Picked Up"},
		{Name: "IN_TRANSIT", Label: "In Transit"},
		{Name: "DELIVERED", Label: "Delivered"},
		{Name: "RETURNED_TO_ORIGIN", Label: "Returned to Origin"},
		{Name: "CANCELLED", Label: "Cancelled"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&shipmentStatuses).Error; err != nil {
		return err
	}

	payoutStatuses := []payoutrepo.PayoutStatusDTO{
		{Name: "PENDING", Label: "Pending"},
		{Name: "COMPLETED", Label: "Completed"},
		{Name: "CANCELLED", Label: "Cancelled"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&payoutStatuses).Error
}

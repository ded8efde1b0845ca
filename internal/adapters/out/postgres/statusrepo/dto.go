// Package statusrepo persists the shipment status catalog. Entries are
// keyed by name and never change once created, so the repository exposes no
// update path.
package statusrepo

import (
	"parcel/internal/core/domain/model/status"
)

// StatusDTO represents one catalog row. The machine name is the primary key;
// shipments denormalize name and label into their own rows, so this table is
// only read during name resolution.
type StatusDTO struct {
	Name  string `gorm:"primaryKey"`
	Label string
}

// TableName overrides GORM's default naming to use "statuses".
func (StatusDTO) TableName() string {
	return "statuses"
}

func fromDomain(entry status.Status) StatusDTO {
	return StatusDTO{
		Name:  entry.Name(),
		Label: entry.Label(),
	}
}

func toDomain(dto StatusDTO) (status.Status, error) {
	return status.NewStatus(dto.Name, dto.Label)
}

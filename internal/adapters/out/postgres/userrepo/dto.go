// Package userrepo provides persistence for the settled parties of the
// network (couriers and merchants).
package userrepo

import (
	"github.com/google/uuid"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting users. Location
// columns are nullable because merchants never report a position and couriers
// start without one.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(32);not null"`
	LocationX *kernel.Coordinate `gorm:"type:smallint"`
	LocationY *kernel.Coordinate `gorm:"type:smallint"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	dto := UserDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Role: string(aggregate.Role()),
	}

	if location := aggregate.Location(); location != nil {
		x, y := location.X(), location.Y()
		dto.LocationX = &x
		dto.LocationY = &y
	}

	return dto
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.LocationX != nil && dto.LocationY != nil {
		restored, err := kernel.NewLocation(*dto.LocationX, *dto.LocationY)
		if err != nil {
			return nil, err
		}
		location = &restored
	}

	return user.RestoreUser(id, dto.Name, user.Role(dto.Role), location)
}

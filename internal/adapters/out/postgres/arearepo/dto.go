// Package arearepo persists areas.
package arearepo

import (
	"dispatch/internal/core/domain/model/area"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AreaDTO is the database representation of an area. The unique index on
// name backs the platform-wide name uniqueness rule.
type AreaDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex"`
}

// TableName overrides GORM's default naming to "areas".
func (AreaDTO) TableName() string {
	return "areas"
}

func fromDomain(aggregate *area.Area) AreaDTO {
	return AreaDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

func toDomain(dto AreaDTO) (*area.Area, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return area.RestoreArea(id, dto.Name)
}

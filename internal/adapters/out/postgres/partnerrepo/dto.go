// Package partnerrepo persists partner aggregates.
package partnerrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO is the database representation of a partner.
type PartnerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Status        int
	Online        bool
	CurrentAreaID *uuid.UUID `gorm:"type:uuid"`
	Wallet        float64
}

// TableName overrides GORM's default naming to "partners".
func (PartnerDTO) TableName() string {
	return "partners"
}

func fromDomain(aggregate *partner.Partner) PartnerDTO {
	var currentAreaID *uuid.UUID
	if id := aggregate.CurrentAreaID(); id != nil {
		raw := id.Bytes()
		currentAreaID = &raw
	}

	return PartnerDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Status:        int(aggregate.Status()),
		Online:        aggregate.IsOnline(),
		CurrentAreaID: currentAreaID,
		Wallet:        aggregate.Wallet().Amount(),
	}
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentAreaID *kernel.UUID
	if dto.CurrentAreaID != nil {
		areaID, areaErr := kernel.UUIDFromBytes((*dto.CurrentAreaID)[:])
		if areaErr != nil {
			return nil, areaErr
		}
		currentAreaID = &areaID
	}

	wallet, err := kernel.NewMoney(dto.Wallet)
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(id, dto.Name, partner.Status(dto.Status),
		dto.Online, currentAreaID, wallet)
}

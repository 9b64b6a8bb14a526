// Package tariffrepo persists the directed charge matrix.
package tariffrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// ChargeRuleDTO is the database representation of one charge rule. The
// composite primary key over the ordered pair guarantees at most one rule
// per direction.
type ChargeRuleDTO struct {
	FromAreaID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ToAreaID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Amount     float64
}

// TableName overrides GORM's default naming to "charge_rules".
func (ChargeRuleDTO) TableName() string {
	return "charge_rules"
}

func fromDomain(rule *pricing.ChargeRule) ChargeRuleDTO {
	return ChargeRuleDTO{
		FromAreaID: rule.FromAreaID().Bytes(),
		ToAreaID:   rule.ToAreaID().Bytes(),
		Amount:     rule.Amount().Amount(),
	}
}

func toDomain(dto ChargeRuleDTO) (*pricing.ChargeRule, error) {
	fromAreaID, err := kernel.UUIDFromBytes(dto.FromAreaID[:])
	if err != nil {
		return nil, err
	}
	toAreaID, err := kernel.UUIDFromBytes(dto.ToAreaID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}
	return pricing.RestoreChargeRule(fromAreaID, toAreaID, amount)
}

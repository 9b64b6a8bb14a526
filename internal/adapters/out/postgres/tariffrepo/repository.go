package tariffrepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormChargeRuleRepository implements ports.ChargeRuleRepository using GORM.
type GormChargeRuleRepository struct {
	db *gorm.DB
}

// NewGormChargeRuleRepository creates a new GORM charge rule repository.
func NewGormChargeRuleRepository(db *gorm.DB) *GormChargeRuleRepository {
	return &GormChargeRuleRepository{db: db}
}

// Upsert inserts the rule or replaces the amount for an existing pair.
func (r *GormChargeRuleRepository) Upsert(ctx context.Context, rule *pricing.ChargeRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rule)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_area_id"}, {Name: "to_area_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),
	}).Create(&dto).Error
}

// Get retrieves the rule for the ordered (from, to) pair. A miss means no
// route is priced for that direction.
func (r *GormChargeRuleRepository) Get(
	ctx context.Context,
	fromAreaID, toAreaID kernel.UUID,
) (*pricing.ChargeRule, error) {
	if err := fromAreaID.Validate(); err != nil {
		return nil, err
	}
	if err := toAreaID.Validate(); err != nil {
		return nil, err
	}

	var dto ChargeRuleDTO
	err := r.db.WithContext(ctx).
		First(&dto, "from_area_id = ? AND to_area_id = ?", fromAreaID.Bytes(), toAreaID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("charge rule",
				fmt.Sprintf("%s->%s", fromAreaID, toAreaID))
		}
		return nil, err
	}

	return toDomain(dto)
}

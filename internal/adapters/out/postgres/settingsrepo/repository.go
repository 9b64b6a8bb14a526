// Package settingsrepo persists platform-wide settings as key/value rows.
// Missing keys fall back to platform defaults so a fresh database behaves
// sensibly without seeding.
package settingsrepo

import (
	"context"
	"errors"
	"strconv"

	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const commissionPercentKey = "commission_percent"

// SettingDTO is one key/value settings row.
type SettingDTO struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// TableName overrides GORM's default naming to "settings".
func (SettingDTO) TableName() string {
	return "settings"
}

// GormSettingsRepository implements ports.SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// CommissionRate returns the stored rate, or the platform default when no
// rate has ever been configured.
func (r *GormSettingsRepository) CommissionRate(ctx context.Context) (pricing.CommissionRate, error) {
	var dto SettingDTO
	err := r.db.WithContext(ctx).First(&dto, "key = ?", commissionPercentKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.DefaultCommissionRate(), nil
		}
		return pricing.CommissionRate{}, err
	}

	percent, err := strconv.ParseFloat(dto.Value, 64)
	if err != nil {
		return pricing.CommissionRate{}, errs.NewValueIsInvalidErrorWithCause(commissionPercentKey, err)
	}

	return pricing.NewCommissionRate(percent)
}

// SetCommissionRate stores the rate, replacing any previous value.
func (r *GormSettingsRepository) SetCommissionRate(ctx context.Context, rate pricing.CommissionRate) error {
	dto := SettingDTO{
		Key:   commissionPercentKey,
		Value: strconv.FormatFloat(rate.Percent(), 'f', -1, 64),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&dto).Error
}

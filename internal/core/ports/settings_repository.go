package ports

import (
	"context"

	"dispatch/internal/core/domain/model/pricing"
)

// SettingsRepository is the persistence contract for platform-wide settings.
// Today that is the single commission rate.
type SettingsRepository interface {
	// CommissionRate returns the configured rate, or the platform default
	// when none has been set yet.
	CommissionRate(ctx context.Context) (pricing.CommissionRate, error)

	// SetCommissionRate stores the rate, replacing any previous value. Only
	// orders created afterwards are affected; existing orders keep the
	// commission frozen at their creation.
	SetCommissionRate(ctx context.Context, rate pricing.CommissionRate) error
}

package pricing

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const (
	minCommissionPercent = 0.0
	maxCommissionPercent = 100.0

	// DefaultCommissionPercent applies when no rate has ever been configured.
	DefaultCommissionPercent = 10.0
)

// CommissionRate is the platform's commission percentage (0-100). It is a
// mutable singleton in the store, but each order freezes the rate in effect
// at its creation, so later changes never touch historical accounting.
type CommissionRate struct {
	percent float64
}

// NewCommissionRate creates a rate, rejecting percentages outside 0..100.
func NewCommissionRate(percent float64) (CommissionRate, error) {
	if percent < minCommissionPercent || percent > maxCommissionPercent {
		return CommissionRate{}, errs.NewValueIsOutOfRangeError(
			"commission percentage", percent, minCommissionPercent, maxCommissionPercent)
	}
	return CommissionRate{percent: percent}, nil
}

// DefaultCommissionRate returns the platform default rate.
func DefaultCommissionRate() CommissionRate {
	return CommissionRate{percent: DefaultCommissionPercent}
}

// Percent returns the raw percentage.
func (r CommissionRate) Percent() float64 {
	return r.percent
}

// Apply computes the commission for a charge: amount * percent / 100.
// Because percent is at most 100, the commission never exceeds the amount.
func (r CommissionRate) Apply(amount kernel.Money) kernel.Money {
	commission, _ := kernel.NewMoney(amount.Amount() * r.percent / 100.0)
	return commission
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/pkg/guard"
)

var (
	ErrSetCommissionRateCommandIsNotConstructed = errors.New(
		"SetCommissionRateCommand must be created via NewSetCommissionRateCommand constructor",
	)
)

// SetCommissionRateCommand represents an administrator changing the platform
// commission percentage. Only orders created after the change use the new
// rate.
type SetCommissionRateCommand struct { //nolint:recvcheck //using for validation
	rate pricing.CommissionRate

	guard guard.ConstructorGuard
}

// NewSetCommissionRateCommand validates the percentage and builds the command.
func NewSetCommissionRateCommand(percent float64) (SetCommissionRateCommand, error) {
	rate, err := pricing.NewCommissionRate(percent)
	if err != nil {
		return SetCommissionRateCommand{}, err
	}

	return SetCommissionRateCommand{
		rate:  rate,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCommissionRateCommand) Validate() error {
	return c.guard.Validate(ErrSetCommissionRateCommandIsNotConstructed)
}

// Rate returns the new commission rate.
func (c SetCommissionRateCommand) Rate() pricing.CommissionRate { return c.rate }

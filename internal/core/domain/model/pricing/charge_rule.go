package pricing

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// ErrChargeRuleIsNotConstructed is returned when a ChargeRule instance was
// not created through NewChargeRule or RestoreChargeRule.
var ErrChargeRuleIsNotConstructed = errors.New(
	"ChargeRule must be created via NewChargeRule or RestoreChargeRule")

// ChargeRule is the directed price for a delivery between two areas. At most
// one rule exists per ordered (from, to) pair; the pair may be symmetric or
// equal, and same-area rules must be seeded explicitly — there is no implicit
// zero-cost default.
type ChargeRule struct {
	fromAreaID kernel.UUID
	toAreaID   kernel.UUID
	amount     kernel.Money

	guard guard.ConstructorGuard
}

// NewChargeRule creates a rule for the ordered area pair. Money is
// non-negative by construction, so no extra amount check is needed.
func NewChargeRule(fromAreaID, toAreaID kernel.UUID, amount kernel.Money) (*ChargeRule, error) {
	if err := fromAreaID.Validate(); err != nil {
		return nil, err
	}
	if err := toAreaID.Validate(); err != nil {
		return nil, err
	}

	return &ChargeRule{
		fromAreaID: fromAreaID,
		toAreaID:   toAreaID,
		amount:     amount,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreChargeRule rebuilds a rule from persistence.
func RestoreChargeRule(fromAreaID, toAreaID kernel.UUID, amount kernel.Money) (*ChargeRule, error) {
	return NewChargeRule(fromAreaID, toAreaID, amount)
}

// Validate ensures the ChargeRule was built through a constructor.
func (c *ChargeRule) Validate() error {
	if c == nil {
		return ErrChargeRuleIsNotConstructed
	}
	return c.guard.Validate(ErrChargeRuleIsNotConstructed)
}

// FromAreaID returns the pickup side of the pair.
func (c *ChargeRule) FromAreaID() kernel.UUID { return c.fromAreaID }

// ToAreaID returns the drop side of the pair.
func (c *ChargeRule) ToAreaID() kernel.UUID { return c.toAreaID }

// Amount returns the delivery charge.
func (c *ChargeRule) Amount() kernel.Money { return c.amount }

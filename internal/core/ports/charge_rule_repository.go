package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pricing"
)

// ChargeRuleRepository is the persistence contract for the directed charge
// matrix. A lookup miss is an expected outcome (no route), reported as an
// object-not-found error, never masked with a default.
type ChargeRuleRepository interface {
	// Upsert creates the rule for the ordered pair or replaces its amount.
	Upsert(ctx context.Context, rule *pricing.ChargeRule) error

	// Get retrieves the rule for the ordered (from, to) pair.
	Get(ctx context.Context, fromAreaID, toAreaID kernel.UUID) (*pricing.ChargeRule, error)
}

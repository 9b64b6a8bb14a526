package commands

import (
	"context"

	"dispatch/internal/core/domain/model/pricing"
)

// SetAreaChargeCommandHandler upserts the charge rule for an ordered area
// pair. Both areas are checked for existence so a typo'd identifier cannot
// silently create an unreachable rule.
type SetAreaChargeCommandHandler struct {
	uowFactory TariffUoWFactory
}

// NewSetAreaChargeCommandHandler creates a handler for charge rule changes.
func NewSetAreaChargeCommandHandler(uowFactory TariffUoWFactory) SetAreaChargeCommandHandler {
	return SetAreaChargeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies both areas exist, builds the rule and upserts it for the
// (from, to) pair.
func (h SetAreaChargeCommandHandler) Handle(ctx context.Context, cmd SetAreaChargeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	areaRepo := uow.AreaRepository()
	if _, err := areaRepo.Get(ctx, cmd.FromAreaID()); err != nil {
		return err
	}
	if !cmd.ToAreaID().IsEqual(cmd.FromAreaID()) {
		if _, err := areaRepo.Get(ctx, cmd.ToAreaID()); err != nil {
			return err
		}
	}

	rule, err := pricing.NewChargeRule(cmd.FromAreaID(), cmd.ToAreaID(), cmd.Amount())
	if err != nil {
		return err
	}

	if err = uow.ChargeRuleRepository().Upsert(ctx, rule); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

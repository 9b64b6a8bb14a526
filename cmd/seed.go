package cmd

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/area"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/pkg/errs"
)

// SeedDefaults installs the starter configuration on an empty store: two
// areas, a charge for every area pair and the default commission rate. It is
// a no-op when the areas already exist, so restarts never duplicate data.
func (c *CompositionRoot) SeedDefaults(ctx context.Context) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.AreaRepository().GetByName(ctx, "Area A")
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	areaA, err := area.NewArea(kernel.NewUUID(), "Area A")
	if err != nil {
		return err
	}
	areaB, err := area.NewArea(kernel.NewUUID(), "Area B")
	if err != nil {
		return err
	}
	if err = uow.AreaRepository().Add(ctx, areaA); err != nil {
		return err
	}
	if err = uow.AreaRepository().Add(ctx, areaB); err != nil {
		return err
	}

	charges := []struct {
		from   kernel.UUID
		to     kernel.UUID
		amount float64
	}{
		{areaA.ID(), areaA.ID(), 50},
		{areaA.ID(), areaB.ID(), 50},
		{areaB.ID(), areaA.ID(), 30},
		{areaB.ID(), areaB.ID(), 30},
	}
	for _, charge := range charges {
		amount, moneyErr := kernel.NewMoney(charge.amount)
		if moneyErr != nil {
			return moneyErr
		}
		rule, ruleErr := pricing.NewChargeRule(charge.from, charge.to, amount)
		if ruleErr != nil {
			return ruleErr
		}
		if err = uow.ChargeRuleRepository().Upsert(ctx, rule); err != nil {
			return fmt.Errorf("seed charge rule: %w", err)
		}
	}

	rate, err := pricing.NewCommissionRate(pricing.DefaultCommissionPercent)
	if err != nil {
		return err
	}
	if err = uow.SettingsRepository().SetCommissionRate(ctx, rate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// SetCommissionRateCommandHandler stores the platform commission rate.
type SetCommissionRateCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewSetCommissionRateCommandHandler creates a handler for commission changes.
func NewSetCommissionRateCommandHandler(uowFactory SettingsUoWFactory) SetCommissionRateCommandHandler {
	return SetCommissionRateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the new rate.
func (h SetCommissionRateCommandHandler) Handle(ctx context.Context, cmd SetCommissionRateCommand) error {
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

	if err := uow.SettingsRepository().SetCommissionRate(ctx, cmd.Rate()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

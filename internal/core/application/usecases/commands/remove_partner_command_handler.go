package commands

import (
	"context"
)

// RemovePartnerCommandHandler deletes a partner record. Orders the partner
// worked keep their partner reference for accounting; removal does not
// rewrite history.
type RemovePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewRemovePartnerCommandHandler creates a handler for partner removal.
func NewRemovePartnerCommandHandler(uowFactory PartnerUoWFactory) RemovePartnerCommandHandler {
	return RemovePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the partner exists and deletes the record.
func (h RemovePartnerCommandHandler) Handle(ctx context.Context, cmd RemovePartnerCommand) error {
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

	partnerRepo := uow.PartnerRepository()

	if _, err := partnerRepo.Get(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	if err := partnerRepo.Remove(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// SetPartnerOnlineCommandHandler flips a partner's availability flag.
type SetPartnerOnlineCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewSetPartnerOnlineCommandHandler creates a handler for availability changes.
func NewSetPartnerOnlineCommandHandler(uowFactory PartnerUoWFactory) SetPartnerOnlineCommandHandler {
	return SetPartnerOnlineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the partner, sets the flag and persists the change.
func (h SetPartnerOnlineCommandHandler) Handle(ctx context.Context, cmd SetPartnerOnlineCommand) error {
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

	targetPartner, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	targetPartner.SetOnline(cmd.Online())

	if err = partnerRepo.Update(ctx, targetPartner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
)

// SetPartnerAreaCommandHandler records the area a partner serves. The area's
// existence is checked so a typo'd identifier cannot silently empty the
// partner's feed.
type SetPartnerAreaCommandHandler struct {
	uowFactory PartnerAreaUoWFactory
}

// NewSetPartnerAreaCommandHandler creates a handler for partner area changes.
func NewSetPartnerAreaCommandHandler(uowFactory PartnerAreaUoWFactory) SetPartnerAreaCommandHandler {
	return SetPartnerAreaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the area exists, assigns it to the partner and persists the
// change.
func (h SetPartnerAreaCommandHandler) Handle(ctx context.Context, cmd SetPartnerAreaCommand) error {
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

	if _, err := uow.AreaRepository().Get(ctx, cmd.AreaID()); err != nil {
		return err
	}

	partnerRepo := uow.PartnerRepository()

	targetPartner, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = targetPartner.AssignArea(cmd.AreaID()); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, targetPartner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

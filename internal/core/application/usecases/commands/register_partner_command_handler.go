package commands

import (
	"context"

	"dispatch/internal/core/domain/model/partner"
)

// RegisterPartnerCommandHandler persists new partner registrations in the
// pending status.
type RegisterPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewRegisterPartnerCommandHandler creates a handler for partner registration.
func NewRegisterPartnerCommandHandler(uowFactory PartnerUoWFactory) RegisterPartnerCommandHandler {
	return RegisterPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates and stores the pending partner.
func (h RegisterPartnerCommandHandler) Handle(ctx context.Context, cmd RegisterPartnerCommand) error {
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

	newPartner, err := partner.NewPartner(cmd.PartnerID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.PartnerRepository().Add(ctx, newPartner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

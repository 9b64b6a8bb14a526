package commands

import (
	"context"
)

// ApprovePartnerCommandHandler activates pending partners. Approving an
// already active partner succeeds without change.
type ApprovePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewApprovePartnerCommandHandler creates a handler for partner approval.
func NewApprovePartnerCommandHandler(uowFactory PartnerUoWFactory) ApprovePartnerCommandHandler {
	return ApprovePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the partner, marks it active and persists the change.
func (h ApprovePartnerCommandHandler) Handle(ctx context.Context, cmd ApprovePartnerCommand) error {
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

	targetPartner.Approve()

	if err = partnerRepo.Update(ctx, targetPartner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

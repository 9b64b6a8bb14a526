package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler applies partner-driven lifecycle transitions.
//
// Completion settles the order: the partner's wallet is credited with
// amount minus commission in the same transaction that moves the status to
// completed. Retrying a completion finds the order already completed, fails
// the transition and therefore never credits twice — idempotence rides on
// the state machine, not on a separate flag.
//
// A decline is never stored as a status. The order returns to pending with
// the assignment cleared; the event itself is recorded in the log so the
// history is not silently dropped.
type AdvanceOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	logger     *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for lifecycle transitions.
func NewAdvanceOrderCommandHandler(
	uowFactory DispatchUoWFactory,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "advance_order"),
	}
}

// Handle validates ownership and the transition on the locked order row, and
// settles the wallet when the order completes. Either everything commits or
// nothing does.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	targetOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = targetOrder.Advance(cmd.PartnerID(), cmd.Transition()); err != nil {
		return err
	}

	if cmd.Transition() == order.TransitionComplete {
		if err = h.creditPartner(ctx, uow, targetOrder); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Transition() == order.TransitionDecline {
		h.logger.InfoContext(ctx, "order declined and returned to pool",
			"order_id", cmd.OrderID().String(),
			"partner_id", cmd.PartnerID().String())
	}

	return nil
}

func (h AdvanceOrderCommandHandler) creditPartner(
	ctx context.Context,
	uow DispatchUoW,
	completedOrder *order.Order,
) error {
	earning, err := completedOrder.Earning()
	if err != nil {
		return err
	}

	partnerRepo := uow.PartnerRepository()
	assignedPartner, err := partnerRepo.GetForUpdate(ctx, *completedOrder.PartnerID())
	if err != nil {
		return err
	}

	assignedPartner.Credit(earning)
	return partnerRepo.Update(ctx, assignedPartner)
}

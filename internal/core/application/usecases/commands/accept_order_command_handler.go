package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/partner"
)

// ErrPartnerAlreadyActive is returned when the accepting partner already
// holds an order in an active status. A partner works at most one order at a
// time.
var ErrPartnerAlreadyActive = errors.New("partner already has an active order")

// AcceptOrderCommandHandler is the dispatch admission controller. It enforces
// the two serializability requirements of the accept operation:
//
//   - per order: two partners racing for the same order resolve to exactly
//     one winner, because the order row is locked before the pending check
//     and the loser finds it already accepted;
//   - per partner: a partner racing to accept two orders resolves to at most
//     one win, because the partner row is locked before the active-order
//     count and the second transaction waits for the first to commit.
//
// Both locks live in the store, so the guarantee holds across server
// processes. The losing side of an order race surfaces as
// order.ErrOrderNotPending, indistinguishable from finding the order taken a
// moment later, which is intentional.
type AcceptOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory DispatchUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs the admission check and the assignment as one atomic unit.
// A failed accept leaves the order exactly as it was.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	// Lock the partner row first: this serializes concurrent accepts by the
	// same partner and fixes the active-order count for the transaction.
	acceptingPartner, err := partnerRepo.GetForUpdate(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}
	if !acceptingPartner.IsApproved() {
		return partner.ErrPartnerNotApproved
	}

	activeCount, err := orderRepo.CountActiveByPartner(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}
	if activeCount > 0 {
		return ErrPartnerAlreadyActive
	}

	targetOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = targetOrder.Accept(cmd.PartnerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

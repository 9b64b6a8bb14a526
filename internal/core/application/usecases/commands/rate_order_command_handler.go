package commands

import (
	"context"
)

// RateOrderCommandHandler stores a customer rating on a completed order. The
// aggregate rejects ratings from anyone but the ordering customer and ratings
// on orders that have not completed.
type RateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRateOrderCommandHandler creates a handler for order rating.
func NewRateOrderCommandHandler(uowFactory OrderUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the rating and persists it. Re-rating
// overwrites the previous rating.
func (h RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
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

	targetOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = targetOrder.Rate(cmd.CustomerID(), cmd.Score(), cmd.Comment()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

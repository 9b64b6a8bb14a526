package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// ErrNoRouteAvailable is returned when no charge rule exists for the
// requested (pickup, drop) area pair. Same-area deliveries need an explicit
// rule too; absence is a legitimate outcome, not a zero-cost default.
var ErrNoRouteAvailable = errors.New("no route available between the requested areas")

// CreateOrderCommandHandler prices and persists new orders. The charge comes
// from the rule for the ordered area pair, the commission from the platform
// rate in effect right now; both are frozen onto the order so later tariff or
// rate changes never alter this order's accounting.
type CreateOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory IntakeUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the charge, applies the commission rate and stores the
// pending order, all in one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	rule, err := uow.ChargeRuleRepository().Get(ctx, cmd.PickupAreaID(), cmd.DropAreaID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoRouteAvailable
	}
	if err != nil {
		return err
	}

	rate, err := uow.SettingsRepository().CommissionRate(ctx)
	if err != nil {
		return err
	}

	amount := rule.Amount()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.PickupAreaID(),
		cmd.DropAreaID(),
		cmd.PickupAddress(),
		cmd.DropAddress(),
		amount,
		rate.Apply(amount),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

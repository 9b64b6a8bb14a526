package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand represents a partner driving an order through its
// lifecycle: picked_up, arrived, completed, or the decline shortcut back to
// pending.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	partnerID  kernel.UUID
	orderID    kernel.UUID
	transition order.Transition

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand validates identifiers and the transition and builds
// the command. Unknown transition inputs are rejected here, before any store
// access.
func NewAdvanceOrderCommand(
	partnerID kernel.UUID,
	orderID kernel.UUID,
	transition order.Transition,
) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setOrderID(orderID),
		cmd.setTransition(transition),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// PartnerID returns the requesting partner.
func (c AdvanceOrderCommand) PartnerID() kernel.UUID { return c.partnerID }

// OrderID returns the targeted order.
func (c AdvanceOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Transition returns the requested lifecycle move.
func (c AdvanceOrderCommand) Transition() order.Transition { return c.transition }

func (c *AdvanceOrderCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setTransition(transition order.Transition) error {
	if err := transition.Validate(); err != nil {
		return err
	}
	c.transition = transition
	return nil
}

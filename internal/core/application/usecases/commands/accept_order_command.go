package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
)

// AcceptOrderCommand represents a partner's claim on a pending order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand validates both identifiers and builds the command.
func NewAcceptOrderCommand(partnerID, orderID kernel.UUID) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setOrderID(orderID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// PartnerID returns the accepting partner.
func (c AcceptOrderCommand) PartnerID() kernel.UUID { return c.partnerID }

// OrderID returns the targeted order.
func (c AcceptOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c *AcceptOrderCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRateOrderCommandIsNotConstructed = errors.New(
		"RateOrderCommand must be created via NewRateOrderCommand constructor",
	)
)

// RateOrderCommand represents a customer rating their completed order.
// The score range is enforced by the order aggregate, not here; the command
// only carries the raw inputs.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    kernel.UUID
	score      int
	comment    string

	guard guard.ConstructorGuard
}

// NewRateOrderCommand validates identifiers and builds the command. The
// comment may be empty.
func NewRateOrderCommand(
	customerID kernel.UUID,
	orderID kernel.UUID,
	score int,
	comment string,
) (RateOrderCommand, error) {
	cmd := RateOrderCommand{
		score:   score,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setOrderID(orderID),
	); err != nil {
		return RateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// CustomerID returns the rating customer.
func (c RateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// OrderID returns the rated order.
func (c RateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Score returns the requested score.
func (c RateOrderCommand) Score() int { return c.score }

// Comment returns the optional free-text comment.
func (c RateOrderCommand) Comment() string { return c.comment }

func (c *RateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *RateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

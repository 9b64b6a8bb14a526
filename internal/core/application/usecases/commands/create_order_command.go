package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer's request for a delivery between
// two areas. The caller identity (customer id) is an explicit parameter, not
// ambient session state.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	pickupAreaID  kernel.UUID
	dropAreaID    kernel.UUID
	pickupAddress string
	dropAddress   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers and addresses and builds the
// command. Pricing is not resolved here; the handler looks up the charge rule
// inside its transaction.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	pickupAreaID kernel.UUID,
	dropAreaID kernel.UUID,
	pickupAddress string,
	dropAddress string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setAreas(pickupAreaID, dropAreaID),
		cmd.setAddresses(pickupAddress, dropAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the identifier of the requesting customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// PickupAreaID returns the pickup area.
func (c CreateOrderCommand) PickupAreaID() kernel.UUID { return c.pickupAreaID }

// DropAreaID returns the drop area.
func (c CreateOrderCommand) DropAreaID() kernel.UUID { return c.dropAreaID }

// PickupAddress returns the free-text pickup address.
func (c CreateOrderCommand) PickupAddress() string { return c.pickupAddress }

// DropAddress returns the free-text drop address.
func (c CreateOrderCommand) DropAddress() string { return c.dropAddress }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setAreas(pickupAreaID, dropAreaID kernel.UUID) error {
	if err := pickupAreaID.Validate(); err != nil {
		return err
	}
	if err := dropAreaID.Validate(); err != nil {
		return err
	}
	c.pickupAreaID = pickupAreaID
	c.dropAreaID = dropAreaID
	return nil
}

func (c *CreateOrderCommand) setAddresses(pickupAddress, dropAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if dropAddress == "" {
		return errs.NewValueIsRequiredError("dropAddress")
	}
	c.pickupAddress = pickupAddress
	c.dropAddress = dropAddress
	return nil
}

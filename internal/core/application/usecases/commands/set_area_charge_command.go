package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrSetAreaChargeCommandIsNotConstructed = errors.New(
		"SetAreaChargeCommand must be created via NewSetAreaChargeCommand constructor",
	)
)

// SetAreaChargeCommand represents an administrator pricing a route between
// two areas. Setting a charge for an already priced pair overwrites it;
// orders created under the old price keep it.
type SetAreaChargeCommand struct { //nolint:recvcheck //using for validation
	fromAreaID kernel.UUID
	toAreaID   kernel.UUID
	amount     kernel.Money

	guard guard.ConstructorGuard
}

// NewSetAreaChargeCommand validates the area pair and builds the command. The
// amount is validated by Money's own constructor before it gets here.
func NewSetAreaChargeCommand(
	fromAreaID kernel.UUID,
	toAreaID kernel.UUID,
	amount kernel.Money,
) (SetAreaChargeCommand, error) {
	cmd := SetAreaChargeCommand{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFromAreaID(fromAreaID),
		cmd.setToAreaID(toAreaID),
	); err != nil {
		return SetAreaChargeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAreaChargeCommand) Validate() error {
	return c.guard.Validate(ErrSetAreaChargeCommandIsNotConstructed)
}

// FromAreaID returns the pickup side of the pair.
func (c SetAreaChargeCommand) FromAreaID() kernel.UUID { return c.fromAreaID }

// ToAreaID returns the drop side of the pair.
func (c SetAreaChargeCommand) ToAreaID() kernel.UUID { return c.toAreaID }

// Amount returns the delivery charge for the pair.
func (c SetAreaChargeCommand) Amount() kernel.Money { return c.amount }

func (c *SetAreaChargeCommand) setFromAreaID(fromAreaID kernel.UUID) error {
	if err := fromAreaID.Validate(); err != nil {
		return err
	}
	c.fromAreaID = fromAreaID
	return nil
}

func (c *SetAreaChargeCommand) setToAreaID(toAreaID kernel.UUID) error {
	if err := toAreaID.Validate(); err != nil {
		return err
	}
	c.toAreaID = toAreaID
	return nil
}

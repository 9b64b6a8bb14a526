package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrSetPartnerAreaCommandIsNotConstructed = errors.New(
		"SetPartnerAreaCommand must be created via NewSetPartnerAreaCommand constructor",
	)
)

// SetPartnerAreaCommand represents a partner choosing the area they serve.
// The available-orders feed is filtered by this area.
type SetPartnerAreaCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	areaID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetPartnerAreaCommand validates both identifiers and builds the command.
func NewSetPartnerAreaCommand(partnerID, areaID kernel.UUID) (SetPartnerAreaCommand, error) {
	cmd := SetPartnerAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setAreaID(areaID),
	); err != nil {
		return SetPartnerAreaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPartnerAreaCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerAreaCommandIsNotConstructed)
}

// PartnerID returns the partner changing areas.
func (c SetPartnerAreaCommand) PartnerID() kernel.UUID { return c.partnerID }

// AreaID returns the chosen area.
func (c SetPartnerAreaCommand) AreaID() kernel.UUID { return c.areaID }

func (c *SetPartnerAreaCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

func (c *SetPartnerAreaCommand) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}
	c.areaID = areaID
	return nil
}

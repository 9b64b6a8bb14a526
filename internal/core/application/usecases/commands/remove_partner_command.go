package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRemovePartnerCommandIsNotConstructed = errors.New(
		"RemovePartnerCommand must be created via NewRemovePartnerCommand constructor",
	)
)

// RemovePartnerCommand represents an administrator removing a partner from
// the platform.
type RemovePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemovePartnerCommand validates the identifier and builds the command.
func NewRemovePartnerCommand(partnerID kernel.UUID) (RemovePartnerCommand, error) {
	cmd := RemovePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return RemovePartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePartnerCommand) Validate() error {
	return c.guard.Validate(ErrRemovePartnerCommandIsNotConstructed)
}

// PartnerID returns the partner to remove.
func (c RemovePartnerCommand) PartnerID() kernel.UUID { return c.partnerID }

func (c *RemovePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

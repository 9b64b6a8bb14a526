package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrSetPartnerOnlineCommandIsNotConstructed = errors.New(
		"SetPartnerOnlineCommand must be created via NewSetPartnerOnlineCommand constructor",
	)
)

// SetPartnerOnlineCommand represents a partner going on or off shift. An
// offline partner sees an empty available-orders feed but can still advance
// an order already in progress.
type SetPartnerOnlineCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	online    bool

	guard guard.ConstructorGuard
}

// NewSetPartnerOnlineCommand validates the identifier and builds the command.
func NewSetPartnerOnlineCommand(partnerID kernel.UUID, online bool) (SetPartnerOnlineCommand, error) {
	cmd := SetPartnerOnlineCommand{
		online: online,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return SetPartnerOnlineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPartnerOnlineCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerOnlineCommandIsNotConstructed)
}

// PartnerID returns the partner changing availability.
func (c SetPartnerOnlineCommand) PartnerID() kernel.UUID { return c.partnerID }

// Online returns the requested availability flag.
func (c SetPartnerOnlineCommand) Online() bool { return c.online }

func (c *SetPartnerOnlineCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

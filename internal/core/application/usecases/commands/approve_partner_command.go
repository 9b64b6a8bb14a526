package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrApprovePartnerCommandIsNotConstructed = errors.New(
		"ApprovePartnerCommand must be created via NewApprovePartnerCommand constructor",
	)
)

// ApprovePartnerCommand represents an administrator activating a pending
// partner.
type ApprovePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApprovePartnerCommand validates the identifier and builds the command.
func NewApprovePartnerCommand(partnerID kernel.UUID) (ApprovePartnerCommand, error) {
	cmd := ApprovePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return ApprovePartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovePartnerCommand) Validate() error {
	return c.guard.Validate(ErrApprovePartnerCommandIsNotConstructed)
}

// PartnerID returns the partner to activate.
func (c ApprovePartnerCommand) PartnerID() kernel.UUID { return c.partnerID }

func (c *ApprovePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

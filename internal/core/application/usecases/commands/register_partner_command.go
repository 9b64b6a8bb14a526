package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterPartnerCommandIsNotConstructed = errors.New(
		"RegisterPartnerCommand must be created via NewRegisterPartnerCommand constructor",
	)
)

// RegisterPartnerCommand represents a new delivery partner signing up.
// Registration does not grant work access; an administrator approves the
// partner separately.
type RegisterPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

// NewRegisterPartnerCommand validates the identifier and name and builds the
// command.
func NewRegisterPartnerCommand(partnerID kernel.UUID, name string) (RegisterPartnerCommand, error) {
	cmd := RegisterPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setName(name),
	); err != nil {
		return RegisterPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterPartnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier for the new partner.
func (c RegisterPartnerCommand) PartnerID() kernel.UUID { return c.partnerID }

// Name returns the partner's display name.
func (c RegisterPartnerCommand) Name() string { return c.name }

func (c *RegisterPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

func (c *RegisterPartnerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateAreaCommandIsNotConstructed = errors.New(
		"CreateAreaCommand must be created via NewCreateAreaCommand constructor",
	)
)

// CreateAreaCommand represents an administrator adding a geographic zone.
type CreateAreaCommand struct { //nolint:recvcheck //using for validation
	areaID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

// NewCreateAreaCommand validates the identifier and name and builds the
// command.
func NewCreateAreaCommand(areaID kernel.UUID, name string) (CreateAreaCommand, error) {
	cmd := CreateAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAreaID(areaID),
		cmd.setName(name),
	); err != nil {
		return CreateAreaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAreaCommand) Validate() error {
	return c.guard.Validate(ErrCreateAreaCommandIsNotConstructed)
}

// AreaID returns the identifier for the new area.
func (c CreateAreaCommand) AreaID() kernel.UUID { return c.areaID }

// Name returns the unique area name.
func (c CreateAreaCommand) Name() string { return c.name }

func (c *CreateAreaCommand) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}
	c.areaID = areaID
	return nil
}

func (c *CreateAreaCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

package commands

import (
	"context"

	"dispatch/internal/core/domain/model/area"
)

// CreateAreaCommandHandler stores new areas. Name uniqueness is enforced by
// the store; a duplicate surfaces as the repository's conflict error.
type CreateAreaCommandHandler struct {
	uowFactory AreaUoWFactory
}

// NewCreateAreaCommandHandler creates a handler for area creation.
func NewCreateAreaCommandHandler(uowFactory AreaUoWFactory) CreateAreaCommandHandler {
	return CreateAreaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates and stores the area.
func (h CreateAreaCommandHandler) Handle(ctx context.Context, cmd CreateAreaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newArea, err := area.NewArea(cmd.AreaID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.AreaRepository().Add(ctx, newArea); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

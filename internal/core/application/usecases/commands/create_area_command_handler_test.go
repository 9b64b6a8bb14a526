package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/area"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAreaCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	areaID := kernel.NewUUID()
	cmd, err := commands.NewCreateAreaCommand(areaID, "Area A")
	require.NoError(t, err)

	areaRepo := new(MockAreaRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AreaRepository").Return(areaRepo).Once(),
		areaRepo.On("Add", mock.Anything, mock.AnythingOfType("*area.Area")).
			Run(func(args mock.Arguments) {
				created := args.Get(1).(*area.Area)
				assert.Equal(t, "Area A", created.Name())
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAreaUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAreaCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	areaRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateAreaCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateAreaCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

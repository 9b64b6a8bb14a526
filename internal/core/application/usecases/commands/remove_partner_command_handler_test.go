package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemovePartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	targetPartner := approvedPartner(t, partnerID)

	cmd, err := commands.NewRemovePartnerCommand(partnerID)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", mock.Anything, partnerID).Return(targetPartner, nil).Once(),
		partnerRepo.On("Remove", mock.Anything, partnerID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemovePartnerCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemovePartnerCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	cmd, err := commands.NewRemovePartnerCommand(partnerID)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", mock.Anything, partnerID).
			Return(nil, errs.NewObjectNotFoundError("partner", partnerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemovePartnerCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	amount, err := kernel.NewMoney(50)
	require.NoError(t, err)
	commission, err := kernel.NewMoney(5)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"12 North Rd", "7 South Ave", amount, commission, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func approvedPartner(t *testing.T, id kernel.UUID) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(id, "Sam Porter")
	require.NoError(t, err)
	p.Approve()
	p.SetOnline(true)
	return p
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	targetOrder := pendingOrder(t)
	cmd, err := commands.NewAcceptOrderCommand(partnerID, targetOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		partnerRepo.On("GetForUpdate", mock.Anything, partnerID).
			Return(approvedPartner(t, partnerID), nil).Once(),
		orderRepo.On("CountActiveByPartner", mock.Anything, partnerID).Return(int64(0), nil).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, targetOrder.ID()).Return(targetOrder, nil).Once(),
		orderRepo.On("Update", mock.Anything, targetOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Accepted, targetOrder.Status())
	require.NotNil(t, targetOrder.PartnerID())
	assert.True(t, targetOrder.PartnerID().IsEqual(partnerID))
	orderRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_PartnerAlreadyActive(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	targetOrder := pendingOrder(t)
	cmd, err := commands.NewAcceptOrderCommand(partnerID, targetOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		partnerRepo.On("GetForUpdate", mock.Anything, partnerID).
			Return(approvedPartner(t, partnerID), nil).Once(),
		orderRepo.On("CountActiveByPartner", mock.Anything, partnerID).Return(int64(1), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPartnerAlreadyActive)
	assert.Equal(t, order.Pending, targetOrder.Status())
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_PartnerNotApproved(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(partnerID, kernel.NewUUID())
	require.NoError(t, err)

	pendingPartner, err := partner.NewPartner(partnerID, "Sam Porter")
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		partnerRepo.On("GetForUpdate", mock.Anything, partnerID).Return(pendingPartner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, partner.ErrPartnerNotApproved)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_OrderNotPending(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	targetOrder := pendingOrder(t)
	require.NoError(t, targetOrder.Accept(kernel.NewUUID())) // someone else won

	cmd, err := commands.NewAcceptOrderCommand(partnerID, targetOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		partnerRepo.On("GetForUpdate", mock.Anything, partnerID).
			Return(approvedPartner(t, partnerID), nil).Once(),
		orderRepo.On("CountActiveByPartner", mock.Anything, partnerID).Return(int64(0), nil).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, targetOrder.ID()).Return(targetOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderNotPending)
	uow.AssertExpectations(t)
}

package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	targetOrder := orderInStatus(t, partnerID, order.Completed)
	cmd, err := commands.NewRateOrderCommand(targetOrder.CustomerID(), targetOrder.ID(), 5, "fast")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, targetOrder.ID()).Return(targetOrder, nil).Once(),
		orderRepo.On("Update", mock.Anything, targetOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.NotNil(t, targetOrder.Rating())
	assert.Equal(t, 5, targetOrder.Rating().Score())
	assert.Equal(t, "fast", targetOrder.Rating().Comment())
	uow.AssertExpectations(t)
}

func TestRateOrderCommandHandler_Handle_NotCompleted(t *testing.T) {
	ctx := t.Context()
	targetOrder := pendingOrder(t)
	cmd, err := commands.NewRateOrderCommand(targetOrder.CustomerID(), targetOrder.ID(), 4, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, targetOrder.ID()).Return(targetOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderNotCompleted)
	assert.Nil(t, targetOrder.Rating())
	uow.AssertExpectations(t)
}

func TestRateOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	partnerID := kernel.NewUUID()
	targetOrder := orderInStatus(t, partnerID, order.Completed)
	cmd, err := commands.NewRateOrderCommand(kernel.NewUUID(), targetOrder.ID(), 4, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, targetOrder.ID()).Return(targetOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrNotOrderOwner)
	uow.AssertExpectations(t)
}

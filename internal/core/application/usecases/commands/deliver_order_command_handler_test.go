package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"foodexpress/internal/core/application/usecases/commands"
	"foodexpress/internal/core/domain/model/agent"
	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/core/domain/model/order"
	"foodexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeliverOrderCommand(10)
	require.NoError(t, err)

	agentID := kernel.ID(3)
	testOrder := makeOrderInStatus(t, 10, order.OutForDelivery, &agentID)
	testAgent := makeAgentInStatus(t, 3, agent.Busy)
	deliveriesBefore := testAgent.TotalDeliveries()
	earningsBefore := testAgent.TotalEarnings()

	orderRepo := new(MockAssignOrderRepository)
	agentRepo := new(MockAssignAgentRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, kernel.ID(10)).Return(testOrder, nil).Once(),
		agentRepo.On("GetForUpdate", ctx, kernel.ID(3)).Return(testAgent, nil).Once(),
		agentRepo.On("Update", ctx, mock.AnythingOfType("*agent.DeliveryAgent")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverOrderCommandHandler(factory, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, result.OrderStatus)
	assert.Equal(t, agent.Available, result.AgentStatus)
	assert.Equal(t, order.Delivered, testOrder.Status())
	assert.Equal(t, agent.Available, testAgent.Status())
	assert.Equal(t, deliveriesBefore+1, testAgent.TotalDeliveries())
	// 15% of 236.00 rounded to the cent
	assert.InDelta(t, earningsBefore+35.40, testAgent.TotalEarnings(), 1e-9)

	orderRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_WithoutAgent(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeliverOrderCommand(10)
	require.NoError(t, err)

	testOrder := makeOrderInStatus(t, 10, order.Placed, nil)

	orderRepo := new(MockAssignOrderRepository)
	agentRepo := new(MockAssignAgentRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, kernel.ID(10)).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverOrderCommandHandler(factory, discardLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, result.OrderStatus)
	assert.Equal(t, agent.Unknown, result.AgentStatus)
	agentRepo.AssertNotCalled(t, "GetForUpdate")
	agentRepo.AssertNotCalled(t, "Update")
}

func TestDeliverOrderCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeliverOrderCommand(10)
	require.NoError(t, err)

	agentID := kernel.ID(3)
	testOrder := makeOrderInStatus(t, 10, order.Delivered, &agentID)

	orderRepo := new(MockAssignOrderRepository)
	agentRepo := new(MockAssignAgentRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, kernel.ID(10)).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverOrderCommandHandler(factory, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStatusConflict)
	agentRepo.AssertNotCalled(t, "GetForUpdate")
	orderRepo.AssertNotCalled(t, "Update")
}

func TestDeliverOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeliverOrderCommand(10)
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	agentRepo := new(MockAssignAgentRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, kernel.ID(10)).
			Return(nil, errs.NewObjectNotFoundError("order", int64(10))).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverOrderCommandHandler(factory, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeliverOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeliverOrderCommand{} // not constructed properly

	factory := new(MockAssignUoWFactory)
	handler := commands.NewDeliverOrderCommandHandler(factory, discardLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeliverOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

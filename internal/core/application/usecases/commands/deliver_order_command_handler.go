package commands

import (
	"context"
	"log/slog"

	"foodexpress/internal/core/domain/model/agent"
	"foodexpress/internal/core/domain/model/order"
)

// DeliverOrderResult reports a completed delivery: the order's final status
// and the settled agent's new availability. AgentStatus is Unknown when the
// order had no agent attached.
type DeliverOrderResult struct {
	OrderStatus order.Status
	AgentStatus agent.Status
}

// DeliverOrderCommandHandler completes a delivery.
//
// In one transaction the order becomes Delivered and the carrying agent is
// settled: 15% of the order total, rounded to the cent, is credited to the
// agent's total and daily earnings, the delivery count is incremented, and
// the agent is released back to Available. The order row is locked FOR
// UPDATE, so a racing second delivery of the same order fails the status
// check instead of crediting the agent twice.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewDeliverOrderCommandHandler creates a handler for delivery completion.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewDeliverOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the delivery completion command.
//
// An order that was never assigned can still be delivered; the anomaly is
// logged and no agent is settled. A missing order surfaces as a not-found
// error, an already-delivered order as a status conflict.
func (h DeliverOrderCommandHandler) Handle(
	ctx context.Context, command DeliverOrderCommand,
) (DeliverOrderResult, error) {
	if err := command.Validate(); err != nil {
		return DeliverOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DeliverOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return DeliverOrderResult{}, err
	}

	commission := aggregate.Commission()

	if err = aggregate.Deliver(); err != nil {
		return DeliverOrderResult{}, err
	}

	result := DeliverOrderResult{OrderStatus: aggregate.Status()}

	if agentID := aggregate.Agent(); agentID != nil {
		deliveryAgent, err := agentRepo.GetForUpdate(ctx, *agentID)
		if err != nil {
			return DeliverOrderResult{}, err
		}

		if err = deliveryAgent.CompleteDelivery(commission); err != nil {
			return DeliverOrderResult{}, err
		}

		if err = agentRepo.Update(ctx, deliveryAgent); err != nil {
			return DeliverOrderResult{}, err
		}

		result.AgentStatus = deliveryAgent.Status()
	} else {
		h.logger.Warn("order delivered without an assigned agent, no commission settled",
			"order_id", aggregate.ID().Int64(),
		)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return DeliverOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DeliverOrderResult{}, err
	}

	return result, nil
}

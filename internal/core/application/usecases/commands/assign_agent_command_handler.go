package commands

import (
	"context"

	"foodexpress/internal/core/domain/model/order"
)

// AssignAgentResult reports a successful handover: the new order status and
// the name of the agent now carrying it.
type AssignAgentResult struct {
	OrderStatus order.Status
	AgentName   string
}

// AssignAgentCommandHandler orchestrates the order handover.
//
// Both rows are read with FOR UPDATE locks inside one transaction, so two
// racing assignments of the same order (or of the same agent to two orders)
// serialize at the database: the first transaction wins and the second
// observes the committed state and fails the transition check with a status
// conflict. No retries, no double assignment.
type AssignAgentCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignAgentCommandHandler creates a handler for order assignment.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignAgentCommandHandler(uowFactory UoWFactory) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
//
// The order must be in Placed status and the agent Available; any other
// combination is a status conflict. A missing order or agent surfaces as a
// not-found error. Both aggregates are updated in the same transaction.
func (h AssignAgentCommandHandler) Handle(
	ctx context.Context, command AssignAgentCommand,
) (AssignAgentResult, error) {
	if err := command.Validate(); err != nil {
		return AssignAgentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignAgentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return AssignAgentResult{}, err
	}

	deliveryAgent, err := agentRepo.GetForUpdate(ctx, command.AgentID())
	if err != nil {
		return AssignAgentResult{}, err
	}

	if err = aggregate.Assign(deliveryAgent.ID()); err != nil {
		return AssignAgentResult{}, err
	}

	if err = deliveryAgent.Claim(); err != nil {
		return AssignAgentResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return AssignAgentResult{}, err
	}

	if err = agentRepo.Update(ctx, deliveryAgent); err != nil {
		return AssignAgentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignAgentResult{}, err
	}

	return AssignAgentResult{
		OrderStatus: aggregate.Status(),
		AgentName:   deliveryAgent.Name(),
	}, nil
}

package commands

import (
	"errors"

	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand represents a request to hand a placed order to a
// specific delivery agent. The operator picks the agent; there is no
// automatic dispatching.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	agentID kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign an order to an agent.
// Validates that both identifiers are valid.
func NewAssignAgentCommand(orderID, agentID kernel.ID) (AssignAgentCommand, error) {
	command := AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAgentID(agentID),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignAgentCommandIsNotConstructed if validation fails.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to hand over.
func (c AssignAgentCommand) OrderID() kernel.ID {
	return c.orderID
}

// AgentID returns the identifier of the chosen agent.
func (c AssignAgentCommand) AgentID() kernel.ID {
	return c.agentID
}

func (c *AssignAgentCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignAgentCommand) setAgentID(agentID kernel.ID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

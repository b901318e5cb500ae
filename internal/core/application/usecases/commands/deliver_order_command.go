package commands

import (
	"errors"

	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a request to mark an order as delivered
// and settle the carrying agent's commission.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to complete a delivery.
// Validates that the order id is valid.
func NewDeliverOrderCommand(orderID kernel.ID) (DeliverOrderCommand, error) {
	command := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return DeliverOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverOrderCommandIsNotConstructed if validation fails.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being delivered.
func (c DeliverOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

package commands

import (
	"errors"

	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to place a new order from the
// customer's cart. The cart itself supplies the restaurant and the line
// items; the command carries only what the checkout form knows: who is
// ordering, the charged total, where to deliver, and the payment gateway
// references confirming the charge.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.ID
	totalAmount     float64
	deliveryAddress string
	gatewayOrderID  string
	paymentID       string
	signature       string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the customer id is valid and the total amount is a
// non-negative finite number. The payment references are opaque strings and
// may be empty; verification of the gateway signature is out of scope here.
func NewPlaceOrderCommand(
	customerID kernel.ID,
	totalAmount float64,
	deliveryAddress string,
	gatewayOrderID, paymentID, signature string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setTotalAmount(totalAmount),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	command.deliveryAddress = deliveryAddress
	command.gatewayOrderID = gatewayOrderID
	command.paymentID = paymentID
	command.signature = signature

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// TotalAmount returns the charged total, taxes and delivery fee included.
func (c PlaceOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// DeliveryAddress returns the drop address from the checkout form.
// May be empty, in which case the customer's stored address is used.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// GatewayOrderID returns the payment gateway's order reference.
func (c PlaceOrderCommand) GatewayOrderID() string {
	return c.gatewayOrderID
}

// PaymentID returns the payment gateway's payment reference.
func (c PlaceOrderCommand) PaymentID() string {
	return c.paymentID
}

// Signature returns the payment gateway's signature for the charge.
func (c PlaceOrderCommand) Signature() string {
	return c.signature
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setTotalAmount(totalAmount float64) error {
	if err := kernel.ValidateAmount("total amount", totalAmount); err != nil {
		return err
	}

	c.totalAmount = totalAmount
	return nil
}

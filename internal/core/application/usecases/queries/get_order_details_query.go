package queries

import (
	"errors"

	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/pkg/guard"
)

var (
	ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
		"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
	)
)

// GetOrderDetailsQuery retrieves the full administration view of one order,
// including the agents currently available as assignment candidates.
type GetOrderDetailsQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for one order's details.
// Validates that the order id is valid.
func NewGetOrderDetailsQuery(orderID kernel.ID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderDetailsQueryIsNotConstructed if validation fails.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderDetailsQuery) OrderID() kernel.ID {
	return q.orderID
}

// OrderDetailsResponse is the administration view of one order: core order
// data, both addresses, the line items, the assigned agent (if any), and
// the agents available for assignment right now.
type OrderDetailsResponse struct {
	OrderID           int64               `json:"orderId"`
	OrderStatus       string              `json:"orderStatus"`
	TotalAmount       float64             `json:"totalAmount"`
	CustomerName      string              `json:"customerName"`
	CustomerAddress   string              `json:"customerAddress"`
	RestaurantName    string              `json:"restaurantName"`
	RestaurantAddress string              `json:"restaurantAddress"`
	Items             []OrderItemResponse `json:"items"`
	AvailableAgents   []AgentResponse     `json:"availableAgents"`
	AgentName         string              `json:"agentName"`
}

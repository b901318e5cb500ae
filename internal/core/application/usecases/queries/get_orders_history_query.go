// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/pkg/guard"
)

var (
	ErrGetOrdersHistoryQueryIsNotConstructed = errors.New(
		"GetOrdersHistoryQuery must be created via NewGetOrdersHistoryQuery constructor",
	)
)

// GetOrdersHistoryQuery retrieves a customer's order history, newest first.
//
// Example:
//
//	query, err := NewGetOrdersHistoryQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersHistoryQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrdersHistoryQuery creates a query for a customer's order history.
// Validates that the customer id is valid.
func NewGetOrdersHistoryQuery(customerID kernel.ID) (GetOrdersHistoryQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersHistoryQuery{}, err
	}

	return GetOrdersHistoryQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersHistoryQueryIsNotConstructed if validation fails.
func (q GetOrdersHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersHistoryQueryIsNotConstructed)
}

// CustomerID returns the customer whose history is requested.
func (q GetOrdersHistoryQuery) CustomerID() kernel.ID {
	return q.customerID
}

// OrderItemResponse is one line item as presented to callers.
type OrderItemResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"imageUrl"`
}

// OrderResponse is the customer-facing view of an order. The same shape is
// returned by order placement and by the history listing.
type OrderResponse struct {
	OrderID           int64               `json:"orderId"`
	Status            string              `json:"status"`
	TotalAmount       float64             `json:"totalAmount"`
	OrderDate         time.Time           `json:"orderDate"`
	RestaurantName    string              `json:"restaurantName"`
	Items             []OrderItemResponse `json:"items"`
	GatewayOrderID    string              `json:"gatewayOrderId"`
	EstimatedDelivery time.Time           `json:"estimatedDelivery"`
}

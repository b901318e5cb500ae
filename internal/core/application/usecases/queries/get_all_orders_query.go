package queries

import (
	"errors"
	"time"

	"foodexpress/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves summaries of every order for the
// administration list view.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all order summaries.
// This is a parameterless query that fetches the complete order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderSummaryResponse is one row of the administration list view. ID is
// duplicated into OrderID because the list view model binds both fields.
type OrderSummaryResponse struct {
	ID             int64               `json:"id"`
	OrderID        int64               `json:"orderID"`
	Status         string              `json:"status"`
	RestaurantName string              `json:"restaurantName"`
	PickupAddress  string              `json:"pickupAddress"`
	CustomerName   string              `json:"customerName"`
	DropAddress    string              `json:"dropAddress"`
	Items          []OrderItemResponse `json:"items"`
	TotalItems     int                 `json:"totalItems"`
	TotalAmount    float64             `json:"totalAmount"`
	OrderDate      time.Time           `json:"orderDate"`
	AgentName      string              `json:"agentName"`
}

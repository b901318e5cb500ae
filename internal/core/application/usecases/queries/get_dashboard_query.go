package queries

import (
	"errors"

	"foodexpress/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
)

// GetDashboardQuery retrieves the metrics snapshot for the administration
// dashboard.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query for the dashboard metrics snapshot.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardQueryIsNotConstructed if validation fails.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// DashboardResponse is the metrics snapshot shown on the administration
// dashboard. TotalRevenue sums the totals of delivered orders and is zero,
// never absent, when nothing has been delivered yet.
type DashboardResponse struct {
	TotalCustomers   int64   `json:"totalCustomers"`
	TotalRestaurants int64   `json:"totalRestaurants"`
	TotalAgents      int64   `json:"totalDeliveryAgents"`
	TotalOrders      int64   `json:"totalOrders"`
	PlacedOrders     int64   `json:"placedOrders"`
	DeliveredOrders  int64   `json:"deliveredOrders"`
	AvailableAgents  int64   `json:"availableAgents"`
	BusyAgents       int64   `json:"busyAgents"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

package queries

import (
	"context"

	"foodexpress/internal/core/domain/model/agent"
	"foodexpress/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardQueryHandler aggregates counts and sums across the store for
// the administration dashboard. One query computes the whole snapshot.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle executes the aggregation. COALESCE keeps the revenue sum at zero
// when no order has been delivered yet.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (DashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardResponse{}, err
	}

	var resp DashboardResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM restaurants),
			(SELECT COUNT(*) FROM agents),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM agents WHERE status = ?),
			(SELECT COUNT(*) FROM agents WHERE status = ?),
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = ?)
	`,
		int(order.Placed),
		int(order.Delivered),
		int(agent.Available),
		int(agent.Busy),
		int(order.Delivered),
	).Row()

	err := row.Scan(
		&resp.TotalCustomers,
		&resp.TotalRestaurants,
		&resp.TotalAgents,
		&resp.TotalOrders,
		&resp.PlacedOrders,
		&resp.DeliveredOrders,
		&resp.AvailableAgents,
		&resp.BusyAgents,
		&resp.TotalRevenue,
	)
	if err != nil {
		return DashboardResponse{}, err
	}

	return resp, nil
}

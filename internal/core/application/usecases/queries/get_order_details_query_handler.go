package queries

import (
	"context"
	"database/sql"

	"foodexpress/internal/core/domain/model/order"
	"foodexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler retrieves the administration view of one
// order. The available-agent list is resolved in the same call so the
// assignment screen needs a single round trip.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the query for one order. An unknown order id is a
// not-found error. The delivery address doubles as the customer address in
// this view; the restaurant address is the pickup side.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.total_amount,
			o.delivery_address,
			c.name,
			r.name,
			r.address,
			a.name
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN agents a ON a.id = o.agent_id
		WHERE o.id = ?
	`, query.OrderID().Int64()).Rows()
	if err != nil {
		return OrderDetailsResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderDetailsResponse{}, err
		}
		return OrderDetailsResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().Int64())
	}

	var details OrderDetailsResponse
	var status int
	var agentName sql.NullString

	err = rows.Scan(
		&details.OrderID,
		&status,
		&details.TotalAmount,
		&details.CustomerAddress,
		&details.CustomerName,
		&details.RestaurantName,
		&details.RestaurantAddress,
		&agentName,
	)
	if err != nil {
		return OrderDetailsResponse{}, err
	}
	rows.Close()

	details.OrderStatus = order.Status(status).String()
	details.AgentName = agentName.String
	details.Items = make([]OrderItemResponse, 0)

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, price, quantity, image_url
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, details.OrderID).Rows()
	if err != nil {
		return OrderDetailsResponse{}, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item OrderItemResponse
		var imageURL sql.NullString

		err = itemRows.Scan(&item.Name, &item.Price, &item.Quantity, &imageURL)
		if err != nil {
			return OrderDetailsResponse{}, err
		}

		item.ImageURL = imageURL.String
		details.Items = append(details.Items, item)
	}

	if err = itemRows.Err(); err != nil {
		return OrderDetailsResponse{}, err
	}

	availableAgents, err := NewGetAvailableAgentsQueryHandler(h.db).Handle(ctx, NewGetAvailableAgentsQuery())
	if err != nil {
		return OrderDetailsResponse{}, err
	}
	details.AvailableAgents = availableAgents

	return details, nil
}

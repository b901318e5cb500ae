package queries

import (
	"context"
	"database/sql"

	"foodexpress/internal/core/domain/model/order"
	"foodexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrdersHistoryQueryHandler retrieves a customer's past orders from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetOrdersHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersHistoryQueryHandler(db *gorm.DB) GetOrdersHistoryQueryHandler {
	return GetOrdersHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's orders, newest first.
// An unknown customer id is a not-found error; a known customer with no
// orders yields an empty slice.
func (h GetOrdersHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersHistoryQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS(SELECT 1 FROM customers WHERE id = ?)
	`, query.CustomerID().Int64()).Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", query.CustomerID().Int64())
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.total_amount,
			o.ordered_at,
			o.estimated_delivery,
			o.gateway_order_id,
			r.name
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.customer_id = ?
		ORDER BY o.ordered_at DESC
	`, query.CustomerID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp OrderResponse
		var status int
		var gatewayOrderID sql.NullString

		err = rows.Scan(
			&resp.OrderID,
			&status,
			&resp.TotalAmount,
			&resp.OrderDate,
			&resp.EstimatedDelivery,
			&gatewayOrderID,
			&resp.RestaurantName,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()
		resp.GatewayOrderID = gatewayOrderID.String
		resp.Items = make([]OrderItemResponse, 0)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]int64, 0, len(orders))
	index := make(map[int64]int, len(orders))
	for i, resp := range orders {
		orderIDs = append(orderIDs, resp.OrderID)
		index[resp.OrderID] = i
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, name, price, quantity, image_url
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID int64
		var item OrderItemResponse
		var imageURL sql.NullString

		err = itemRows.Scan(&orderID, &item.Name, &item.Price, &item.Quantity, &imageURL)
		if err != nil {
			return nil, err
		}

		item.ImageURL = imageURL.String
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

package queries

import (
	"context"
	"database/sql"

	"foodexpress/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves order summaries for the administration
// list view, with customer, restaurant, and agent names resolved eagerly.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order summary queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all order summaries, newest first.
// An empty system yields an empty slice, not an error.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.total_amount,
			o.ordered_at,
			o.delivery_address,
			c.name,
			r.name,
			r.address,
			a.name
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN agents a ON a.id = o.agent_id
		ORDER BY o.ordered_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary OrderSummaryResponse
		var status int
		var agentName sql.NullString

		err = rows.Scan(
			&summary.ID,
			&status,
			&summary.TotalAmount,
			&summary.OrderDate,
			&summary.DropAddress,
			&summary.CustomerName,
			&summary.RestaurantName,
			&summary.PickupAddress,
			&agentName,
		)
		if err != nil {
			return nil, err
		}

		summary.OrderID = summary.ID
		summary.Status = order.Status(status).String()
		summary.AgentName = agentName.String
		summary.Items = make([]OrderItemResponse, 0)
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(summaries) == 0 {
		return summaries, nil
	}

	orderIDs := make([]int64, 0, len(summaries))
	index := make(map[int64]int, len(summaries))
	for i, summary := range summaries {
		orderIDs = append(orderIDs, summary.ID)
		index[summary.ID] = i
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
			summaries[i].Items = append(summaries[i].Items, item)
		}
	}

	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	for i := range summaries {
		summaries[i].TotalItems = len(summaries[i].Items)
	}

	return summaries, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodexpress/internal/core/domain/model/order"
	"foodexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAgentDetailsQueryHandler retrieves one agent's directory view.
type GetAgentDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentDetailsQueryHandler creates a handler for agent detail queries.
// Requires a GORM database connection for query execution.
func NewGetAgentDetailsQueryHandler(db *gorm.DB) GetAgentDetailsQueryHandler {
	return GetAgentDetailsQueryHandler{db: db}
}

// Handle executes the query for one agent. An unknown agent id is a
// not-found error. The current-order field comes from the orders table,
// the single source of truth for active assignments.
func (h GetAgentDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentDetailsQuery,
) (AgentResponse, error) {
	if err := query.Validate(); err != nil {
		return AgentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, code, name, email, phone, status,
			total_deliveries, total_earnings, todays_earnings, rating
		FROM agents
		WHERE id = ?
	`, query.AgentID().Int64()).Rows()
	if err != nil {
		return AgentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AgentResponse{}, err
		}
		return AgentResponse{}, errs.NewObjectNotFoundError("agent", query.AgentID().Int64())
	}

	resp, err := scanAgentRow(rows)
	if err != nil {
		return AgentResponse{}, err
	}

	var activeOrderID int64
	err = h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM orders
		WHERE agent_id = ? AND status = ?
		LIMIT 1
	`, resp.ID, int(order.OutForDelivery)).Row().Scan(&activeOrderID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// agent carries no active order
	case err != nil:
		return AgentResponse{}, err
	default:
		resp.CurrentOrderID = &activeOrderID
	}

	return resp, nil
}

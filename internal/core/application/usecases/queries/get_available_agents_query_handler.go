package queries

import (
	"context"

	"foodexpress/internal/core/domain/model/agent"

	"gorm.io/gorm"
)

// GetAvailableAgentsQueryHandler retrieves all agents in AVAILABLE status.
type GetAvailableAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableAgentsQueryHandler creates a handler for available agent queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableAgentsQueryHandler(db *gorm.DB) GetAvailableAgentsQueryHandler {
	return GetAvailableAgentsQueryHandler{db: db}
}

// Handle executes the query to retrieve available agents, sorted by name.
// An available agent carries no active order, so the current-order field is
// always nil here. An empty result is a valid outcome.
func (h GetAvailableAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableAgentsQuery,
) ([]AgentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]AgentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, code, name, email, phone, status,
			total_deliveries, total_earnings, todays_earnings, rating
		FROM agents
		WHERE status = ?
		ORDER BY name
	`, int(agent.Available)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanAgentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		agents = append(agents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}

package queries

import (
	"context"
	"database/sql"
	"strconv"

	"foodexpress/internal/core/domain/model/agent"
	"foodexpress/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllAgentsQueryHandler retrieves the full agent directory.
//
// The directory query joins against the orders table, so one agent appears
// once per historical order. The handler deduplicates by agent id, and when
// duplicate rows disagree on status it keeps the AVAILABLE one. The
// current-order field is then overlaid from one authoritative query against
// the orders table rather than trusted from the joined rows, which may lag
// behind in-flight assignments.
type GetAllAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAgentsQueryHandler creates a handler for agent directory queries.
// Requires a GORM database connection for query execution.
func NewGetAllAgentsQueryHandler(db *gorm.DB) GetAllAgentsQueryHandler {
	return GetAllAgentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all agents.
// An empty directory yields an empty slice, not an error.
func (h GetAllAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAgentsQuery,
) ([]AgentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id, a.code, a.name, a.email, a.phone, a.status,
			a.total_deliveries, a.total_earnings, a.todays_earnings, a.rating
		FROM agents a
		LEFT JOIN orders o ON o.agent_id = a.id
		ORDER BY a.id, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	byID := make(map[int64]AgentResponse)

	for rows.Next() {
		resp, scanErr := scanAgentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}

		existing, seen := byID[resp.ID]
		switch {
		case !seen:
			byID[resp.ID] = resp
			ids = append(ids, resp.ID)
		case resp.Status == agent.Available.String() && existing.Status != agent.Available.String():
			// duplicate rows disagree on status, the AVAILABLE one wins
			byID[resp.ID] = resp
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	agents := make([]AgentResponse, 0, len(ids))
	for _, id := range ids {
		agents = append(agents, byID[id])
	}

	if err = h.overlayCurrentOrders(ctx, agents); err != nil {
		return nil, err
	}

	return agents, nil
}

// overlayCurrentOrders sets each agent's current-order field from the
// orders table, the single source of truth for active assignments.
func (h GetAllAgentsQueryHandler) overlayCurrentOrders(ctx context.Context, agents []AgentResponse) error {
	if len(agents) == 0 {
		return nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT agent_id, id
		FROM orders
		WHERE agent_id IS NOT NULL AND status = ?
	`, int(order.OutForDelivery)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	active := make(map[int64]int64)
	for rows.Next() {
		var agentID, orderID int64
		if err = rows.Scan(&agentID, &orderID); err != nil {
			return err
		}
		active[agentID] = orderID
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for i := range agents {
		if orderID, ok := active[agents[i].ID]; ok {
			id := orderID
			agents[i].CurrentOrderID = &id
		}
	}

	return nil
}

// scanAgentRow reads one agent row in the column order shared by the agent
// directory queries, coercing unset financials to zero and falling back to
// the numeric id when no agent code was provisioned.
func scanAgentRow(rows *sql.Rows) (AgentResponse, error) {
	var resp AgentResponse
	var code, email, phone sql.NullString
	var status int
	var totalDeliveries sql.NullInt64
	var totalEarnings, todaysEarnings, rating sql.NullFloat64

	err := rows.Scan(
		&resp.ID,
		&code,
		&resp.Name,
		&email,
		&phone,
		&status,
		&totalDeliveries,
		&totalEarnings,
		&todaysEarnings,
		&rating,
	)
	if err != nil {
		return AgentResponse{}, err
	}

	resp.AgentCode = code.String
	if resp.AgentCode == "" {
		resp.AgentCode = strconv.FormatInt(resp.ID, 10)
	}
	resp.Email = email.String
	resp.Phone = phone.String
	resp.Status = agent.Status(status).String()
	resp.TotalDeliveries = int(totalDeliveries.Int64)
	resp.TotalEarnings = totalEarnings.Float64
	resp.TodaysEarnings = todaysEarnings.Float64
	resp.Rating = rating.Float64

	return resp, nil
}

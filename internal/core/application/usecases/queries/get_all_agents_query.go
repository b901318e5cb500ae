package queries

import (
	"errors"

	"foodexpress/internal/pkg/guard"
)

var (
	ErrGetAllAgentsQueryIsNotConstructed = errors.New(
		"GetAllAgentsQuery must be created via NewGetAllAgentsQuery constructor",
	)
)

// GetAllAgentsQuery retrieves the full delivery agent directory, busy and
// available alike.
type GetAllAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAgentsQuery creates a query to retrieve the agent directory.
// This is a parameterless query that fetches the complete agent list.
func NewGetAllAgentsQuery() GetAllAgentsQuery {
	return GetAllAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllAgentsQueryIsNotConstructed if validation fails.
func (q GetAllAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAgentsQueryIsNotConstructed)
}

// AgentResponse is the directory view of one delivery agent. Financial and
// rating fields unset at the storage layer are presented as zero, never as
// an absent value. CurrentOrderID is nil unless the agent is carrying an
// order out for delivery right now.
type AgentResponse struct {
	ID              int64   `json:"id"`
	AgentCode       string  `json:"agentCode"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	Status          string  `json:"status"`
	CurrentOrderID  *int64  `json:"currentOrderId"`
	TodaysEarnings  float64 `json:"todaysEarnings"`
	TotalEarnings   float64 `json:"totalEarnings"`
	TotalDeliveries int     `json:"totalDeliveries"`
	Rating          float64 `json:"rating"`
}

package queries

import (
	"errors"

	"foodexpress/internal/pkg/guard"
)

var (
	ErrGetAvailableAgentsQueryIsNotConstructed = errors.New(
		"GetAvailableAgentsQuery must be created via NewGetAvailableAgentsQuery constructor",
	)
)

// GetAvailableAgentsQuery retrieves the agents that can be assigned right
// now. No agents being available is a normal outcome, not an error.
type GetAvailableAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableAgentsQuery creates a query to retrieve available agents.
func NewGetAvailableAgentsQuery() GetAvailableAgentsQuery {
	return GetAvailableAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableAgentsQueryIsNotConstructed if validation fails.
func (q GetAvailableAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableAgentsQueryIsNotConstructed)
}

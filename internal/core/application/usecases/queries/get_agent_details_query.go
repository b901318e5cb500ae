package queries

import (
	"errors"

	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/pkg/guard"
)

var (
	ErrGetAgentDetailsQueryIsNotConstructed = errors.New(
		"GetAgentDetailsQuery must be created via NewGetAgentDetailsQuery constructor",
	)
)

// GetAgentDetailsQuery retrieves one agent's directory view, including the
// order the agent is currently carrying, if any.
type GetAgentDetailsQuery struct {
	agentID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetAgentDetailsQuery creates a query for one agent's details.
// Validates that the agent id is valid.
func NewGetAgentDetailsQuery(agentID kernel.ID) (GetAgentDetailsQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentDetailsQuery{}, err
	}

	return GetAgentDetailsQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentDetailsQueryIsNotConstructed if validation fails.
func (q GetAgentDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentDetailsQueryIsNotConstructed)
}

// AgentID returns the requested agent's identifier.
func (q GetAgentDetailsQuery) AgentID() kernel.ID {
	return q.agentID
}

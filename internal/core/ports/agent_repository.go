// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodexpress/internal/core/domain/model/agent"
	"foodexpress/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agent aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	// The agent must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *agent.DeliveryAgent) error

	// Update persists changes to an existing agent aggregate.
	// The agent must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *agent.DeliveryAgent) error

	// Get retrieves an agent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*agent.DeliveryAgent, error)

	// GetForUpdate retrieves an agent aggregate with a row-level write lock.
	// Must be called inside an active transaction; a concurrent caller blocks
	// on the same row until the transaction commits or rolls back. This is
	// what turns two racing claims of one agent into one success and one
	// status conflict.
	GetForUpdate(ctx context.Context, id kernel.ID) (*agent.DeliveryAgent, error)

	// GetAllAvailable retrieves all agents currently in Available status.
	// An empty result is not an error.
	GetAllAvailable(ctx context.Context) ([]*agent.DeliveryAgent, error)

	// GetAll retrieves every agent known to the directory.
	GetAll(ctx context.Context) ([]*agent.DeliveryAgent, error)
}

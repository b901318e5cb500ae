package ports

import (
	"context"

	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders carry their line items; every method reads and writes the aggregate
// as a whole.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. The identifier is
	// assigned by the database and attached to the aggregate before Add
	// returns.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate with a row-level write lock.
	// Must be called inside an active transaction. Racing state changes on
	// the same order serialize here, so the loser observes the winner's
	// status and fails the transition check instead of overwriting it.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAllByCustomer retrieves the customer's orders, most recent first.
	// An empty result is not an error.
	GetAllByCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error)

	// GetActiveByAgent retrieves the order currently out for delivery with
	// the given agent, or a not-found error when the agent carries none.
	// The order table is authoritative for this link, not the agent's
	// status flag.
	GetActiveByAgent(ctx context.Context, agentID kernel.ID) (*order.Order, error)
}

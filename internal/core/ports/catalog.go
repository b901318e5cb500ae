package ports

import (
	"context"

	"foodexpress/internal/core/domain/model/catalog"
	"foodexpress/internal/core/domain/model/kernel"
)

// CustomerRepository reads customer reference data.
type CustomerRepository interface {
	// Get retrieves a customer by id, or a not-found error.
	Get(ctx context.Context, id kernel.ID) (*catalog.Customer, error)
}

// RestaurantRepository reads restaurant reference data.
type RestaurantRepository interface {
	// Get retrieves a restaurant by id, or a not-found error.
	Get(ctx context.Context, id kernel.ID) (*catalog.Restaurant, error)
}

// MenuItemRepository reads menu reference data.
type MenuItemRepository interface {
	// GetByIDs retrieves the menu items that exist among the given ids.
	// Missing ids are simply absent from the result; the caller decides
	// whether to skip or fail.
	GetByIDs(ctx context.Context, ids []kernel.ID) ([]*catalog.MenuItem, error)
}

// CartRepository reads and clears a customer's cart. The cart is owned by
// the storefront; order placement consumes it.
type CartRepository interface {
	// GetCart retrieves the customer's current cart. A missing cart comes
	// back as a cart with no items, not as an error; the caller decides
	// whether empty is acceptable.
	GetCart(ctx context.Context, customerID kernel.ID) (*catalog.Cart, error)

	// Clear removes every line from the customer's cart.
	Clear(ctx context.Context, customerID kernel.ID) error
}

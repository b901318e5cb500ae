// Package catalog holds read models for the reference data the fulfillment
// core consumes but does not own: customers, restaurants, menu items, and
// cart contents. These records are managed elsewhere on the platform, so
// they are plain read-only views rather than aggregates.
package catalog

import (
	"foodexpress/internal/core/domain/model/kernel"
)

// Customer identifies the person placing orders.
type Customer struct {
	ID      kernel.ID
	Name    string
	Email   string
	Address string
}

// Restaurant identifies the pickup side of an order.
type Restaurant struct {
	ID      kernel.ID
	Name    string
	Address string
}

// MenuItem is one dish on a restaurant's menu. Price and name are snapshotted
// into order items at placement time, so later menu edits do not rewrite
// history.
type MenuItem struct {
	ID           kernel.ID
	RestaurantID kernel.ID
	Name         string
	Price        float64
	ImageURL     string
}

// Cart is a customer's current cart. A cart is bound to one restaurant at a
// time, which is why order placement takes the restaurant from the cart and
// not from the request.
type Cart struct {
	CustomerID   kernel.ID
	RestaurantID kernel.ID
	Items        []CartItem
}

// CartItem is one line of a customer's cart. Name and price are the values
// shown at add-to-cart time.
type CartItem struct {
	MenuItemID kernel.ID
	Name       string
	Price      float64
	Quantity   int
}

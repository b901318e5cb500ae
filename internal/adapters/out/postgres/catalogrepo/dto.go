// Package catalogrepo reads the platform reference data the fulfillment core
// consumes: customers, restaurants, menu items, and cart contents.
package catalogrepo

import (
	"foodexpress/internal/core/domain/model/catalog"
	"foodexpress/internal/core/domain/model/kernel"
)

// CustomerDTO represents one row of the customers table.
type CustomerDTO struct {
	ID      int64 `gorm:"primaryKey"`
	Name    string
	Email   string
	Address string
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

// RestaurantDTO represents one row of the restaurants table.
type RestaurantDTO struct {
	ID      int64 `gorm:"primaryKey"`
	Name    string
	Address string
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents one row of the menu_items table.
type MenuItemDTO struct {
	ID           int64 `gorm:"primaryKey"`
	RestaurantID int64 `gorm:"index"`
	Name         string
	Price        float64
	ImageURL     string
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// CartItemDTO represents one line of a customer's cart.
type CartItemDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64 `gorm:"index"`
	RestaurantID int64
	MenuItemID   int64
	Name         string
	Price        float64
	Quantity     int
}

// TableName specifies the database table name for cart lines.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

func customerToDomain(dto CustomerDTO) *catalog.Customer {
	return &catalog.Customer{
		ID:      kernel.ID(dto.ID),
		Name:    dto.Name,
		Email:   dto.Email,
		Address: dto.Address,
	}
}

func restaurantToDomain(dto RestaurantDTO) *catalog.Restaurant {
	return &catalog.Restaurant{
		ID:      kernel.ID(dto.ID),
		Name:    dto.Name,
		Address: dto.Address,
	}
}

func menuItemToDomain(dto MenuItemDTO) *catalog.MenuItem {
	return &catalog.MenuItem{
		ID:           kernel.ID(dto.ID),
		RestaurantID: kernel.ID(dto.RestaurantID),
		Name:         dto.Name,
		Price:        dto.Price,
		ImageURL:     dto.ImageURL,
	}
}

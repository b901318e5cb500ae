// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is assigned by the database on insert. Line items live in
// their own table and are written and read together with the order.
type OrderDTO struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID        int64  `gorm:"index"`
	RestaurantID      int64  `gorm:"index"`
	AgentID           *int64 `gorm:"index"`
	Status            int    `gorm:"index"`
	TotalAmount       float64
	DeliveryAddress   string
	GatewayOrderID    string
	PaymentID         string
	PaymentSignature  string
	OrderedAt         time.Time
	EstimatedDelivery time.Time
	Items             []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted order line item.
type ItemDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	OrderID    int64 `gorm:"index"`
	MenuItemID int64
	Name       string
	Price      float64
	Quantity   int
	ImageURL   string
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero aggregate id stays zero so the database assigns one on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *int64
	if id := aggregate.Agent(); id != nil {
		raw := id.Int64()
		agentID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:    aggregate.ID().Int64(),
			MenuItemID: item.MenuItemID().Int64(),
			Name:       item.Name(),
			Price:      item.Price(),
			Quantity:   item.Quantity(),
			ImageURL:   item.ImageURL(),
		})
	}

	payment := aggregate.Payment()

	return OrderDTO{
		ID:                aggregate.ID().Int64(),
		CustomerID:        aggregate.CustomerID().Int64(),
		RestaurantID:      aggregate.RestaurantID().Int64(),
		AgentID:           agentID,
		Status:            int(aggregate.Status()),
		TotalAmount:       aggregate.TotalAmount(),
		DeliveryAddress:   aggregate.DeliveryAddress(),
		GatewayOrderID:    payment.GatewayOrderID,
		PaymentID:         payment.PaymentID,
		PaymentSignature:  payment.Signature,
		OrderedAt:         aggregate.OrderedAt(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		Items:             items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, line items, and
// agent assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	var agentID *kernel.ID
	if dto.AgentID != nil {
		id, err := kernel.NewID(*dto.AgentID)
		if err != nil {
			return nil, err
		}
		agentID = &id
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, err := kernel.NewID(itemDTO.MenuItemID)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(menuItemID, itemDTO.Name, itemDTO.Price, itemDTO.Quantity, itemDTO.ImageURL)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.CustomerID),
		kernel.ID(dto.RestaurantID),
		agentID,
		order.Status(dto.Status),
		dto.TotalAmount,
		dto.DeliveryAddress,
		order.PaymentRefs{
			GatewayOrderID: dto.GatewayOrderID,
			PaymentID:      dto.PaymentID,
			Signature:      dto.PaymentSignature,
		},
		dto.OrderedAt,
		dto.EstimatedDelivery,
		items,
	)
}

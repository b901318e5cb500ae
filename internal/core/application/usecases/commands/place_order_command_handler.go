package commands

import (
	"context"
	"log/slog"
	"time"

	"foodexpress/internal/core/domain/model/catalog"
	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/core/domain/model/order"
	"foodexpress/internal/core/ports"
	"foodexpress/internal/pkg/errs"
)

var (
	// ErrCartIsEmpty is returned when the customer's cart has no lines,
	// or does not exist at all.
	ErrCartIsEmpty = errs.NewValueIsRequiredError("cart items")

	// ErrNoResolvableItems is returned when every cart line referenced a
	// menu item that no longer exists.
	ErrNoResolvableItems = errs.NewValueIsRequiredError("resolvable cart items")
)

// PlacedOrderResult is what placement hands back to the transport layer:
// the persisted aggregate plus the restaurant name the response needs.
type PlacedOrderResult struct {
	Order          *order.Order
	RestaurantName string
}

// PlaceOrderCommandHandler turns a customer's cart into a placed order.
//
// The flow mirrors checkout: fetch the cart, resolve its lines against the
// menu, snapshot them into order items, persist the order, and consume the
// cart. Everything that writes happens in one transaction, so a failure at
// any step leaves both the order table and the cart untouched.
type PlaceOrderCommandHandler struct {
	uowFactory  PlaceOrderUoWFactory
	customers   ports.CustomerRepository
	restaurants ports.RestaurantRepository
	menuItems   ports.MenuItemRepository
	logger      *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// The catalog repositories are read-only and are consulted outside the
// write transaction.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	customers ports.CustomerRepository,
	restaurants ports.RestaurantRepository,
	menuItems ports.MenuItemRepository,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		customers:   customers,
		restaurants: restaurants,
		menuItems:   menuItems,
		logger:      logger,
	}
}

// Handle processes the order placement command.
//
// Cart lines whose menu item has been removed are skipped with a warning
// rather than failing the whole order; only an order that would end up with
// no items at all is rejected. The order id is assigned by the database and
// is present on the returned aggregate.
func (h PlaceOrderCommandHandler) Handle(
	ctx context.Context, command PlaceOrderCommand,
) (PlacedOrderResult, error) {
	if err := command.Validate(); err != nil {
		return PlacedOrderResult{}, err
	}

	customer, err := h.customers.Get(ctx, command.CustomerID())
	if err != nil {
		return PlacedOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return PlacedOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	cart, err := cartRepo.GetCart(ctx, command.CustomerID())
	if err != nil {
		return PlacedOrderResult{}, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return PlacedOrderResult{}, ErrCartIsEmpty
	}

	restaurant, err := h.restaurants.Get(ctx, cart.RestaurantID)
	if err != nil {
		return PlacedOrderResult{}, err
	}

	items, err := h.resolveItems(ctx, cart)
	if err != nil {
		return PlacedOrderResult{}, err
	}

	deliveryAddress := command.DeliveryAddress()
	if deliveryAddress == "" {
		deliveryAddress = customer.Address
	}

	newOrder, err := order.NewOrder(
		customer.ID,
		restaurant.ID,
		command.TotalAmount(),
		deliveryAddress,
		order.PaymentRefs{
			GatewayOrderID: command.GatewayOrderID(),
			PaymentID:      command.PaymentID(),
			Signature:      command.Signature(),
		},
		items,
		time.Now(),
	)
	if err != nil {
		return PlacedOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return PlacedOrderResult{}, err
	}

	if err = cartRepo.Clear(ctx, command.CustomerID()); err != nil {
		return PlacedOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlacedOrderResult{}, err
	}

	return PlacedOrderResult{Order: newOrder, RestaurantName: restaurant.Name}, nil
}

// resolveItems snapshots the cart lines into order items, dropping lines
// whose menu item has disappeared from the catalog.
func (h PlaceOrderCommandHandler) resolveItems(
	ctx context.Context, cart *catalog.Cart,
) ([]order.Item, error) {
	ids := make([]kernel.ID, 0, len(cart.Items))
	for _, line := range cart.Items {
		ids = append(ids, line.MenuItemID)
	}

	menuItems, err := h.menuItems.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.ID]*catalog.MenuItem, len(menuItems))
	for _, menuItem := range menuItems {
		byID[menuItem.ID] = menuItem
	}

	items := make([]order.Item, 0, len(cart.Items))
	for _, line := range cart.Items {
		menuItem, ok := byID[line.MenuItemID]
		if !ok {
			h.logger.Warn("menu item not found while placing order, skipping line",
				"menu_item_id", line.MenuItemID.Int64(),
				"customer_id", cart.CustomerID.Int64(),
			)
			continue
		}

		item, err := order.NewItem(line.MenuItemID, line.Name, line.Price, line.Quantity, menuItem.ImageURL)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, ErrNoResolvableItems
	}

	return items, nil
}

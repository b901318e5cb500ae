package order

import (
	"errors"
	"fmt"

	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one ordered line: a snapshot of a catalog item at placement time.
// The snapshot is independent of current catalog state, so later menu edits
// never change what a customer actually bought.
type Item struct {
	// menuItemID references the catalog item the line was built from
	menuItemID kernel.ID

	// name is the item name as it appeared in the cart
	name string

	// price is the unit price at placement time
	price float64

	// quantity is the ordered count (must be positive)
	quantity int

	// imageURL is the catalog image reference captured for presentation
	imageURL string

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates an order line snapshot with validation.
//
// Parameters:
//   - menuItemID: the catalog item the line references (must be valid)
//   - name: item name (must be non-empty)
//   - price: unit price (must be non-negative)
//   - quantity: ordered count (must be positive)
//   - imageURL: catalog image reference (may be empty)
//
// Returns:
//   - Item: the created line if all validations pass
//   - error: validation error if any parameter is invalid
func NewItem(menuItemID kernel.ID, name string, price float64, quantity int, imageURL string) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if err := kernel.ValidateAmount("item price", price); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		menuItemID:    menuItemID,
		name:          name,
		price:         price,
		quantity:      quantity,
		imageURL:      imageURL,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the referenced catalog item id.
func (i Item) MenuItemID() kernel.ID {
	return i.menuItemID
}

// Name returns the snapshotted item name.
func (i Item) Name() string {
	return i.name
}

// Price returns the snapshotted unit price.
func (i Item) Price() float64 {
	return i.price
}

// Quantity returns the ordered count.
func (i Item) Quantity() int {
	return i.quantity
}

// ImageURL returns the snapshotted catalog image reference.
func (i Item) ImageURL() string {
	return i.imageURL
}

package order

import (
	"errors"
	"time"

	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/pkg/errs"
)

const (
	// deliveryEstimate is the fixed window promised to the customer at
	// placement time.
	deliveryEstimate = 45 * time.Minute

	// commissionRate is the share of the order total credited to the
	// delivering agent on completion.
	commissionRate = 0.15
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// PaymentRefs holds the external payment-gateway identifiers captured at
// placement time. They are opaque to the core and only echoed back to callers.
type PaymentRefs struct {
	GatewayOrderID string
	PaymentID      string
	Signature      string
}

// Order represents one placed purchase. It is the aggregate root that manages
// the order lifecycle from placement through agent assignment to delivery.
//
// Order follows these invariants:
//   - Has exactly one customer and one restaurant, immutable after creation
//   - Has a non-empty line-item list at creation; no line has non-positive quantity
//   - Total amount is non-negative
//   - Estimated delivery is exactly 45 minutes after the order timestamp
//   - Status transitions follow the linear Placed -> OutForDelivery -> Delivered machine
//   - At most one delivery agent, set only via Assign
type Order struct {
	// id is the storage-assigned identifier (zero until persisted)
	id kernel.ID

	// customerID references the ordering customer
	customerID kernel.ID

	// restaurantID references the restaurant the cart was built from
	restaurantID kernel.ID

	// agentID is the assigned delivery agent (nil if unassigned)
	agentID *kernel.ID

	// status is the current state in the order lifecycle
	status Status

	// totalAmount is the amount charged for the order
	totalAmount float64

	// deliveryAddress is the drop address snapshot
	deliveryAddress string

	// payment carries the external gateway references
	payment PaymentRefs

	// orderedAt is the placement timestamp
	orderedAt time.Time

	// estimatedDelivery is orderedAt plus the fixed delivery window
	estimatedDelivery time.Time

	// items is the ordered line-item snapshot
	items []Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Placed status from a cart snapshot.
// The id stays zero until storage assigns one (see AttachID).
//
// Parameters:
//   - customerID: the ordering customer (must be valid)
//   - restaurantID: the restaurant the cart belongs to (must be valid)
//   - totalAmount: charged amount (must be non-negative)
//   - deliveryAddress: drop address (must be non-empty)
//   - payment: external gateway references (opaque)
//   - items: resolved line items (must be non-empty, each constructed via NewItem)
//   - placedAt: placement timestamp; the estimated delivery is derived from it
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter is invalid
func NewOrder(
	customerID kernel.ID,
	restaurantID kernel.ID,
	totalAmount float64,
	deliveryAddress string,
	payment PaymentRefs,
	items []Item,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		payment:       payment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setTotalAmount(totalAmount),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.orderedAt = placedAt
	o.estimatedDelivery = placedAt.Add(deliveryEstimate)

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its identifier, status, assignment, and timestamps. The restored
// order behaves identically to one created through normal domain operations.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	restaurantID kernel.ID,
	agentID *kernel.ID,
	status Status,
	totalAmount float64,
	deliveryAddress string,
	payment PaymentRefs,
	orderedAt time.Time,
	estimatedDelivery time.Time,
	items []Item,
) (*Order, error) {
	o := &Order{
		payment:       payment,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setTotalAmount(totalAmount),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
		agent := *agentID
		o.agentID = &agent
	}

	o.id = id
	o.status = status
	o.orderedAt = orderedAt
	o.estimatedDelivery = estimatedDelivery

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the storage-assigned identifier (zero before persistence).
func (o *Order) ID() kernel.ID {
	return o.id
}

// AttachID binds the storage-assigned identifier to a freshly created order.
// It can be called exactly once, by the repository that persisted the order.
func (o *Order) AttachID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidError("order id is already assigned")
	}

	o.id = id
	return nil
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// RestaurantID returns the restaurant's identifier.
func (o *Order) RestaurantID() kernel.ID {
	return o.restaurantID
}

// Agent returns the assigned delivery agent's identifier.
// Returns nil if no agent is assigned.
func (o *Order) Agent() *kernel.ID {
	return o.agentID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the amount charged for the order.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// DeliveryAddress returns the drop address snapshot.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Payment returns the external payment-gateway references.
func (o *Order) Payment() PaymentRefs {
	return o.payment
}

// OrderedAt returns the placement timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// EstimatedDelivery returns the promised delivery timestamp.
func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// Items returns the ordered line-item snapshot.
// The returned slice is a copy to prevent external modification.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Commission returns the agent commission for this order: 15% of the total
// amount, rounded half up at the cent boundary.
func (o *Order) Commission() float64 {
	return kernel.RoundToCents(o.totalAmount * commissionRate)
}

// Assign binds a delivery agent to the order and moves it out for delivery.
//
// Business rules:
//   - The agent id must be valid
//   - The order must be in Placed status; anything else is a status conflict
//
// After successful assignment the order's status is OutForDelivery and
// Agent() returns the bound agent's identifier.
func (o *Order) Assign(agentID kernel.ID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = &agentID
	return nil
}

// Deliver marks the order as delivered.
//
// The normal path is OutForDelivery -> Delivered. A Placed order with no
// agent linked is also accepted so that deliveries recorded against
// inconsistent data still settle; callers log the missing assignment.
// Delivering an already delivered order is a status conflict.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setCustomerID validates and sets the ordering customer.
// This is a private method used only during construction.
func (o *Order) setCustomerID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

// setRestaurantID validates and sets the restaurant reference.
// This is a private method used only during construction.
func (o *Order) setRestaurantID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

// setTotalAmount validates and sets the charged amount.
// This is a private method used only during construction.
func (o *Order) setTotalAmount(amount float64) error {
	if err := kernel.ValidateAmount("total amount", amount); err != nil {
		return err
	}
	o.totalAmount = amount
	return nil
}

// setDeliveryAddress validates and sets the drop address.
// This is a private method used only during construction.
func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

// setItems validates and sets the line-item snapshot.
// An order must carry at least one valid line item.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

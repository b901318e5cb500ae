// Package order contains the Order aggregate: the line-item snapshot taken
// from a customer's cart, the external payment references, and the linear
// lifecycle state machine Placed -> OutForDelivery -> Delivered. All state
// transitions are validated here so that callers cannot move an order
// backwards or skip a state.
package order

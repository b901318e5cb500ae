package order

import (
	"fmt"

	"foodexpress/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a linear, terminal state machine:
//
//	Placed ──> OutForDelivery ──> Delivered
//
// No transition skips a state and no backward transition exists.
// Delivered is the terminal state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status after a customer's cart becomes an order.
	// Orders in this status are waiting to be assigned to a delivery agent.
	Placed

	// OutForDelivery indicates the order has been assigned to a delivery agent
	// who is currently carrying it.
	OutForDelivery

	// Delivered indicates the order reached the customer. This is a final
	// state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Placed:         "PLACED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "PLACED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Placed, OutForDelivery, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status ("PLACED",
// "OUT_FOR_DELIVERY", "DELIVERED"), or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateAssign checks if the status allows agent assignment without
// performing the transition. Only Placed orders can be assigned: assigning
// an order already out for delivery or delivered is a business-rule
// conflict, not a missing object.
func (s Status) ValidateAssign() error {
	if s != Placed {
		return errs.NewStatusConflictError("order", s.String())
	}
	return nil
}

// Assign transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Placed -> OutForDelivery
//
// Returns:
//   - (OutForDelivery, nil) on valid transition
//   - (0, StatusConflictError) if the order is not in Placed status
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return OutForDelivery, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered (the normal completion path)
//   - Placed -> Delivered (tolerated for orders that never had an agent
//     linked; callers log the missing assignment as a warning)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, StatusConflictError) if the order is already delivered or invalid
func (s Status) Deliver() (Status, error) {
	if s != Placed && s != OutForDelivery {
		return 0, errs.NewStatusConflictError("order", s.String())
	}

	return Delivered, nil
}

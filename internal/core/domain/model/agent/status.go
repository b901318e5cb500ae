package agent

import (
	"fmt"

	"foodexpress/internal/pkg/errs"
)

// Status represents the availability state of a delivery agent.
//
//	Available <──> Busy
//
// An agent is Busy exactly while one order out for delivery references it;
// the assignment and delivery workflows maintain this invariant procedurally.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the agent can be claimed for a new assignment.
	Available

	// Busy means the agent is carrying exactly one order out for delivery.
	Busy
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Available: "AVAILABLE",
		Busy:      "BUSY",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "AVAILABLE",
		Busy:      "BUSY",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Available and Busy; Unknown (0) and anything else fail.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status ("AVAILABLE", "BUSY"),
// or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Claim transitions the status to Busy.
//
// Valid transitions:
//   - Available -> Busy
//
// Claiming a Busy agent is a status conflict: two concurrent assignment
// attempts against the same agent must resolve to one success and one
// conflict.
func (s Status) Claim() (Status, error) {
	if s != Available {
		return 0, errs.NewStatusConflictError("agent", s.String())
	}

	return Busy, nil
}

// Release transitions the status back to Available after a completed
// delivery. Releasing is always allowed so that settlement never fails on
// an agent whose flag drifted out of sync.
func (s Status) Release() Status {
	return Available
}

package agent

import (
	"errors"

	"foodexpress/internal/core/domain/model/kernel"
	"foodexpress/internal/pkg/errs"
	"foodexpress/internal/pkg/guard"
)

// Domain errors for delivery agent operations.
var (
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized DeliveryAgent.
	ErrAgentIsNotConstructed = errors.New("DeliveryAgent must be created via NewDeliveryAgent constructor")
)

// DeliveryAgent represents one courier. It is an aggregate root that manages
// the agent's availability and the financial counters settled on delivery
// completion.
//
// Business rules:
//   - Status is Busy exactly while one out-for-delivery order references the agent
//   - Completing a delivery credits the commission to both total and today's
//     earnings, increments the delivery count, and releases the agent
//   - Today's earnings roll over to zero at the start of each day
type DeliveryAgent struct {
	// id uniquely identifies the agent
	id kernel.ID
	// code is the business identifier shown to operators (falls back to id when empty)
	code string
	// name is the human-readable name of the agent
	name string
	// email and phone are the agent's contact details
	email string
	phone string
	// status is the current availability state
	status Status
	// totalDeliveries is the cumulative count of completed deliveries
	totalDeliveries int
	// totalEarnings is the cumulative commission credited to the agent
	totalEarnings float64
	// todaysEarnings is the commission credited since the last daily rollover
	todaysEarnings float64
	// rating is the agent's average customer rating
	rating float64
	// guard ensures the agent was properly constructed
	guard guard.ConstructorGuard
}

// NewDeliveryAgent creates a fresh agent in Available status with zeroed
// counters. Administration of agents happens outside this core; the
// constructor exists for provisioning and tests.
func NewDeliveryAgent(id kernel.ID, code, name, email, phone string) (*DeliveryAgent, error) {
	a := &DeliveryAgent{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
	); err != nil {
		return nil, err
	}

	a.code = code
	a.email = email
	a.phone = phone

	return a, nil
}

// RestoreDeliveryAgent reconstructs an agent aggregate from persistent
// storage, preserving status and financial counters. The restored agent
// behaves identically to one mutated through normal domain operations.
func RestoreDeliveryAgent(
	id kernel.ID,
	code, name, email, phone string,
	status Status,
	totalDeliveries int,
	totalEarnings, todaysEarnings, rating float64,
) (*DeliveryAgent, error) {
	a := &DeliveryAgent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		status.Validate(),
		kernel.ValidateAmount("total earnings", totalEarnings),
		kernel.ValidateAmount("todays earnings", todaysEarnings),
	); err != nil {
		return nil, err
	}

	a.code = code
	a.email = email
	a.phone = phone
	a.status = status
	a.totalDeliveries = totalDeliveries
	a.totalEarnings = totalEarnings
	a.todaysEarnings = todaysEarnings
	a.rating = rating

	return a, nil
}

// Validate checks if the DeliveryAgent was properly constructed.
// The zero value is invalid and fails this validation.
func (a *DeliveryAgent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by their identifiers.
func (a *DeliveryAgent) IsEqual(other *DeliveryAgent) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

// ID returns the agent's identifier.
func (a *DeliveryAgent) ID() kernel.ID {
	return a.id
}

// Code returns the business identifier, falling back to the numeric id when
// no code was provisioned. Callers never need to null-check it.
func (a *DeliveryAgent) Code() string {
	if a.code == "" {
		return a.id.String()
	}
	return a.code
}

// Name returns the agent's display name.
func (a *DeliveryAgent) Name() string {
	return a.name
}

// Email returns the agent's email address.
func (a *DeliveryAgent) Email() string {
	return a.email
}

// Phone returns the agent's phone number.
func (a *DeliveryAgent) Phone() string {
	return a.phone
}

// Status returns the current availability state.
func (a *DeliveryAgent) Status() Status {
	return a.status
}

// TotalDeliveries returns the cumulative completed-delivery count.
func (a *DeliveryAgent) TotalDeliveries() int {
	return a.totalDeliveries
}

// TotalEarnings returns the cumulative commission credited to the agent.
func (a *DeliveryAgent) TotalEarnings() float64 {
	return a.totalEarnings
}

// TodaysEarnings returns the commission credited since the last daily rollover.
func (a *DeliveryAgent) TodaysEarnings() float64 {
	return a.todaysEarnings
}

// Rating returns the agent's average customer rating.
func (a *DeliveryAgent) Rating() float64 {
	return a.rating
}

// Claim marks the agent Busy for a new assignment.
//
// Business rules:
//   - Only an Available agent can be claimed
//   - Claiming a Busy agent returns a StatusConflictError, which the
//     assignment workflow surfaces as a business-rule violation, not a
//     missing object
func (a *DeliveryAgent) Claim() error {
	newStatus, err := a.status.Claim()
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

// CompleteDelivery settles a finished delivery on the agent: the commission
// is credited to both earnings counters (rounded half up at the cent), the
// delivery count is incremented, and the agent becomes Available again.
//
// Parameters:
//   - commission: the commission amount for the delivered order
//     (must be non-negative)
func (a *DeliveryAgent) CompleteDelivery(commission float64) error {
	if err := kernel.ValidateAmount("commission", commission); err != nil {
		return err
	}

	a.totalEarnings = kernel.RoundToCents(a.totalEarnings + commission)
	a.todaysEarnings = kernel.RoundToCents(a.todaysEarnings + commission)
	a.totalDeliveries++
	a.status = a.status.Release()
	return nil
}

// ResetTodaysEarnings zeroes the daily counter. The jobs layer calls this at
// the start of each day; total earnings are untouched.
func (a *DeliveryAgent) ResetTodaysEarnings() {
	a.todaysEarnings = 0
}

// setID sets the agent's identifier with validation.
// This is an internal setter used during construction.
func (a *DeliveryAgent) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

// setName sets the agent's name with validation.
// This is an internal setter used during construction.
func (a *DeliveryAgent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	a.name = name
	return nil
}

package commands

import (
	"errors"

	"foodexpress/internal/pkg/guard"
)

var (
	ErrResetDailyEarningsCommandIsNotConstructed = errors.New(
		"ResetDailyEarningsCommand must be created via NewResetDailyEarningsCommand constructor",
	)
)

// ResetDailyEarningsCommand triggers the daily rollover of agent earnings.
// This batch operation zeroes every agent's today's-earnings counter while
// leaving total earnings untouched.
type ResetDailyEarningsCommand struct {
	guard guard.ConstructorGuard
}

// NewResetDailyEarningsCommand creates a command to roll over daily earnings.
// This is a parameterless command that processes all agents.
func NewResetDailyEarningsCommand() ResetDailyEarningsCommand {
	return ResetDailyEarningsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrResetDailyEarningsCommandIsNotConstructed if validation fails.
func (c ResetDailyEarningsCommand) Validate() error {
	return c.guard.Validate(ErrResetDailyEarningsCommandIsNotConstructed)
}

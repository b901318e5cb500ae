package commands

import (
	"context"
	"log/slog"
)

// ResetDailyEarningsCommandHandler performs the midnight earnings rollover.
// All agents are reset in one transaction, so a partial failure never leaves
// half the fleet on yesterday's counter.
type ResetDailyEarningsCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewResetDailyEarningsCommandHandler creates a handler for the daily rollover.
func NewResetDailyEarningsCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ResetDailyEarningsCommandHandler {
	return ResetDailyEarningsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle zeroes the today's-earnings counter of every agent.
func (h ResetDailyEarningsCommandHandler) Handle(ctx context.Context, command ResetDailyEarningsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()

	agents, err := agentRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, deliveryAgent := range agents {
		deliveryAgent.ResetTodaysEarnings()
		if err = agentRepo.Update(ctx, deliveryAgent); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("daily earnings rollover completed", "agents", len(agents))
	return nil
}

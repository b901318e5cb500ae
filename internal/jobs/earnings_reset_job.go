package jobs

import (
	"context"
	"log/slog"

	"foodexpress/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EarningsResetJob rolls agent daily earnings over to zero at the start of
// each day. Total earnings are untouched.
type EarningsResetJob struct {
	handler commands.ResetDailyEarningsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEarningsResetJob creates the midnight rollover job.
func NewEarningsResetJob(handler commands.ResetDailyEarningsCommandHandler, logger *slog.Logger) *EarningsResetJob {
	return &EarningsResetJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "earnings_reset_job"),
	}
}

// Start schedules the rollover to run at midnight every day.
func (j *EarningsResetJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewResetDailyEarningsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Earnings reset job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Earnings reset job started (running at midnight)")
	return nil
}

// Stop stops the earnings reset job.
func (j *EarningsResetJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Earnings reset job stopped")
}

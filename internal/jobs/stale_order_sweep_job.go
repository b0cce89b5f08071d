package jobs

import (
	"context"
	"log/slog"
	"time"

	"milkround/internal/core/application/usecases/commands"
	"milkround/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// staleOrderSweepSchedule runs shortly after midnight so orders whose
// delivery date has passed without confirmation are cancelled before the
// new day's deliveries begin.
const staleOrderSweepSchedule = "0 5 0 * * *"

// StaleOrderSweepJob cancels pending orders whose delivery date is in the
// past. An order nobody confirmed by its delivery day will never be
// delivered, so it must not keep blocking the customer's date slot.
type StaleOrderSweepJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderSweepJob creates the nightly sweep job.
func NewStaleOrderSweepJob(handler commands.ExpireStaleOrdersCommandHandler, logger *slog.Logger) *StaleOrderSweepJob {
	return &StaleOrderSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_sweep_job"),
	}
}

// Start schedules the nightly sweep and runs one immediately so a restart
// never leaves stale orders waiting a full day.
func (j *StaleOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc(staleOrderSweepSchedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweep job started (running nightly)")

	go j.sweep()

	return nil
}

// Stop stops the sweep job.
func (j *StaleOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweep job stopped")
}

func (j *StaleOrderSweepJob) sweep() {
	ctx := context.Background()

	cmd, err := commands.NewExpireStaleOrdersCommand(kernel.DateOf(time.Now().UTC()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order sweep could not build command", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		return
	}

	if expired > 0 {
		j.logger.InfoContext(ctx, "Stale orders cancelled", "count", expired)
	}
}
